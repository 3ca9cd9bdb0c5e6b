package service

import (
	"sync"
	"sync/atomic"
)

// progressVersions counts progress invalidations per owner. A load that
// started under an older version must not repopulate the cache.
var progressVersions sync.Map // ownerID -> *atomic.Uint64

func progressVersion(ownerID string) *atomic.Uint64 {
	if v, ok := progressVersions.Load(ownerID); ok {
		return v.(*atomic.Uint64)
	}
	v, _ := progressVersions.LoadOrStore(ownerID, new(atomic.Uint64))
	return v.(*atomic.Uint64)
}
