package cache

import "strings"

const (
	GlobalKeyPrefix = "vocabbuilder"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// OpenQuizKey scopes an open quiz to its owner, so a quiz ID guessed by
// another user never resolves.
func OpenQuizKey(ownerID, quizID string) string {
	return GenerateCacheKey("quiz", "open", ownerID, quizID)
}

func RevokedTokenKey(tokenID string) string {
	return GenerateCacheKey("auth", "revoked", tokenID)
}

func OverallProgressKey(ownerID string) string {
	return GenerateCacheKey("progress", "overall", ownerID)
}
