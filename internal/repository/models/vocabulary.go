package models

import "time"

// VocabularyEntry is a row of the vocabulary_entries table.
type VocabularyEntry struct {
	ID         string    `db:"id"`
	OwnerID    string    `db:"owner_id"`
	Word       string    `db:"word"`
	Definition string    `db:"definition"`
	AddedAt    time.Time `db:"added_at"`
}
