package dto

import "time"

// WordRequest is used both to add and to update a word.
// @Description Request body for a vocabulary entry
type WordRequest struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// WordResponse represents a vocabulary entry
type WordResponse struct {
	ID         string    `json:"id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	AddedAt    time.Time `json:"addedAt"`
}

// WordMutationResponse is returned after a word is added or updated.
type WordMutationResponse struct {
	Message string       `json:"message"`
	Word    WordResponse `json:"word"`
}

// DeleteWordResponse echoes the removed entry.
type DeleteWordResponse struct {
	Message     string       `json:"message"`
	DeletedWord WordResponse `json:"deletedWord"`
}
