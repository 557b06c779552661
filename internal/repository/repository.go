package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., jsonfile) inside this directory.

import (
	"context"

	"cardapi/internal/model"
)

// CardRepository defines access to the card collection. The backing store
// is a single document: Load always returns the whole collection and Save
// always rewrites it in full. There is no partial update and no
// optimistic-concurrency check; concurrent writers overwrite each other
// (last write wins).
type CardRepository interface {
	// Load reads the full card collection. A missing, empty, or malformed
	// backing document yields an empty slice, never an error.
	Load(ctx context.Context) ([]model.Card, error)

	// Save overwrites the backing document with the entire collection.
	Save(ctx context.Context, cards []model.Card) error
}
