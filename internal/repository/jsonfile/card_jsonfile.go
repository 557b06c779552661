// Package jsonfile persists the card collection as a single JSON document
// on local disk. Every mutation rewrites the whole file; the write goes to
// a temp file first and is renamed into place so a crash cannot truncate
// the collection.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"cardapi/internal/model"
	"cardapi/internal/repository"
)

const (
	// DefaultUnit and DefaultCurrency are applied to cards on load when the
	// stored value is missing or empty. Item and attachment fields are left
	// exactly as stored.
	DefaultUnit     = "kg"
	DefaultCurrency = "CFA"
)

// CardJSONFile is a flat-file implementation of repository.CardRepository.
// A mutex serializes Load/Save within the process; cross-process writers
// can still interleave load/save and lose updates (documented hazard).
type CardJSONFile struct {
	path string
	mu   sync.Mutex
}

// NewCardJSONFile creates the repository, ensuring the parent directory of
// the backing file exists.
func NewCardJSONFile(path string) (*CardJSONFile, error) {
	if path == "" {
		return nil, fmt.Errorf("cards file path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &CardJSONFile{path: path}, nil
}

var _ repository.CardRepository = (*CardJSONFile)(nil)

// Load reads the whole collection. An absent file returns an empty slice.
// Malformed content is swallowed into an empty slice and logged at warn
// level, matching the historical behavior clients depend on.
func (r *CardJSONFile) Load(ctx context.Context) ([]model.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Card{}, nil
		}
		return nil, fmt.Errorf("read cards file: %w", err)
	}
	if len(raw) == 0 {
		return []model.Card{}, nil
	}

	var cards []model.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		log.Warn().Str("path", r.path).Err(err).Msg("cards file is malformed, treating collection as empty")
		return []model.Card{}, nil
	}

	for i := range cards {
		if cards[i].Unit == "" {
			cards[i].Unit = DefaultUnit
		}
		if cards[i].Currency == "" {
			cards[i].Currency = DefaultCurrency
		}
		if cards[i].Items == nil {
			cards[i].Items = []model.Item{}
		}
	}
	return cards, nil
}

// Save rewrites the backing document with the full collection, serialized
// human-readable (2-space indent). The write is temp-file-then-rename.
func (r *CardJSONFile) Save(ctx context.Context, cards []model.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cards == nil {
		cards = []model.Card{}
	}
	raw, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cards: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".cards-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace cards file: %w", err)
	}
	return nil
}

// Path returns the location of the backing document.
func (r *CardJSONFile) Path() string {
	return r.path
}
