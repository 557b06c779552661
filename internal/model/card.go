package model

import "time"

// Card is a business transaction record (sale, procurement, expense).
// These are pure domain structs with JSON tags only; the same shape is
// persisted to disk and returned to clients, so field names are part of
// the storage format.
type Card struct {
	CardID          string       `json:"card_id"`
	BusinessPartner string       `json:"business_partner"`
	Description     string       `json:"description"`
	Type            string       `json:"type"`
	Quantity        float64      `json:"quantity"`
	Unit            string       `json:"unit"`
	Amount          float64      `json:"amount"`
	Currency        string       `json:"currency"`
	Date            string       `json:"date"`
	Items           []Item       `json:"items"`
	Attachments     []Attachment `json:"attachments,omitempty"`
}

// Item is a line entry belonging to exactly one card. CardID is a
// back-reference set at creation, not an ownership pointer. Quantity and
// Amount are pointers because legacy records may carry explicit nulls.
type Item struct {
	ItemID      string       `json:"item_id"`
	CardID      string       `json:"card_id"`
	Description string       `json:"description"`
	Quantity    *float64     `json:"quantity"`
	Amount      *float64     `json:"amount"`
	Date        string       `json:"date"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a file linked to a card or one of its items. Path is the
// durable source of truth (/files/<card_id>/[<item_id>/]<filename>); URL is
// re-derived from Path on every read and may be absent or stale in records
// written before URL normalization existed.
type Attachment struct {
	Filename   string    `json:"filename"`
	Mime       string    `json:"mime"`
	UploadedAt time.Time `json:"uploaded_at"`
	Path       string    `json:"path"`
	URL        string    `json:"url,omitempty"`
}

// StagedFile describes an upload held in the staging area pending commit.
// It is ephemeral: the token is the only handle, and the backing file is
// consumed (moved, not copied) by the first successful commit.
type StagedFile struct {
	Token      string    `json:"token"`
	Filename   string    `json:"filename"`
	Mime       string    `json:"mime"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
