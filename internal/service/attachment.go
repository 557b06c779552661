package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"cardapi/internal/model"
	"cardapi/internal/repository"
	"cardapi/internal/storage"
)

// fallbackFilename is used when sanitization leaves nothing of the
// original name at commit time.
const fallbackFilename = "upload.bin"

// CommitInput identifies a staged upload and its target record.
type CommitInput struct {
	Token  string `json:"token"`
	CardID string `json:"card_id"`
	ItemID string `json:"item_id"`
	Mime   string `json:"mime"`
}

// AttachmentService defines the attachment lifecycle: stage a file under a
// one-time token, commit it to a card or item, or upload directly in one
// step. Both write paths produce identical metadata shape. Listings pass
// every record through the URL normalizer.
//
// baseURL is the origin used for URL normalization; callers pass the
// configured public base URL, or the current request's own origin when
// none is configured.
type AttachmentService interface {
	Stage(ctx context.Context, r io.Reader, originalName, contentType string) (*model.StagedFile, error)
	Commit(ctx context.Context, in CommitInput, baseURL string) (*model.Attachment, error)
	UploadDirect(ctx context.Context, cardID, itemID string, r io.Reader, originalName, contentType, baseURL string) (*model.Attachment, error)
	ListCardAttachments(ctx context.Context, cardID, baseURL string) ([]model.Attachment, error)
	ListItemAttachments(ctx context.Context, cardID, itemID, baseURL string) ([]model.Attachment, error)
}

type attachmentService struct {
	repo    repository.CardRepository
	staging storage.Stager
	files   storage.FileStore
}

// NewAttachmentService constructs a new AttachmentService.
func NewAttachmentService(repo repository.CardRepository, staging storage.Stager, files storage.FileStore) AttachmentService {
	return &attachmentService{repo: repo, staging: staging, files: files}
}

// Stage writes the upload into the staging area and returns its metadata,
// including the token the caller must present to commit.
func (s *attachmentService) Stage(ctx context.Context, r io.Reader, originalName, contentType string) (*model.StagedFile, error) {
	if r == nil || originalName == "" {
		return nil, ErrInvalidUpload
	}
	staged, err := s.staging.Stage(ctx, r, originalName, contentType)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyFilename) {
			return nil, ErrInvalidUpload
		}
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	return &staged, nil
}

// Commit moves a staged file into its permanent card or item directory and
// appends the attachment metadata to the owning record. The staged file is
// consumed: a second commit with the same token fails with
// ErrStagedFileNotFound.
func (s *attachmentService) Commit(ctx context.Context, in CommitInput, baseURL string) (*model.Attachment, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	card := findCard(cards, in.CardID)
	if card == nil {
		return nil, ErrCardNotFound
	}
	var item *model.Item
	if in.ItemID != "" {
		if item = findItem(card, in.ItemID); item == nil {
			return nil, ErrItemNotFound
		}
	}

	entry, err := s.staging.Resolve(ctx, in.Token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrStagedFileNotFound
		}
		return nil, fmt.Errorf("resolve staged file: %w", err)
	}

	finalName := storage.SanitizeFilename(entry.OriginalName)
	if finalName == "" {
		finalName = fallbackFilename
	}

	itemID := ""
	if item != nil {
		itemID = item.ItemID
	}
	if err := s.files.MoveStaged(ctx, entry.Path, card.CardID, itemID, finalName); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrStagedFileNotFound
		}
		return nil, fmt.Errorf("move staged file: %w", err)
	}

	att := s.buildAttachment(card.CardID, itemID, finalName, in.Mime, baseURL)
	if item != nil {
		item.Attachments = append(item.Attachments, att)
	} else {
		card.Attachments = append(card.Attachments, att)
	}

	if err := s.repo.Save(ctx, cards); err != nil {
		return nil, fmt.Errorf("save cards: %w", err)
	}
	return &att, nil
}

// UploadDirect is the one-step variant that skips staging: the file is
// written straight into the target directory after the same card and item
// validation as Commit.
func (s *attachmentService) UploadDirect(ctx context.Context, cardID, itemID string, r io.Reader, originalName, contentType, baseURL string) (*model.Attachment, error) {
	if r == nil || originalName == "" {
		return nil, ErrInvalidUpload
	}

	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	card := findCard(cards, cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}
	var item *model.Item
	if itemID != "" {
		if item = findItem(card, itemID); item == nil {
			return nil, ErrItemNotFound
		}
	}

	finalName := storage.SanitizeFilename(originalName)
	if finalName == "" {
		finalName = fallbackFilename
	}

	resolvedItemID := ""
	if item != nil {
		resolvedItemID = item.ItemID
	}
	if _, err := s.files.Write(ctx, r, card.CardID, resolvedItemID, finalName); err != nil {
		return nil, fmt.Errorf("write uploaded file: %w", err)
	}

	att := s.buildAttachment(card.CardID, resolvedItemID, finalName, contentType, baseURL)
	if item != nil {
		item.Attachments = append(item.Attachments, att)
	} else {
		card.Attachments = append(card.Attachments, att)
	}

	if err := s.repo.Save(ctx, cards); err != nil {
		return nil, fmt.Errorf("save cards: %w", err)
	}
	return &att, nil
}

// ListCardAttachments returns the card's own attachments with normalized
// urls. A missing card yields an empty list, not an error.
func (s *attachmentService) ListCardAttachments(ctx context.Context, cardID, baseURL string) ([]model.Attachment, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	card := findCard(cards, cardID)
	if card == nil {
		return []model.Attachment{}, nil
	}
	return NormalizeAll(baseURL, card.CardID, card.Attachments), nil
}

// ListItemAttachments returns one item's attachments with normalized urls.
// A missing card or item yields an empty list, not an error.
func (s *attachmentService) ListItemAttachments(ctx context.Context, cardID, itemID, baseURL string) ([]model.Attachment, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	card := findCard(cards, cardID)
	if card == nil {
		return []model.Attachment{}, nil
	}
	item := findItem(card, itemID)
	if item == nil {
		return []model.Attachment{}, nil
	}
	return NormalizeAll(baseURL, card.CardID, item.Attachments), nil
}

func (s *attachmentService) buildAttachment(cardID, itemID, filename, contentType, baseURL string) model.Attachment {
	p := "/files/" + cardID + "/"
	if itemID != "" {
		p += itemID + "/"
	}
	p += filename

	att := model.Attachment{
		Filename:   filename,
		Mime:       mimeFor(contentType, filename),
		UploadedAt: time.Now().UTC(),
		Path:       p,
	}
	att.URL = NormalizeURL(baseURL, cardID, att)
	return att
}

func mimeFor(explicit, filename string) string {
	if explicit != "" {
		return explicit
	}
	if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
		return t
	}
	return "application/octet-stream"
}
