package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cardapi/internal/ident"
	"cardapi/internal/model"
	"cardapi/internal/repository"
)

var (
	ErrCardNotFound       = errors.New("card not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrStagedFileNotFound = errors.New("staged file not found")
	ErrInvalidUpload      = errors.New("no file uploaded or empty filename")
)

const dateLayout = "2006-01-02"

// CardInput carries the writable card fields for creation.
type CardInput struct {
	BusinessPartner string  `json:"business_partner"`
	Description     string  `json:"description"`
	Type            string  `json:"type"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Date            string  `json:"date"`
}

// ItemInput carries the writable item fields for creation.
type ItemInput struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
}

// CardFilter holds the substring filters for listing cards. Empty fields
// do not filter.
type CardFilter struct {
	BusinessPartner string
	Description     string
	Type            string
	Date            string
}

// UpdateResult reports which fields a PATCH actually applied.
type UpdateResult struct {
	CardID  string         `json:"card_id"`
	ItemID  string         `json:"item_id,omitempty"`
	Updated map[string]any `json:"updated"`
}

// CardService defines the card and item record operations. Every call is a
// full load → mutate → save cycle against the flat-file repository; the
// card identity is immutable, everything else is last-write-wins.
type CardService interface {
	Create(ctx context.Context, in CardInput) (*model.Card, error)
	Update(ctx context.Context, cardID string, fields map[string]any) (*UpdateResult, error)
	List(ctx context.Context, f CardFilter) ([]model.Card, error)
	AddItem(ctx context.Context, cardID string, in ItemInput) (*model.Item, error)
	ListItems(ctx context.Context, cardID string) ([]model.Item, error)
	UpdateItem(ctx context.Context, cardID, itemID string, fields map[string]any) (*UpdateResult, error)
}

type cardService struct {
	repo repository.CardRepository
}

// NewCardService constructs a new CardService.
func NewCardService(repo repository.CardRepository) CardService {
	return &cardService{repo: repo}
}

// findCard returns a pointer into cards, matching case-insensitively.
func findCard(cards []model.Card, cardID string) *model.Card {
	for i := range cards {
		if strings.EqualFold(cards[i].CardID, cardID) {
			return &cards[i]
		}
	}
	return nil
}

// findItem returns a pointer into the card's items, matching case-insensitively.
func findItem(card *model.Card, itemID string) *model.Item {
	for i := range card.Items {
		if strings.EqualFold(card.Items[i].ItemID, itemID) {
			return &card.Items[i]
		}
	}
	return nil
}

func today() string {
	return time.Now().UTC().Format(dateLayout)
}

func (s *cardService) Create(ctx context.Context, in CardInput) (*model.Card, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	card := model.Card{
		CardID:          ident.NextCardID(cards),
		BusinessPartner: in.BusinessPartner,
		Description:     in.Description,
		Type:            in.Type,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		Amount:          in.Amount,
		Currency:        in.Currency,
		Date:            in.Date,
		Items:           []model.Item{},
	}
	if card.Unit == "" {
		card.Unit = "kg"
	}
	if card.Currency == "" {
		card.Currency = "CFA"
	}
	if card.Date == "" {
		card.Date = today()
	}

	cards = append(cards, card)
	if err := s.repo.Save(ctx, cards); err != nil {
		return nil, fmt.Errorf("save cards: %w", err)
	}
	return &card, nil
}

// allowed PATCH fields; card_id is immutable after creation.
var cardFields = map[string]bool{
	"business_partner": true, "description": true, "type": true,
	"quantity": true, "unit": true, "amount": true, "currency": true, "date": true,
}

var itemFields = map[string]bool{
	"description": true, "quantity": true, "amount": true, "date": true,
}

func (s *cardService) Update(ctx context.Context, cardID string, fields map[string]any) (*UpdateResult, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	card := findCard(cards, cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}

	updated := map[string]any{}
	for k, v := range fields {
		if !cardFields[k] {
			continue
		}
		switch k {
		case "business_partner":
			card.BusinessPartner = asString(v)
		case "description":
			card.Description = asString(v)
		case "type":
			card.Type = asString(v)
		case "unit":
			card.Unit = asString(v)
		case "currency":
			card.Currency = asString(v)
		case "date":
			card.Date = asString(v)
		case "quantity":
			card.Quantity = asFloat(v)
		case "amount":
			card.Amount = asFloat(v)
		}
		updated[k] = v
	}

	if err := s.repo.Save(ctx, cards); err != nil {
		return nil, fmt.Errorf("save cards: %w", err)
	}
	return &UpdateResult{CardID: card.CardID, Updated: updated}, nil
}

func (s *cardService) List(ctx context.Context, f CardFilter) ([]model.Card, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if !contains(c.BusinessPartner, f.BusinessPartner) ||
			!contains(c.Description, f.Description) ||
			!contains(c.Type, f.Type) ||
			!contains(c.Date, f.Date) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *cardService) AddItem(ctx context.Context, cardID string, in ItemInput) (*model.Item, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	card := findCard(cards, cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}

	item := model.Item{
		ItemID:      ident.NextItemID(card),
		CardID:      card.CardID,
		Description: in.Description,
		Quantity:    in.Quantity,
		Amount:      in.Amount,
		Date:        in.Date,
	}
	if item.Date == "" {
		item.Date = card.Date
	}
	if item.Date == "" {
		item.Date = today()
	}

	card.Items = append(card.Items, item)
	if err := s.repo.Save(ctx, cards); err != nil {
		return nil, fmt.Errorf("save cards: %w", err)
	}
	return &item, nil
}

func (s *cardService) ListItems(ctx context.Context, cardID string) ([]model.Item, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	card := findCard(cards, cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}
	if card.Items == nil {
		return []model.Item{}, nil
	}
	return card.Items, nil
}

func (s *cardService) UpdateItem(ctx context.Context, cardID, itemID string, fields map[string]any) (*UpdateResult, error) {
	cards, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	card := findCard(cards, cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}
	item := findItem(card, itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	updated := map[string]any{}
	for k, v := range fields {
		if !itemFields[k] {
			continue
		}
		switch k {
		case "description":
			item.Description = asString(v)
		case "date":
			item.Date = asString(v)
		case "quantity":
			item.Quantity = asFloatPtr(v)
		case "amount":
			item.Amount = asFloatPtr(v)
		}
		updated[k] = v
	}

	if err := s.repo.Save(ctx, cards); err != nil {
		return nil, fmt.Errorf("save cards: %w", err)
	}
	return &UpdateResult{CardID: card.CardID, ItemID: item.ItemID, Updated: updated}, nil
}

// contains reports whether haystack contains needle, case-insensitively.
// An empty needle matches everything.
func contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// asFloat coerces JSON numbers; encoding/json decodes them as float64.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func asFloatPtr(v any) *float64 {
	if v == nil {
		return nil
	}
	n := asFloat(v)
	return &n
}
