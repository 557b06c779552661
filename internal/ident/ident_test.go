package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardapi/internal/model"
)

func cardsWithIDs(ids ...string) []model.Card {
	cards := make([]model.Card, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, model.Card{CardID: id})
	}
	return cards
}

func TestNextCardID(t *testing.T) {
	tests := []struct {
		name  string
		cards []model.Card
		want  string
	}{
		{"empty collection", nil, "C_001"},
		{"sequential", cardsWithIDs("C_001", "C_002"), "C_003"},
		{"gaps never reuse", cardsWithIDs("C_001", "C_005"), "C_006"},
		{"case insensitive", cardsWithIDs("c_007"), "C_008"},
		{"non-matching ids ignored", cardsWithIDs("X_100", "card-3", ""), "C_001"},
		{"widens to 4 digits", cardsWithIDs("C_999"), "C_1000"},
		{"widens past 4 digits", cardsWithIDs("C_9999"), "C_10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextCardID(tt.cards))
		})
	}
}

func TestNextCardID_StrictlyIncreasing(t *testing.T) {
	var cards []model.Card
	prev := ""
	for i := 0; i < 25; i++ {
		id := NextCardID(cards)
		assert.Greater(t, id, prev)
		cards = append(cards, model.Card{CardID: id})
		prev = id
	}
	assert.Equal(t, "C_025", prev)
}

func TestNextItemID(t *testing.T) {
	itemsWith := func(ids ...string) *model.Card {
		card := &model.Card{CardID: "C_001"}
		for _, id := range ids {
			card.Items = append(card.Items, model.Item{ItemID: id})
		}
		return card
	}

	tests := []struct {
		name string
		card *model.Card
		want string
	}{
		{"first item starts at 10", itemsWith(), "Item_010"},
		{"step is 10", itemsWith("Item_010"), "Item_020"},
		{"gap tolerant", itemsWith("Item_010", "Item_040"), "Item_050"},
		{"case insensitive", itemsWith("item_020"), "Item_030"},
		{"widens to 4 digits", itemsWith("Item_990"), "Item_1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextItemID(tt.card))
		})
	}
}

func TestNextItemID_Sequence(t *testing.T) {
	card := &model.Card{CardID: "C_001"}
	want := []string{"Item_010", "Item_020", "Item_030", "Item_040"}
	for _, w := range want {
		id := NextItemID(card)
		assert.Equal(t, w, id)
		card.Items = append(card.Items, model.Item{ItemID: id})
	}
}
