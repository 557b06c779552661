// Package ident allocates card and item identifiers from the highest
// numeric suffix already present in the collection.
package ident

import (
	"fmt"
	"regexp"
	"strconv"

	"cardapi/internal/model"
)

var (
	cardIDPattern = regexp.MustCompile(`(?i)^C_(\d+)$`)
	itemIDPattern = regexp.MustCompile(`(?i)^Item_(\d+)$`)
)

// NextCardID returns the next card identifier: one plus the highest numeric
// suffix among existing C_<n> ids, starting at 1. Identifiers that do not
// match the pattern are ignored, so gaps and deletions never cause reuse.
func NextCardID(cards []model.Card) string {
	max := 0
	for _, c := range cards {
		if m := cardIDPattern.FindStringSubmatch(c.CardID); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > max {
				max = n
			}
		}
	}
	return fmt.Sprintf("C_%0*d", width(max+1), max+1)
}

// NextItemID returns the next item identifier within a card. Items step by
// 10 starting at 10 (Item_010, Item_020, ...).
func NextItemID(card *model.Card) string {
	max := 0
	for _, it := range card.Items {
		if m := itemIDPattern.FindStringSubmatch(it.ItemID); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > max {
				max = n
			}
		}
	}
	n := 10
	if max > 0 {
		n = max + 10
	}
	return fmt.Sprintf("Item_%0*d", width(n), n)
}

// width grows with the number: 3 digits through 999, 4 through 9999, then
// however many digits the number needs.
func width(n int) int {
	switch {
	case n <= 999:
		return 3
	case n <= 9999:
		return 4
	default:
		return len(strconv.Itoa(n))
	}
}
