package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardapi/internal/model"
)

func TestNormalizeURL(t *testing.T) {
	base := "https://cards.example.com"

	tests := []struct {
		name string
		att  model.Attachment
		want string
	}{
		{
			name: "derives from path",
			att:  model.Attachment{Path: "/files/C_001/invoice.pdf"},
			want: "https://cards.example.com/files/C_001/invoice.pdf",
		},
		{
			name: "item-level path",
			att:  model.Attachment{Path: "/files/C_001/Item_010/photo.jpg"},
			want: "https://cards.example.com/files/C_001/Item_010/photo.jpg",
		},
		{
			name: "legacy record with no url at all",
			att:  model.Attachment{Path: "/files/C_001/old.pdf", URL: ""},
			want: "https://cards.example.com/files/C_001/old.pdf",
		},
		{
			name: "stale url from a previous host is discarded",
			att:  model.Attachment{Path: "/files/C_001/doc.pdf", URL: "/files/C_001/doc.pdf"},
			want: "https://cards.example.com/files/C_001/doc.pdf",
		},
		{
			name: "absolute url passes through",
			att:  model.Attachment{Path: "/files/C_001/doc.pdf", URL: "https://other.example.org/files/C_001/doc.pdf"},
			want: "https://other.example.org/files/C_001/doc.pdf",
		},
		{
			name: "path with historical prefix before marker",
			att:  model.Attachment{Path: "/api/v1/files/C_001/scan.png"},
			want: "https://cards.example.com/files/C_001/scan.png",
		},
		{
			name: "bare filename path",
			att:  model.Attachment{Path: "scan.png"},
			want: "https://cards.example.com/files/C_001/scan.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(base, "C_001", tt.att))
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	att := model.Attachment{Path: "/files/C_001/invoice.pdf"}

	first := NormalizeURL("https://cards.example.com", "C_001", att)
	att.URL = first
	second := NormalizeURL("https://cards.example.com", "C_001", att)

	assert.Equal(t, first, second)
}

func TestNormalizeURL_TrailingSlashBase(t *testing.T) {
	att := model.Attachment{Path: "/files/C_001/invoice.pdf"}
	got := NormalizeURL("http://localhost:8080/", "C_001", att)
	assert.Equal(t, "http://localhost:8080/files/C_001/invoice.pdf", got)
}

func TestNormalizeAll(t *testing.T) {
	atts := []model.Attachment{
		{Path: "/files/C_001/a.pdf"},
		{Path: "/files/C_001/b.pdf", URL: "https://kept.example.org/b.pdf"},
	}

	out := NormalizeAll("https://cards.example.com", "C_001", atts)

	assert.Equal(t, "https://cards.example.com/files/C_001/a.pdf", out[0].URL)
	assert.Equal(t, "https://kept.example.org/b.pdf", out[1].URL)
	// Input slice is not mutated
	assert.Empty(t, atts[0].URL)
}
