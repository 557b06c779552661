package service

import (
	"strings"

	"cardapi/internal/model"
)

// NormalizeURL derives the absolute download URL for an attachment. The
// persisted url is never authoritative: records written before the serving
// host changed, or before url existed at all, must still resolve. Only
// path and the owning card id are trusted.
//
// Already-absolute urls pass through untouched, which makes the function
// idempotent and leaves externally hosted attachments alone.
func NormalizeURL(baseURL, cardID string, att model.Attachment) string {
	if strings.HasPrefix(att.URL, "http://") || strings.HasPrefix(att.URL, "https://") {
		return att.URL
	}

	base := strings.TrimRight(baseURL, "/")
	marker := "/files/" + cardID + "/"
	if i := strings.Index(att.Path, marker); i >= 0 {
		return base + marker + att.Path[i+len(marker):]
	}

	// Legacy record whose path does not carry the expected card segment:
	// best effort, serve the path relative to the current base.
	rel := strings.TrimLeft(att.Path, "/")
	if strings.HasPrefix(rel, "files/") {
		return base + "/" + rel
	}
	return base + marker + rel
}

// NormalizeAll returns a copy of the attachments with urls re-derived.
// Applied on every read path; never at load or save only.
func NormalizeAll(baseURL, cardID string, atts []model.Attachment) []model.Attachment {
	out := make([]model.Attachment, 0, len(atts))
	for _, a := range atts {
		a.URL = NormalizeURL(baseURL, cardID, a)
		out = append(out, a)
	}
	return out
}
