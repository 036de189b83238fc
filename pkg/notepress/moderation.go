package notepress

import "strings"

// DefaultBannedWords is the seed list shipped with the news application.
var DefaultBannedWords = []string{"radish", "scoundrel"}

// ModerationFilter rejects comment text containing any banned term.
//
// Matching is exact, case-sensitive substring matching with no Unicode
// normalization and no word boundaries: a banned term "pad" matches
// "padded".
type ModerationFilter struct {
	words []string
}

// NewModerationFilter creates a filter over the given banned terms. With no
// terms it falls back to DefaultBannedWords.
func NewModerationFilter(words ...string) *ModerationFilter {
	if len(words) == 0 {
		words = DefaultBannedWords
	}
	return &ModerationFilter{words: append([]string(nil), words...)}
}

// Validate returns ErrModerationRejected if any banned term occurs as a
// substring of text. The error is the same regardless of which or how many
// terms matched.
func (f *ModerationFilter) Validate(text string) error {
	for _, w := range f.words {
		if w == "" {
			continue
		}
		if strings.Contains(text, w) {
			return ErrModerationRejected
		}
	}
	return nil
}
