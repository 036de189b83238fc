package notepress_test

import (
	"testing"

	"github.com/osliken/notepress/pkg/notepress"
	"github.com/stretchr/testify/assert"
)

func TestModerationFilter_Validate(t *testing.T) {
	filter := notepress.NewModerationFilter("redact", "pad")

	tests := []struct {
		name     string
		text     string
		rejected bool
	}{
		{"clean text accepted", "a perfectly polite comment", false},
		{"banned term rejected", "please redact this", true},
		{"banned term inside a longer word rejected", "some redacted content", true},
		{"no word boundaries", "nicely padded sentence", true},
		{"case sensitive match", "REDACT shouting is fine", false},
		{"term at start", "redact everything", true},
		{"term at end", "do not redact", true},
		{"several terms still one warning", "redact the padding", true},
		{"empty text accepted", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := filter.Validate(tt.text)
			if tt.rejected {
				assert.ErrorIs(t, err, notepress.ErrModerationRejected)
				assert.EqualError(t, err, notepress.ModerationWarning)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewModerationFilter_Defaults(t *testing.T) {
	filter := notepress.NewModerationFilter()

	for _, word := range notepress.DefaultBannedWords {
		assert.ErrorIs(t, filter.Validate("text with "+word+" inside"), notepress.ErrModerationRejected)
	}
	assert.NoError(t, filter.Validate("text without any of them"))
}
