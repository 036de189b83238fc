package notepress_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/osliken/notepress/pkg/notepress"
	"github.com/stretchr/testify/assert"
)

func TestDuplicateSlugError(t *testing.T) {
	err := &notepress.DuplicateSlugError{Slug: "my-note"}

	assert.EqualError(t, err, "my-note - already exists, pick another value")
	assert.ErrorIs(t, err, notepress.ErrDuplicateSlug)

	var dup *notepress.DuplicateSlugError
	assert.ErrorAs(t, fmt.Errorf("create: %w", err), &dup)
	assert.Equal(t, "my-note", dup.Slug)
}

func TestNoteError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := &notepress.NoteError{Slug: "my-note", Op: "update", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "update")
	assert.Contains(t, err.Error(), "my-note")
}

func TestModerationRejected_CarriesWarning(t *testing.T) {
	assert.EqualError(t, notepress.ErrModerationRejected, notepress.ModerationWarning)
}
