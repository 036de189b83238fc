package notepress_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/osliken/notepress/pkg/notepress"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	owner := notepress.Principal{ID: uuid.New()}
	reader := notepress.Principal{ID: uuid.New()}

	tests := []struct {
		name     string
		p        notepress.Principal
		ownerID  uuid.UUID
		action   notepress.Action
		expected notepress.Decision
	}{
		{
			name:     "anonymous update is denied for login",
			p:        notepress.Anonymous(),
			ownerID:  owner.ID,
			action:   notepress.ActionUpdate,
			expected: notepress.DecisionDeniedUnauthenticated,
		},
		{
			name:     "anonymous delete is denied for login",
			p:        notepress.Anonymous(),
			ownerID:  owner.ID,
			action:   notepress.ActionDelete,
			expected: notepress.DecisionDeniedUnauthenticated,
		},
		{
			name:     "anonymous create is denied for login",
			p:        notepress.Anonymous(),
			ownerID:  uuid.Nil,
			action:   notepress.ActionCreate,
			expected: notepress.DecisionDeniedUnauthenticated,
		},
		{
			name:     "non-owner update is hidden as not found",
			p:        reader,
			ownerID:  owner.ID,
			action:   notepress.ActionUpdate,
			expected: notepress.DecisionDeniedNotFound,
		},
		{
			name:     "non-owner delete is hidden as not found",
			p:        reader,
			ownerID:  owner.ID,
			action:   notepress.ActionDelete,
			expected: notepress.DecisionDeniedNotFound,
		},
		{
			name:     "non-owner read is hidden as not found",
			p:        reader,
			ownerID:  owner.ID,
			action:   notepress.ActionRead,
			expected: notepress.DecisionDeniedNotFound,
		},
		{
			name:     "owner read is allowed",
			p:        owner,
			ownerID:  owner.ID,
			action:   notepress.ActionRead,
			expected: notepress.DecisionAllowed,
		},
		{
			name:     "owner update is allowed",
			p:        owner,
			ownerID:  owner.ID,
			action:   notepress.ActionUpdate,
			expected: notepress.DecisionAllowed,
		},
		{
			name:     "owner delete is allowed",
			p:        owner,
			ownerID:  owner.ID,
			action:   notepress.ActionDelete,
			expected: notepress.DecisionAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := notepress.Authorize(tt.p, tt.ownerID, tt.action)
			assert.Equal(t, tt.expected, decision)
		})
	}
}

func TestDecisionErr(t *testing.T) {
	t.Run("allowed maps to nil", func(t *testing.T) {
		assert.NoError(t, notepress.DecisionAllowed.Err(notepress.ErrNoteNotFound))
	})

	t.Run("unauthenticated maps to ErrUnauthenticated", func(t *testing.T) {
		err := notepress.DecisionDeniedUnauthenticated.Err(notepress.ErrNoteNotFound)
		assert.ErrorIs(t, err, notepress.ErrUnauthenticated)
	})

	t.Run("non-owner denial maps to the resource's not-found error", func(t *testing.T) {
		err := notepress.DecisionDeniedNotFound.Err(notepress.ErrCommentNotFound)
		assert.ErrorIs(t, err, notepress.ErrCommentNotFound)
	})
}
