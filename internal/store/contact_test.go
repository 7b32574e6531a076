package store

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/apperr"
	"shopapi/internal/models"
)

func TestContactStoreSubmit(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		db := newTestDB(t)
		s := NewContactStore(db)

		err := s.Submit(t.Context(), models.ContactMessage{
			Name:    "Jordan",
			Email:   "jordan@example.com",
			Phone:   "+1 555 0100",
			Message: "Do you ship overseas?",
		})
		require.NoError(t, err)

		var saved models.ContactMessage
		require.NoError(t, db.First(&saved).Error)
		assert.Equal(t, "Jordan", saved.Name)
		assert.False(t, saved.CreatedAt.IsZero())
	})

	t.Run("MissingFields", func(t *testing.T) {
		s := NewContactStore(newTestDB(t))
		cases := map[string]models.ContactMessage{
			"NoName":    {Email: "e", Phone: "p", Message: "m"},
			"NoEmail":   {Name: "n", Phone: "p", Message: "m"},
			"NoPhone":   {Name: "n", Email: "e", Message: "m"},
			"NoMessage": {Name: "n", Email: "e", Phone: "p"},
		}
		for name, m := range cases {
			t.Run(name, func(t *testing.T) {
				err := s.Submit(t.Context(), m)
				assert.True(t, apperr.CodeIs(err, http.StatusBadRequest))
			})
		}
	})
}
