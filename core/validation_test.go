package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := &Document{ID: "1", Title: "Title", Text: "Body text"}
		require.NoError(t, ValidateDocument(doc))
	})

	t.Run("valid with optional fields", func(t *testing.T) {
		doc := &Document{ID: "1", Title: "Title", Text: "Body", Tags: []string{"a"}, Date: "2024-01-01"}
		require.NoError(t, ValidateDocument(doc))
	})

	t.Run("nil document", func(t *testing.T) {
		err := ValidateDocument(nil)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("empty id", func(t *testing.T) {
		doc := &Document{ID: "  ", Title: "Title", Text: "Body"}
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.ErrorIs(t, err, ErrEmptyDocumentID)
	})

	t.Run("empty title", func(t *testing.T) {
		doc := &Document{ID: "1", Title: "", Text: "Body"}
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("empty text", func(t *testing.T) {
		doc := &Document{ID: "1", Title: "Title", Text: "\t "}
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrEmptyText)
	})
}

func TestValidateProfile(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		profile := &UserProfile{UserID: "u1", Name: "Bonnie", Age: 28}
		require.NoError(t, ValidateProfile(profile))
	})

	t.Run("nil profile", func(t *testing.T) {
		assert.ErrorIs(t, ValidateProfile(nil), ErrInvalidProfile)
	})

	t.Run("empty user id", func(t *testing.T) {
		profile := &UserProfile{UserID: " "}
		err := ValidateProfile(profile)
		assert.ErrorIs(t, err, ErrEmptyUserID)
	})

	t.Run("negative age", func(t *testing.T) {
		profile := &UserProfile{UserID: "u1", Age: -1}
		assert.ErrorIs(t, ValidateProfile(profile), ErrInvalidProfile)
	})
}

func TestValidateOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		order := &Order{UserID: "u1", Items: []string{"sushi"}}
		require.NoError(t, ValidateOrder(order))
	})

	t.Run("no items", func(t *testing.T) {
		order := &Order{UserID: "u1"}
		assert.ErrorIs(t, ValidateOrder(order), ErrInvalidOrder)
	})

	t.Run("empty user", func(t *testing.T) {
		order := &Order{UserID: "", Items: []string{"sushi"}}
		assert.ErrorIs(t, ValidateOrder(order), ErrEmptyUserID)
	})
}
