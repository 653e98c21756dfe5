package permissions

import (
	"testing"

	"github.com/rlozl15/pypost/internal/apperrors"
	"github.com/rlozl15/pypost/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanCreate(t *testing.T) {
	assert.ErrorIs(t, CanCreate(nil), apperrors.ErrUnauthorized)
	assert.NoError(t, CanCreate(&models.User{ID: 1}))
}

func TestCanModify(t *testing.T) {
	author := &models.User{ID: 1}
	other := &models.User{ID: 2}

	objects := []Authored{
		&models.Post{UserID: 1},
		&models.Comment{UserID: 1},
		&models.Profile{UserID: 1},
	}

	for _, obj := range objects {
		assert.ErrorIs(t, CanModify(nil, obj), apperrors.ErrUnauthorized)
		assert.ErrorIs(t, CanModify(other, obj), apperrors.ErrForbidden)
		assert.NoError(t, CanModify(author, obj))
	}
}
