// Package permissions holds the attribute-based authorization policy shared by
// posts, comments and profiles: anyone may read, only authenticated users may
// create, and only the author may modify or delete an object.
package permissions

import (
	"github.com/rlozl15/pypost/internal/apperrors"
	"github.com/rlozl15/pypost/internal/models"
)

// Authored is implemented by resources that carry an owning account
type Authored interface {
	AuthorID() uint
}

// CanCreate is the collection-level check for write methods.
// Read methods are always allowed and never reach the policy.
func CanCreate(requester *models.User) error {
	if requester == nil {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// CanModify is the object-level check for update and delete
func CanModify(requester *models.User, obj Authored) error {
	if requester == nil {
		return apperrors.ErrUnauthorized
	}
	if obj.AuthorID() != requester.ID {
		return apperrors.ErrForbidden
	}
	return nil
}
