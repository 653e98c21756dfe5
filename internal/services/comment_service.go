package services

import (
	"errors"

	"github.com/rlozl15/pypost/internal/apperrors"
	"github.com/rlozl15/pypost/internal/models"
	"github.com/rlozl15/pypost/internal/permissions"
	"github.com/rlozl15/pypost/internal/repository"
)

// CommentService handles the comment lifecycle
type CommentService interface {
	List(page, limit int) ([]models.Comment, int64, error)
	GetByID(id uint) (*models.Comment, error)
	Create(requester *models.User, postID uint, text string) (*models.Comment, error)
	Update(requester *models.User, id uint, text string) (*models.Comment, error)
	Delete(requester *models.User, id uint) error
}

// commentService implements CommentService
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a CommentService
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// List returns a page of comments, oldest first
func (s *commentService) List(page, limit int) ([]models.Comment, int64, error) {
	return s.commentRepo.List(page, limit)
}

// GetByID fetches a single comment
func (s *commentService) GetByID(id uint) (*models.Comment, error) {
	return s.commentRepo.FindByID(id)
}

// Create stores a new comment. The referenced post must exist; author and
// profile come from the requester, never from the input.
func (s *commentService) Create(requester *models.User, postID uint, text string) (*models.Comment, error) {
	if err := permissions.CanCreate(requester); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidation("post", "invalid post id")
		}
		return nil, err
	}

	profile, err := s.userRepo.FindProfileByUserID(requester.ID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:    postID,
		UserID:    requester.ID,
		ProfileID: profile.ID,
		Text:      text,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.FindByID(comment.ID)
}

// Update modifies a comment's text, author only
func (s *commentService) Update(requester *models.User, id uint, text string) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := permissions.CanModify(requester, comment); err != nil {
		return nil, err
	}

	comment.Text = text
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.FindByID(id)
}

// Delete removes a comment, author only
func (s *commentService) Delete(requester *models.User, id uint) error {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := permissions.CanModify(requester, comment); err != nil {
		return err
	}

	return s.commentRepo.Delete(comment.ID)
}
