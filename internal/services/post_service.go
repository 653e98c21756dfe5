package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/rlozl15/pypost/internal/apperrors"
	"github.com/rlozl15/pypost/internal/config"
	"github.com/rlozl15/pypost/internal/models"
	"github.com/rlozl15/pypost/internal/permissions"
	"github.com/rlozl15/pypost/internal/repository"
)

// PostService handles the post lifecycle and the like toggle
type PostService interface {
	List(page, limit int, authorID, likedBy *uint) ([]models.Post, int64, error)
	GetByID(id uint) (*models.Post, error)
	Create(requester *models.User, title, body, category string, image multipart.File, imageHeader *multipart.FileHeader) (*models.Post, error)
	Update(requester *models.User, id uint, title, body, category string, image multipart.File, imageHeader *multipart.FileHeader) (*models.Post, error)
	Delete(requester *models.User, id uint) error
	ToggleLike(requester *models.User, postID uint) error
}

// postService implements PostService
type postService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	imageService ImageService
	config       *config.Config
}

// NewPostService creates a PostService
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, imageService ImageService, cfg *config.Config) PostService {
	return &postService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		imageService: imageService,
		config:       cfg,
	}
}

// List returns a page of posts, newest first
func (s *postService) List(page, limit int, authorID, likedBy *uint) ([]models.Post, int64, error) {
	return s.postRepo.List(page, limit, authorID, likedBy)
}

// GetByID fetches a single post
func (s *postService) GetByID(id uint) (*models.Post, error) {
	return s.postRepo.FindByID(id)
}

// Create stores a new post. Author and profile come from the requester, never
// from the input.
func (s *postService) Create(requester *models.User, title, body, category string, image multipart.File, imageHeader *multipart.FileHeader) (*models.Post, error) {
	if err := permissions.CanCreate(requester); err != nil {
		return nil, err
	}

	profile, err := s.userRepo.FindProfileByUserID(requester.ID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:    requester.ID,
		ProfileID: profile.ID,
		Title:     title,
		Body:      body,
		Category:  category,
	}

	if image != nil {
		publicID, url, err := s.uploadImage(image, imageHeader)
		if err != nil {
			return nil, err
		}
		post.ImagePublicID = publicID
		post.ImageURL = url
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.postRepo.FindByID(post.ID)
}

// Update modifies a post, author only. A new image replaces the stored one.
func (s *postService) Update(requester *models.User, id uint, title, body, category string, image multipart.File, imageHeader *multipart.FileHeader) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := permissions.CanModify(requester, post); err != nil {
		return nil, err
	}

	post.Title = title
	post.Body = body
	post.Category = category

	if image != nil {
		oldPublicID := post.ImagePublicID
		publicID, url, err := s.uploadImage(image, imageHeader)
		if err != nil {
			return nil, err
		}
		post.ImagePublicID = publicID
		post.ImageURL = url
		if oldPublicID != "" {
			_ = s.imageService.DeleteImage(oldPublicID)
		}
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	return s.postRepo.FindByID(id)
}

// Delete removes a post and its stored image, author only
func (s *postService) Delete(requester *models.User, id uint) error {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := permissions.CanModify(requester, post); err != nil {
		return err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	if post.ImagePublicID != "" {
		_ = s.imageService.DeleteImage(post.ImagePublicID)
	}

	return nil
}

// ToggleLike flips the requester's like on a post: liked posts are unliked,
// unliked posts are liked. Any authenticated user may toggle, the author too.
func (s *postService) ToggleLike(requester *models.User, postID uint) error {
	if err := permissions.CanCreate(requester); err != nil {
		return err
	}

	_, err := s.postRepo.ToggleLike(requester.ID, postID)
	return err
}

// uploadImage checks the attachment against the upload limit and stores it
// under a collision-free name
func (s *postService) uploadImage(image multipart.File, imageHeader *multipart.FileHeader) (string, string, error) {
	if imageHeader != nil && imageHeader.Size > s.config.Storage.MaxUploadSize {
		return "", "", apperrors.NewValidation("image", fmt.Sprintf("image exceeds the upload limit of %d bytes", s.config.Storage.MaxUploadSize))
	}

	name := "post"
	if imageHeader != nil {
		base := filepath.Base(imageHeader.Filename)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	fileName := fmt.Sprintf("%s_%d", name, time.Now().UnixNano())
	return s.imageService.UploadImage(image, fileName)
}
