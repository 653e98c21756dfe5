package repository

import (
	"errors"

	"github.com/rlozl15/pypost/internal/apperrors"
	"github.com/rlozl15/pypost/internal/models"

	"gorm.io/gorm"
)

// PostRepository is the data access interface for posts and likes
type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
	List(page, limit int, authorID, likedBy *uint) ([]models.Post, int64, error)
	ToggleLike(userID, postID uint) (liked bool, err error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create stores a new post
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID fetches a post with its author, profile and like set
func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").Preload("Profile").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := r.fillCounts(&post); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update saves post changes
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post and its dependent rows
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// List returns posts ordered by descending id with optional author/liker filters
func (r *postRepository) List(page, limit int, authorID, likedBy *uint) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	offset := (page - 1) * limit

	query := r.db.Model(&models.Post{}).Preload("User").Preload("Profile")

	if authorID != nil {
		query = query.Where("posts.user_id = ?", *authorID)
	}

	if likedBy != nil {
		// select posts.* so join-table columns cannot shadow post fields
		query = query.Select("posts.*").
			Joins("JOIN post_likes ON post_likes.post_id = posts.id").
			Where("post_likes.user_id = ?", *likedBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("posts.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	for i := range posts {
		if err := r.fillCounts(&posts[i]); err != nil {
			return nil, 0, err
		}
	}

	return posts, total, nil
}

// ToggleLike atomically flips the (user, post) like membership.
// The flip is decided by row effects inside one transaction, not by a
// separate read, so concurrent toggles cannot lose updates.
func (r *postRepository) ToggleLike(userID, postID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		result := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.PostLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			liked = false
			return nil
		}

		liked = true
		return tx.Create(&models.PostLike{UserID: userID, PostID: postID}).Error
	})
	return liked, err
}

// fillCounts loads the response-only like and comment fields
func (r *postRepository) fillCounts(post *models.Post) error {
	var likeIDs []uint
	if err := r.db.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Order("user_id").Pluck("user_id", &likeIDs).Error; err != nil {
		return err
	}
	if likeIDs == nil {
		likeIDs = []uint{}
	}
	post.LikeUserIDs = likeIDs
	post.LikesCount = int64(len(likeIDs))
	return r.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&post.CommentsCount).Error
}
