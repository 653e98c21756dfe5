package models

import (
	"time"
)

// User is an account holder
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// relations
	Profile  *Profile  `json:"profile,omitempty"`
	Posts    []Post    `json:"-"`
	Comments []Comment `json:"-"`
}

// Token is the opaque bearer credential, one per user, issued at registration
type Token struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-"`
}

// Profile extends a user account one-to-one
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Nickname  string    `json:"nickname"`
	Position  string    `json:"position"`
	Subjects  string    `json:"subjects"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-"`
}

// Post is authored content
type Post struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	ProfileID     uint      `json:"profile_id" gorm:"not null"`
	Title         string    `json:"title" gorm:"not null"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url"`
	ImagePublicID string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// relations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Profile  *Profile  `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
	Likes    []User    `json:"-" gorm:"many2many:post_likes;"`
	Comments []Comment `json:"-"`

	// response only
	LikeUserIDs   []uint `json:"likes" gorm:"-"`
	LikesCount    int64  `json:"likes_count" gorm:"-"`
	CommentsCount int64  `json:"comments_count" gorm:"-"`
}

// Comment is authored text attached to a post
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ProfileID uint      `json:"profile_id" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// relations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
	Post    Post     `json:"-"`
}

// AuthorID reports the owning account of the profile
func (p *Profile) AuthorID() uint { return p.UserID }

// AuthorID reports the authoring account of the post
func (p *Post) AuthorID() uint { return p.UserID }

// AuthorID reports the authoring account of the comment
func (c *Comment) AuthorID() uint { return c.UserID }

// PostLike is the user/post join table backing the likes set.
// The composite primary key makes a duplicate like impossible at the row level.
type PostLike struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the join table name aligned with the Post.Likes relation
func (PostLike) TableName() string {
	return "post_likes"
}
