package controllers

import (
	"net/http"

	"github.com/rlozl15/pypost/internal/services"

	"github.com/gin-gonic/gin"
)

// CommentController handles the comment lifecycle
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CommentCreateRequest is the write-model input for new comments. Author and
// profile fields are absent on purpose; they are derived server-side.
type CommentCreateRequest struct {
	PostID uint   `json:"post" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// CommentUpdateRequest is the write-model input for comment edits
type CommentUpdateRequest struct {
	Text string `json:"text" binding:"required"`
}

// List returns comments oldest first
func (c *CommentController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx)

	comments, total, err := c.commentService.List(page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": comments,
	})
}

// GetByID returns a single comment
func (c *CommentController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	comment, err := c.commentService.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

// Create stores a new comment authored by the requester
func (c *CommentController) Create(ctx *gin.Context) {
	var req CommentCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := c.commentService.Create(currentUser(ctx), req.PostID, req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// Update modifies a comment, author only
func (c *CommentController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req CommentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := c.commentService.Update(currentUser(ctx), id, req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

// Delete removes a comment, author only
func (c *CommentController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.commentService.Delete(currentUser(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
