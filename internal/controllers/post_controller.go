package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/rlozl15/pypost/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController handles the post lifecycle and the like toggle
type PostController struct {
	postService services.PostService
}

// NewPostController creates a PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{postService: postService}
}

// PostRequest is the write-model input for posts. It deliberately has no
// author, profile or likes fields; those are derived server-side.
type PostRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// List returns posts newest first with optional author/likes filters
func (c *PostController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx)

	var authorID, likedBy *uint
	if authorStr := ctx.Query("author"); authorStr != "" {
		if id, err := strconv.ParseUint(authorStr, 10, 32); err == nil {
			v := uint(id)
			authorID = &v
		}
	}
	if likesStr := ctx.Query("likes"); likesStr != "" {
		if id, err := strconv.ParseUint(likesStr, 10, 32); err == nil {
			v := uint(id)
			likedBy = &v
		}
	}

	posts, total, err := c.postService.List(page, limit, authorID, likedBy)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": posts,
	})
}

// GetByID returns a single post
func (c *PostController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	post, err := c.postService.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Create stores a new post authored by the requester
func (c *PostController) Create(ctx *gin.Context) {
	title, body, category, image, imageHeader, ok := c.bindInput(ctx)
	if !ok {
		return
	}
	if image != nil {
		defer image.Close()
	}

	post, err := c.postService.Create(currentUser(ctx), title, body, category, image, imageHeader)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// Update modifies a post, author only
func (c *PostController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	title, body, category, image, imageHeader, ok := c.bindInput(ctx)
	if !ok {
		return
	}
	if image != nil {
		defer image.Close()
	}

	post, err := c.postService.Update(currentUser(ctx), id, title, body, category, image, imageHeader)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete removes a post, author only
func (c *PostController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.postService.Delete(currentUser(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleLike flips the requester's like on a post
func (c *PostController) ToggleLike(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.postService.ToggleLike(currentUser(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}

// bindInput reads the write-model fields from either a multipart form (image
// attached) or a JSON body
func (c *PostController) bindInput(ctx *gin.Context) (title, body, category string, image multipart.File, imageHeader *multipart.FileHeader, ok bool) {
	if ctx.ContentType() == "multipart/form-data" {
		if err := ctx.Request.ParseMultipartForm(32 << 20); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse multipart form"})
			return "", "", "", nil, nil, false
		}

		title = ctx.PostForm("title")
		body = ctx.PostForm("body")
		category = ctx.PostForm("category")

		if title == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"title": "this field is required"}})
			return "", "", "", nil, nil, false
		}

		// image attachment is optional
		if file, header, err := ctx.Request.FormFile("image"); err == nil {
			image = file
			imageHeader = header
		}

		return title, body, category, image, imageHeader, true
	}

	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", "", nil, nil, false
	}

	return req.Title, req.Body, req.Category, nil, nil, true
}
