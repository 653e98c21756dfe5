package controllers_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentResponse struct {
	ID     uint   `json:"id"`
	PostID uint   `json:"post"`
	UserID uint   `json:"user_id"`
	Text   string `json:"text"`
}

type commentListResponse struct {
	Count   int64             `json:"count"`
	Results []commentResponse `json:"results"`
}

func TestCreateComment(t *testing.T) {
	router, _ := setupTestRouter(t)
	token, id := registerUser(t, router, "test_user")
	postID := createPost(t, router, token, "test_title")

	w := doJSON(t, router, "POST", "/comments/", token, map[string]any{
		"post": postID,
		"text": "nice post",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var comment commentResponse
	decodeJSON(t, w, &comment)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, id, comment.UserID)
	assert.Equal(t, "nice post", comment.Text)
}

func TestCreateCommentWithoutAuthorization(t *testing.T) {
	router, _ := setupTestRouter(t)
	token, _ := registerUser(t, router, "test_user")
	postID := createPost(t, router, token, "test_title")

	w := doJSON(t, router, "POST", "/comments/", "", map[string]any{
		"post": postID,
		"text": "anonymous comment",
	})
	assert.Equal(t, 401, w.Code)
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	router, _ := setupTestRouter(t)
	token, _ := registerUser(t, router, "test_user")

	w := doJSON(t, router, "POST", "/comments/", token, map[string]any{
		"post": 99999,
		"text": "orphan comment",
	})
	assert.Equal(t, 400, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeJSON(t, w, &resp)
	assert.Contains(t, resp.Errors, "post")
}

func TestListCommentsAscendingOrder(t *testing.T) {
	router, _ := setupTestRouter(t)
	token, _ := registerUser(t, router, "test_user")
	postID := createPost(t, router, token, "test_title")

	var ids []uint
	for _, text := range []string{"first", "second", "third"} {
		w := doJSON(t, router, "POST", "/comments/", token, map[string]any{
			"post": postID,
			"text": text,
		})
		require.Equal(t, 201, w.Code)

		var comment commentResponse
		decodeJSON(t, w, &comment)
		ids = append(ids, comment.ID)
	}

	w := doJSON(t, router, "GET", "/comments/", "", nil)
	require.Equal(t, 200, w.Code)

	var list commentListResponse
	decodeJSON(t, w, &list)
	require.Equal(t, int64(3), list.Count)
	for i, comment := range list.Results {
		assert.Equal(t, ids[i], comment.ID)
	}
}

func TestGetSingleComment(t *testing.T) {
	router, _ := setupTestRouter(t)
	token, _ := registerUser(t, router, "test_user")
	postID := createPost(t, router, token, "test_title")

	w := doJSON(t, router, "POST", "/comments/", token, map[string]any{
		"post": postID,
		"text": "nice post",
	})
	require.Equal(t, 201, w.Code)

	var created commentResponse
	decodeJSON(t, w, &created)

	w = doJSON(t, router, "GET", fmt.Sprintf("/comments/%d/", created.ID), "", nil)
	require.Equal(t, 200, w.Code)

	var comment commentResponse
	decodeJSON(t, w, &comment)
	assert.Equal(t, "nice post", comment.Text)
}

func TestGetMissingComment(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/comments/99999/", "", nil)
	assert.Equal(t, 404, w.Code)
}

func TestUpdateComment(t *testing.T) {
	router, _ := setupTestRouter(t)
	token, _ := registerUser(t, router, "test_user")
	postID := createPost(t, router, token, "test_title")

	w := doJSON(t, router, "POST", "/comments/", token, map[string]any{
		"post": postID,
		"text": "nice post",
	})
	require.Equal(t, 201, w.Code)

	var created commentResponse
	decodeJSON(t, w, &created)

	w = doJSON(t, router, "PUT", fmt.Sprintf("/comments/%d/", created.ID), token, map[string]string{
		"text": "edited",
	})
	require.Equal(t, 200, w.Code)

	var comment commentResponse
	decodeJSON(t, w, &comment)
	assert.Equal(t, "edited", comment.Text)
}

func TestUpdateCommentByNonAuthor(t *testing.T) {
	router, _ := setupTestRouter(t)
	tokenA, _ := registerUser(t, router, "author_a")
	tokenB, _ := registerUser(t, router, "other_b")
	postID := createPost(t, router, tokenA, "test_title")

	w := doJSON(t, router, "POST", "/comments/", tokenA, map[string]any{
		"post": postID,
		"text": "nice post",
	})
	require.Equal(t, 201, w.Code)

	var created commentResponse
	decodeJSON(t, w, &created)

	w = doJSON(t, router, "PUT", fmt.Sprintf("/comments/%d/", created.ID), tokenB, map[string]string{
		"text": "hijacked",
	})
	assert.Equal(t, 403, w.Code)
}

func TestDeleteComment(t *testing.T) {
	router, _ := setupTestRouter(t)
	token, _ := registerUser(t, router, "test_user")
	postID := createPost(t, router, token, "test_title")

	w := doJSON(t, router, "POST", "/comments/", token, map[string]any{
		"post": postID,
		"text": "nice post",
	})
	require.Equal(t, 201, w.Code)

	var created commentResponse
	decodeJSON(t, w, &created)

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/comments/%d/", created.ID), token, nil)
	require.Equal(t, 204, w.Code)

	w = doJSON(t, router, "GET", fmt.Sprintf("/comments/%d/", created.ID), "", nil)
	assert.Equal(t, 404, w.Code)
}

func TestDeleteCommentByNonAuthor(t *testing.T) {
	router, _ := setupTestRouter(t)
	tokenA, _ := registerUser(t, router, "author_a")
	tokenB, _ := registerUser(t, router, "other_b")
	postID := createPost(t, router, tokenA, "test_title")

	w := doJSON(t, router, "POST", "/comments/", tokenA, map[string]any{
		"post": postID,
		"text": "nice post",
	})
	require.Equal(t, 201, w.Code)

	var created commentResponse
	decodeJSON(t, w, &created)

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/comments/%d/", created.ID), tokenB, nil)
	assert.Equal(t, 403, w.Code)
}
