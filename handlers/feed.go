package handlers

import (
	"net/http"
	"strconv"

	"weddify/services/feed"

	"github.com/gin-gonic/gin"
)

// FeedHandler exposes the community feed endpoints.
type FeedHandler struct {
	FeedService feed.FeedService
}

func NewFeedHandler(svc feed.FeedService) *FeedHandler {
	return &FeedHandler{FeedService: svc}
}

// CreatePostHandler handles POST /feed/posts.
func (h *FeedHandler) CreatePostHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, _ := c.Get("role")
	authorType, _ := role.(string)
	if authorType != "vendor" {
		authorType = "user"
	}

	var req struct {
		Content string   `json:"content"`
		Images  []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	post, err := h.FeedService.CreatePost(idStr, authorType, req.Content, req.Images)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetFeedHandler handles GET /feed.
func (h *FeedHandler) GetFeedHandler(c *gin.Context) {
	offset, _ := strconv.ParseInt(c.Query("offset"), 10, 64)
	page, err := h.FeedService.GetFeedPage(c.Request.Context(), offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// LikePostHandler handles POST /feed/posts/:id/like.
func (h *FeedHandler) LikePostHandler(c *gin.Context) {
	if err := h.FeedService.LikePost(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post liked"})
}

// DeletePostHandler handles DELETE /feed/posts/:id.
func (h *FeedHandler) DeletePostHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.FeedService.DeletePost(idStr, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// AddCommentHandler handles POST /feed/posts/:id/comments.
func (h *FeedHandler) AddCommentHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	comment, err := h.FeedService.AddComment(idStr, c.Param("id"), req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListCommentsHandler handles GET /feed/posts/:id/comments.
func (h *FeedHandler) ListCommentsHandler(c *gin.Context) {
	comments, err := h.FeedService.ListComments(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
