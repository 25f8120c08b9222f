package http

import (
	"errors"
	stdhttp "net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MyNameIsWhaaat/oceanica/internal/community/model"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/service"
)

type Handler struct {
	svc service.CommunityService
}

func New(svc service.CommunityService) *Handler {
	return &Handler{svc: svc}
}

type createPostRequest struct {
	Name     string         `json:"name"`
	Content  string         `json:"content"`
	Category model.Category `json:"category"`
}

type createCommentRequest struct {
	ParentID int64  `json:"parent_id"`
	Name     string `json:"name"`
	Content  string `json:"content"`
}

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(stdhttp.StatusOK, gin.H{"categories": model.Categories})
}

func (h *Handler) ListPosts(c *gin.Context) {
	q := model.FeedQuery{
		Category: model.Category(c.Query("category")),
		Sort:     model.Sort(c.Query("sort")),
		Author:   c.Query("author"),
	}

	posts, err := h.svc.ListPosts(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(stdhttp.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}

	p, err := h.svc.CreatePost(c.Request.Context(), req.Name, req.Content, req.Category)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusCreated, p)
}

func (h *Handler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetPost(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusOK, p)
}

func (h *Handler) LikePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.LikePost(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusOK, p)
}

func (h *Handler) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(stdhttp.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}

	node, err := h.svc.AddComment(c.Request.Context(), postID, req.ParentID, req.Name, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusCreated, node)
}

func (h *Handler) LikeComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		return
	}

	node, err := h.svc.LikeComment(c.Request.Context(), postID, commentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusOK, node)
}

func (h *Handler) GetProfile(c *gin.Context) {
	prof, err := h.svc.Profile(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusOK, prof)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(stdhttp.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(stdhttp.StatusNotFound, gin.H{"error": "not found"})
	default:
		_ = c.Error(err)
		c.JSON(stdhttp.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(stdhttp.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
