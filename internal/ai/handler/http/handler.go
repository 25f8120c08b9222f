package http

import (
	"context"
	"errors"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/MyNameIsWhaaat/oceanica/internal/ai"
)

// Assistant is the part of ai.Service the handler serves.
type Assistant interface {
	Ask(ctx context.Context, question string) (ai.Answer, error)
	Facts(ctx context.Context) ai.FactSet
	Image(ctx context.Context, prompt string) (ai.Image, error)
}

type Handler struct {
	svc Assistant
}

func New(svc Assistant) *Handler {
	return &Handler{svc: svc}
}

type askRequest struct {
	Question string `json:"question"`
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(stdhttp.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}

	ans, err := h.svc.Ask(c.Request.Context(), req.Question)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusOK, ans)
}

func (h *Handler) Facts(c *gin.Context) {
	c.JSON(stdhttp.StatusOK, h.svc.Facts(c.Request.Context()))
}

func (h *Handler) Image(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(stdhttp.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}

	img, err := h.svc.Image(c.Request.Context(), req.Prompt)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(stdhttp.StatusOK, gin.H{"image": img.DataURI()})
}

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/ask", h.Ask)
	api.GET("/facts", h.Facts)
	api.POST("/images", h.Image)
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), gin.H{"error": ai.UserMessage(err)})
}

func statusFor(err error) int {
	if errors.Is(err, ai.ErrInvalidInput) {
		return stdhttp.StatusBadRequest
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return stdhttp.StatusGatewayTimeout
	}
	switch ai.KindOf(err) {
	case ai.KindRateLimited:
		return stdhttp.StatusTooManyRequests
	case ai.KindOverloaded, ai.KindQuotaExhausted:
		return stdhttp.StatusServiceUnavailable
	}
	return stdhttp.StatusBadGateway
}
