package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")

	api.GET("/categories", h.ListCategories)

	api.GET("/posts", h.ListPosts)
	api.POST("/posts", h.CreatePost)
	api.GET("/posts/:id", h.GetPost)
	api.POST("/posts/:id/likes", h.LikePost)
	api.POST("/posts/:id/comments", h.AddComment)
	api.POST("/posts/:id/comments/:commentID/likes", h.LikeComment)

	api.GET("/profiles/:name", h.GetProfile)
}
