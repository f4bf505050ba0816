package http

import "github.com/gin-gonic/gin"

// Register mounts the visibility routes on a group, expected at
// /api/v1/visibility.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.POST("/analyze", h.Analyze)
	g.GET("/history/:brand", h.History)
	g.GET("/runs/:id", h.RunByID)
	g.GET("/snapshot/:brand", h.Snapshot)
}
