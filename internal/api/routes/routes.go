package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/htmlchat/internal/api/handlers"
)

type Deps struct {
	Generate *handlers.GenerateHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.POST("/generate", d.Generate.Generate)
}
