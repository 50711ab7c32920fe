package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/22AIML023Hiren/video-summariser/internal/api/handlers"
)

type Deps struct {
	Summarize *handlers.SummarizeHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(cors.Default())

	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/summarize", d.Summarize.Summarize)
}
