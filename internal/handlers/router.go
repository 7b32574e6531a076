package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router wires the REST surface. Mutation routes sit behind the auth
// gate; reads and contact intake are public.
func (h *Handler) Router(corsOrigins []string, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))
	r.Use(corsMiddleware(corsOrigins))

	// uploaded images are served from a static path mirroring storage
	r.Static("/uploads", uploadDir)

	r.GET("/health", h.health)

	api := r.Group("/api")
	{
		api.POST("/auth/login", h.login)
		api.GET("/auth/verify", h.gate.Middleware(), h.verify)

		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		api.GET("/settings", h.getSettings)
		api.POST("/contact", h.submitContact)

		admin := api.Group("", h.gate.Middleware())
		{
			admin.POST("/products", h.createProduct)
			admin.PUT("/products/:id", h.updateProduct)
			admin.DELETE("/products/:id", h.deleteProduct)
			admin.PUT("/settings", h.updateSettings)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
