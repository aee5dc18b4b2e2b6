package server

import (
	"context"
	"net/http"
	"time"

	catH "github.com/Naveenravi07/ecommerce-backend/internal/category/handler"
	"github.com/Naveenravi07/ecommerce-backend/internal/logger"
	"github.com/Naveenravi07/ecommerce-backend/internal/middleware"
	prodH "github.com/Naveenravi07/ecommerce-backend/internal/product/handler"
	"github.com/Naveenravi07/ecommerce-backend/internal/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Product  *prodH.ProductHandler
	Category *catH.CategoryHandler
}

type HTTPConfig struct {
	Development    bool
	AllowedOrigins []string
}

func NewRouter(cfg HTTPConfig, h Handlers, db Pinger, log logger.ZapLogger) *gin.Engine {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", healthz(db))

	products := r.Group("/products")
	products.GET("/list", h.Product.ListProducts)
	products.GET("/:id", h.Product.GetProduct)

	categories := r.Group("/categories")
	categories.GET("", h.Category.ListCategories)
	categories.GET("/:id", h.Category.GetCategory)

	admin := r.Group("/admin")
	admin.POST("/products/new", h.Product.CreateProduct)
	admin.DELETE("/products/:id", h.Product.DeleteProduct)
	admin.POST("/categories/new", h.Category.CreateCategory)

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})

	return r
}

func healthz(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			response.Fail(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable", nil)
			return
		}
		response.OK(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
