package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"review-insight/api/handlers"
	"review-insight/api/middleware"
	"review-insight/config"
	_ "review-insight/docs"
	"review-insight/services"
)

const healthTimeout = 3 * time.Second

// Deps are the services behind the HTTP API. Health reports whether the
// document store is reachable.
type Deps struct {
	Sentiments     *services.SentimentService
	Classification *services.ClassificationService
	Reviews        *services.ReviewService
	Products       *services.ProductService
	Statistics     *services.StatisticService
	Insights       *services.InsightService
	Health         func(ctx context.Context) error
}

func New(cfg config.ServerConfig, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.BodyLimit(cfg.BodyLimitMB))
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if d.Health != nil {
			if err := d.Health(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		sentimen := api.Group("/sentimen")
		sentimen.GET("", handlers.ListSentimentsHandler(d.Sentiments))
		sentimen.GET("/stats", handlers.SentimentStatsHandler(d.Sentiments))
		sentimen.GET("/top-keywords", handlers.TopKeywordsHandler(d.Sentiments))
		sentimen.GET("/recent", handlers.RecentSentimentsHandler(d.Sentiments))
		sentimen.GET("/produk-count", handlers.SentimentProductCountHandler(d.Sentiments))
		sentimen.GET("/analysis", handlers.SentimentAnalysisHandler(d.Sentiments))
		sentimen.POST("/classify", handlers.ClassifyAllHandler(d.Classification))
		sentimen.POST("/classify/:id", handlers.ClassifyReviewHandler(d.Classification))

		ulasan := api.Group("/ulasan")
		ulasan.GET("", handlers.ListReviewsHandler(d.Reviews))
		ulasan.GET("/produk/:nama_produk", handlers.ReviewsByProductHandler(d.Reviews))
		ulasan.GET("/rating/:rating", handlers.ReviewsByRatingHandler(d.Reviews))
		ulasan.POST("", handlers.CreateReviewHandler(d.Reviews))
		ulasan.DELETE("/:id", handlers.DeleteReviewHandler(d.Reviews))

		produk := api.Group("/produk")
		produk.GET("", handlers.SearchProductsHandler(d.Products))
		produk.GET("/rekomendasi", handlers.RecommendedProductsHandler(d.Products))
		produk.GET("/count", handlers.CountProductsHandler(d.Products))
		produk.GET("/top-rated", handlers.TopRatedProductsHandler(d.Products))
		produk.GET("/with-sentiments", handlers.ProductsWithSentimentsHandler(d.Products))
		produk.GET("/detail/:id", handlers.ProductDetailHandler(d.Products))
		produk.GET("/:id/rating", handlers.ProductRatingHandler(d.Products))
		produk.GET("/:id/reviews", handlers.ProductReviewsHandler(d.Products))
		produk.POST("", handlers.CreateProductHandler(d.Products))
		produk.PUT("/:id", handlers.UpdateProductHandler(d.Products))
		produk.DELETE("/:id", handlers.DeleteProductHandler(d.Products))

		api.GET("/statistik", handlers.StatisticsHandler(d.Statistics))

		analyze := api.Group("/analyze")
		analyze.POST("", handlers.AnalyzeDashboardHandler(d.Insights))
		analyze.POST("/keywords", handlers.AnalyzeKeywordsHandler(d.Insights))
	}

	return r
}
