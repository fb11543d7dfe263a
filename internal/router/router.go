// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/appdevg6/boost-web/internal/backend"
	"github.com/appdevg6/boost-web/internal/config"
	"github.com/appdevg6/boost-web/internal/handlers"
	"github.com/appdevg6/boost-web/internal/middleware"
	"github.com/appdevg6/boost-web/internal/session"
)

// Options let tests swap the template directory.
type Options struct {
	TemplateGlob string
}

func Initialize(cfg *config.Config, log *logrus.Logger, opts Options) *gin.Engine {
	// Initialize backend resource clients
	core := backend.New(cfg.Backend, log)
	users := backend.NewUserClient(core)
	products := backend.NewProductClient(core)
	applications := backend.NewApplicationClient(core)
	recommendations := backend.NewRecommendationClient(core)

	// Session and flash stores
	sessions := session.NewStore(cfg.Session)
	flashes := session.NewFlashStore(cfg.Session)
	render := handlers.NewRenderer(flashes)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, sessions, flashes, render)
	homeHandler := handlers.NewHomeHandler(products, recommendations, render)
	reviewHandler := handlers.NewReviewHandler(products, recommendations, flashes, render)
	productHandler := handlers.NewProductHandler(products, flashes, render)
	applicationHandler := handlers.NewApplicationHandler(applications, users, sessions, flashes, render, log)
	adminHandler := handlers.NewAdminHandler(applications, flashes, render)
	apiHandler := handlers.NewAPIHandler(products, recommendations)

	// Initialize Gin router
	r := gin.New()

	glob := opts.TemplateGlob
	if glob == "" {
		glob = "web/templates/*.html"
	}
	r.LoadHTMLGlob(glob)
	r.Static("/static", "./web/static")

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Public pages
	r.GET("/", middleware.OptionalAuth(sessions), homeHandler.Welcome)

	auth := r.Group("")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.GET("/login", authHandler.LoginPage)
		auth.POST("/login", authHandler.Login)
		auth.GET("/register", authHandler.RegisterPage)
		auth.POST("/register", authHandler.Register)
		auth.GET("/logout", authHandler.Logout)
	}

	// Identity-requiring pages
	home := r.Group("/home")
	home.Use(middleware.AuthRequired(sessions))
	{
		home.GET("", homeHandler.Home)
		home.GET("/products/:id/reviews", reviewHandler.ReviewsPage)
		home.POST("/products/:id/reviews", reviewHandler.SubmitReview)
		home.POST("/products/:id/reviews/:rid/delete", reviewHandler.DeleteReview)
	}

	// Seller pages
	sellerProducts := r.Group("/products")
	sellerProducts.Use(middleware.AuthRequired(sessions), middleware.SellerRequired())
	{
		sellerProducts.GET("", productHandler.MyProducts)
		sellerProducts.GET("/new", productHandler.NewProductPage)
		sellerProducts.POST("/new", productHandler.CreateProduct)
		sellerProducts.GET("/edit/:id", productHandler.EditProductPage)
		sellerProducts.POST("/edit/:id", productHandler.UpdateProduct)
		sellerProducts.POST("/delete/:id", productHandler.DeleteProduct)
	}

	// Seller application flow
	application := r.Group("/seller-application")
	application.Use(middleware.AuthRequired(sessions))
	{
		application.GET("", applicationHandler.ApplicationPage)
		application.POST("", applicationHandler.SubmitApplication)
	}

	// Admin panel
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(sessions), middleware.AdminRequired())
	{
		admin.GET("", adminHandler.Panel)
		admin.POST("/applications/:id/approve", adminHandler.Approve)
		admin.POST("/applications/:id/reject", adminHandler.Reject)
	}

	// JSON endpoints for page scripts
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(sessions))
	{
		api.GET("/products", apiHandler.Products)
		api.GET("/ratings", apiHandler.Ratings)
	}

	return r
}
