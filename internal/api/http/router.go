package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gearshed-backend/internal/config"
	"gearshed-backend/internal/security"
	"gearshed-backend/internal/service"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Config     *config.Config
	Verifier   security.TokenVerifier
	CatalogSvc service.CatalogService
	CategSvc   service.CategoryService
	CartSvc    service.CartService
	RentalSvc  service.RentalService
	ReportSvc  service.ReportService
	UserSvc    service.UserService
	Hub        *Hub
}

// NewRouter builds the Gin engine with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	router.Use(cors.New(corsCfg))

	catalog := NewCatalogHandler(deps.CatalogSvc, deps.CategSvc)
	cart := NewCartHandler(deps.CartSvc, deps.RentalSvc)
	rental := NewRentalHandler(deps.RentalSvc, deps.UserSvc, deps.ReportSvc)
	admin := NewAdminHandler(deps.RentalSvc, deps.UserSvc, deps.ReportSvc)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/items", catalog.ListItems)
		api.GET("/items/:id", catalog.GetItem)
		api.GET("/categories", catalog.ListCategories)
		api.GET("/live", deps.Hub.ServeWS)
	}

	authed := api.Group("")
	authed.Use(AuthRequired(deps.Verifier, deps.UserSvc))
	{
		authed.GET("/cart", cart.GetCart)
		authed.POST("/cart", cart.Reserve)
		authed.DELETE("/cart", cart.Clear)
		authed.DELETE("/cart/:itemId", cart.RemoveLine)
		authed.POST("/checkout", cart.Checkout)

		authed.GET("/rentals", rental.ListRentals)
		authed.POST("/rentals/return", rental.Return)
		authed.GET("/history", rental.History)

		authed.POST("/reports", rental.SubmitReport)
		authed.GET("/reports", rental.ListMyReports)
	}

	adminGrp := authed.Group("/admin")
	adminGrp.Use(AdminOnly())
	{
		adminGrp.POST("/items", catalog.CreateItem)
		adminGrp.PUT("/items/:id", catalog.UpdateItem)
		adminGrp.DELETE("/items/:id", catalog.DeleteItem)

		adminGrp.POST("/categories", catalog.CreateCategory)
		adminGrp.PUT("/categories/:id", catalog.UpdateCategory)
		adminGrp.DELETE("/categories/:id", catalog.DeleteCategory)

		adminGrp.GET("/users", admin.ListUsers)
		adminGrp.GET("/rentals/overdue", admin.ListOverdue)
		adminGrp.POST("/rentals/extend", admin.ExtendDueDate)
		adminGrp.POST("/rentals/shorten", admin.ShortenDueDate)
		adminGrp.POST("/returns", admin.Return)

		adminGrp.GET("/reports", admin.ListReports)
		adminGrp.POST("/reports/:id/resolve", admin.ResolveReport)
	}

	return router
}
