package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "faktor/docs"
	"faktor/internal/domain"
	"faktor/internal/handler"
	"faktor/internal/middleware"
	"faktor/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	invoiceH *handler.InvoiceHandler,
	customerH *handler.CustomerHandler,
	companyH *handler.CompanyHandler,
	imageH *handler.ImageHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Invoice routes
	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/stats", invoiceH.Stats)
	invoices.GET("/export/csv", invoiceH.ExportCSV)
	invoices.GET("/export/xlsx", invoiceH.ExportXLSX)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PUT("/:id", invoiceH.Update)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.POST("/:id/duplicate", invoiceH.Duplicate)
	invoices.GET("/:id/pdf", invoiceH.RenderPDF)
	invoices.POST("/:id/send", invoiceH.Send)

	// Customer routes
	customers := protected.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.GetByID)
	customers.PUT("/:id", customerH.Update)
	customers.DELETE("/:id", customerH.Delete)

	// Company profile (singleton)
	company := protected.Group("/company")
	company.GET("", companyH.Get)
	company.PUT("", companyH.Update)
	company.POST("/reset", companyH.Reset)

	// Image slots
	images := protected.Group("/images")
	images.GET("/:kind", imageH.Get)
	images.PUT("/:kind", imageH.Upload)
	images.DELETE("/:kind", middleware.RequireRole(domain.RoleAdmin), imageH.Delete)

	return r
}
