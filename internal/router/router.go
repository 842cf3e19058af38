package router

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/handler"
	"gstbill/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	invoiceH *handler.InvoiceHandler,
	stateCodeH *handler.StateCodeHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
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

	v1 := r.Group("/api/v1")

	// Invoice routes
	invoices := v1.Group("/invoices")
	invoices.POST("/preview", invoiceH.Preview)
	invoices.POST("", invoiceH.Issue)
	invoices.GET("", invoiceH.List)
	invoices.GET("/export", invoiceH.ExportCSV)
	invoices.GET("/:id", invoiceH.GetByID)

	// GST state-code master
	v1.GET("/state-codes", stateCodeH.List)

	return r
}
