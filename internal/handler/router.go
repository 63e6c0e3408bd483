package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mid "inventory-service/internal/middleware"
	"inventory-service/pkg/validate"
)

// RegisterRoutes wires all API routes onto the Echo instance. The dashboard
// read endpoints are open; mutating product and category routes require a
// valid bearer token.
func RegisterRoutes(e *echo.Echo) {
	e.Validator = validate.Validator{}

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/", Hello)

	// Product collection
	e.GET("/products", ListProducts)
	e.GET("/products/:id", GetProduct)
	e.POST("/products", CreateProduct, mid.AuthMiddleware)
	e.PUT("/products/:id", UpdateProduct, mid.AuthMiddleware)
	e.DELETE("/products/:id", DeleteProduct, mid.AuthMiddleware)

	// Categories
	e.GET("/categories", ListCategories)
	e.POST("/categories", CreateCategory, mid.AuthMiddleware)
	e.DELETE("/categories/:id", DeleteCategory, mid.AuthMiddleware)

	// Activity feed
	e.GET("/recent-activity", ListActivities)
	e.POST("/recent-activity", CreateActivity)

	// Product returns
	e.GET("/product-returns", ListReturns)
	e.POST("/product-returns", CreateReturn)

	// Reports
	reportAPI := e.Group("/api")
	reportAPI.GET("/product-returns-report", ReturnsReport)
	reportAPI.GET("/weekly-sales", WeeklySales)
	reportAPI.GET("/supplier-performance", SupplierPerformance)
}
