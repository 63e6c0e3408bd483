package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name            string     `json:"name" validate:"required"`
	Description     string     `json:"description"`
	Barcode         string     `json:"barcode" validate:"required"`
	CategoryID      uint       `json:"category_id"`
	UnitPrice       float64    `json:"unit_price" validate:"gte=0"`
	CostPrice       float64    `json:"cost_price" validate:"gte=0"`
	QuantityInStock int        `json:"quantity_in_stock" validate:"gte=0"`
	ReorderLevel    int        `json:"reorder_level" validate:"gte=0"`
	SupplierID      uint       `json:"supplier_id"`
	DateOfEntry     *time.Time `json:"date_of_entry"`
	Size            string     `json:"size"`
	Color           string     `json:"color"`
	Material        string     `json:"material"`
	StyleDesign     string     `json:"style_design"`
	ProductImage    string     `json:"product_image"`
	Dimensions      string     `json:"dimensions"`
	Weight          float64    `json:"weight"`
	Brand           string     `json:"brand"`
	Season          string     `json:"season"`
	ExpirationDate  *time.Time `json:"expiration_date"`
	Status          string     `json:"status"`
	Location        string     `json:"location"`
	Discount        float64    `json:"discount"`
}

func (r *ProductRequest) apply(p *model.Product) {
	p.Name = r.Name
	p.Description = r.Description
	p.Barcode = r.Barcode
	p.CategoryID = r.CategoryID
	p.UnitPrice = r.UnitPrice
	p.CostPrice = r.CostPrice
	p.QuantityInStock = r.QuantityInStock
	p.ReorderLevel = r.ReorderLevel
	p.SupplierID = r.SupplierID
	p.DateOfEntry = r.DateOfEntry
	p.Size = r.Size
	p.Color = r.Color
	p.Material = r.Material
	p.StyleDesign = r.StyleDesign
	p.ProductImage = r.ProductImage
	p.Dimensions = r.Dimensions
	p.Weight = r.Weight
	p.Brand = r.Brand
	p.Season = r.Season
	p.ExpirationDate = r.ExpirationDate
	p.Status = r.Status
	p.Location = r.Location
	p.Discount = r.Discount
}

// ListProducts handles retrieving the full product collection, newest first
func ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing products")

	db := database.GetDB()
	var products []model.Product

	query := db.Order("product_id desc")

	// Filter by category if specified
	categoryID := c.QueryParam("category_id")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
		log.Info("Filtering products by category", zap.String("category_id", categoryID))
	}

	// Filter by status if specified
	status := c.QueryParam("status")
	if status != "" {
		query = query.Where("status = ?", status)
		log.Info("Filtering products by status", zap.String("status", status))
	}

	defer prometheus.TrackDBOperation("list_products")(time.Now())
	result := query.Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	prometheus.RecordProductOperation("list")
	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, echo.Map{"data": products})
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")
	log.Info("Getting product by ID", zap.String("product_id", id))

	var product model.Product
	result := database.GetDB().First(&product, id)
	if result.Error != nil {
		log.Error("Product not found",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	prometheus.RecordProductOperation("get")
	log.Info("Product retrieved successfully",
		zap.String("product_id", id),
		zap.String("product_name", product.Name))
	return c.JSON(http.StatusOK, echo.Map{"data": product})
}

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if err := c.Validate(&req); err != nil {
		log.Warn("Product request failed validation", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	log.Info("Product creation request",
		zap.String("name", req.Name),
		zap.String("barcode", req.Barcode),
		zap.Float64("unit_price", req.UnitPrice))

	// Check if product with this barcode already exists
	var count int64
	database.GetDB().Model(&model.Product{}).Where("barcode = ?", req.Barcode).Count(&count)
	if count > 0 {
		log.Warn("Product with this barcode already exists", zap.String("barcode", req.Barcode))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Product with this barcode already exists",
		})
	}

	// Create the product
	var product model.Product
	req.apply(&product)
	if product.Status == "" {
		product.Status = "active"
	}

	defer prometheus.TrackDBOperation("create_product")(time.Now())
	result := database.GetDB().Create(&product)
	if result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.String("barcode", req.Barcode),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	prometheus.RecordProductOperation("create")
	prometheus.UpdateProductInventory(
		strconv.FormatUint(uint64(product.ProductID), 10),
		product.Name,
		float64(product.QuantityInStock))

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ProductID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, echo.Map{"data": product})
}

// UpdateProduct handles updating an existing product with a full replace
func UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")
	log.Info("Updating product", zap.String("product_id", id))

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if err := c.Validate(&req); err != nil {
		log.Warn("Product request failed validation", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	// Find existing product
	var product model.Product
	result := database.GetDB().First(&product, id)
	if result.Error != nil {
		log.Error("Product not found for update",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	// Check if barcode is changed and if the new one already exists
	if req.Barcode != product.Barcode {
		log.Info("Product barcode change requested",
			zap.String("product_id", id),
			zap.String("old_barcode", product.Barcode),
			zap.String("new_barcode", req.Barcode))

		var count int64
		database.GetDB().Model(&model.Product{}).Where("barcode = ? AND product_id != ?", req.Barcode, id).Count(&count)
		if count > 0 {
			log.Warn("Product with this barcode already exists",
				zap.String("barcode", req.Barcode))
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Product with this barcode already exists",
			})
		}
	}

	oldPrice := product.UnitPrice
	req.apply(&product)

	defer prometheus.TrackDBOperation("update_product")(time.Now())
	result = database.GetDB().Save(&product)
	if result.Error != nil {
		log.Error("Failed to update product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	prometheus.RecordProductOperation("update")
	prometheus.UpdateProductInventory(
		strconv.FormatUint(uint64(product.ProductID), 10),
		product.Name,
		float64(product.QuantityInStock))

	log.Info("Product updated successfully",
		zap.String("product_id", id),
		zap.String("name", product.Name),
		zap.Float64("old_price", oldPrice),
		zap.Float64("new_price", product.UnitPrice))
	return c.JSON(http.StatusOK, echo.Map{"data": product})
}

// DeleteProduct handles deleting a product (soft delete)
func DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")
	log.Info("Deleting product", zap.String("product_id", id))

	// Get product details before deleting
	var product model.Product
	preResult := database.GetDB().First(&product, id)
	if preResult.Error == nil {
		log.Info("Found product to delete",
			zap.String("product_id", id),
			zap.String("name", product.Name))
	}

	defer prometheus.TrackDBOperation("delete_product")(time.Now())
	result := database.GetDB().Delete(&model.Product{}, id)
	if result.Error != nil {
		log.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	if result.RowsAffected == 0 {
		log.Warn("Product not found for deletion",
			zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted successfully",
		zap.String("product_id", id),
		zap.Int64("rows_affected", result.RowsAffected))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
	})
}
