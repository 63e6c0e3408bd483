package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// ReturnRequest defines the structure for product return submissions.
// The "id" field references a product or a sales order depending on "type".
type ReturnRequest struct {
	UserID      uint               `json:"user_id" validate:"required"`
	TargetID    uint               `json:"id" validate:"required,gt=0"`
	Type        model.ReturnType   `json:"type" validate:"required,oneof=product order"`
	Quantity    int                `json:"quantity" validate:"required,min=1"`
	Reason      model.ReturnReason `json:"reason" validate:"required,oneof=Lost Return Refund Other"`
	OtherReason string             `json:"otherReason" validate:"required_if=Reason Other,max=500"`
}

// CreateReturn handles recording a product or order return
func CreateReturn(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Creating product return")

	var req ReturnRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if err := c.Validate(&req); err != nil {
		log.Warn("Return request failed validation", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	// The target must exist before a return can be filed against it
	var count int64
	switch req.Type {
	case model.ReturnTypeProduct:
		database.GetDB().Model(&model.Product{}).Where("product_id = ?", req.TargetID).Count(&count)
	case model.ReturnTypeOrder:
		database.GetDB().Model(&model.SalesOrder{}).Where("id = ?", req.TargetID).Count(&count)
	}
	if count == 0 {
		log.Warn("Return target not found",
			zap.Uint("target_id", req.TargetID),
			zap.String("type", string(req.Type)))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Return target not found",
		})
	}

	ret := model.ProductReturn{
		UserID:      req.UserID,
		TargetID:    req.TargetID,
		Type:        req.Type,
		Quantity:    req.Quantity,
		Reason:      req.Reason,
		OtherReason: req.OtherReason,
	}

	result := database.GetDB().Create(&ret)
	if result.Error != nil {
		log.Error("Failed to create product return",
			zap.Uint("target_id", req.TargetID),
			zap.String("type", string(req.Type)),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product return",
		})
	}

	prometheus.RecordReturnOperation("create")
	log.Info("Product return created",
		zap.Uint("return_id", ret.ID),
		zap.Uint("target_id", ret.TargetID),
		zap.String("type", string(ret.Type)),
		zap.String("reason", string(ret.Reason)))
	return c.JSON(http.StatusCreated, echo.Map{"data": ret})
}

// ListReturns retrieves all recorded returns, newest first
func ListReturns(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing product returns")

	var returns []model.ProductReturn
	result := database.GetDB().Order("id desc").Find(&returns)
	if result.Error != nil {
		log.Error("Failed to retrieve product returns", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve product returns",
		})
	}

	prometheus.RecordReturnOperation("list")
	log.Info("Product returns retrieved", zap.Int("count", len(returns)))
	return c.JSON(http.StatusOK, echo.Map{"data": returns})
}
