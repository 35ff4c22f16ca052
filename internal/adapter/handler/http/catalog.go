package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port"
)

type CatalogHandler struct {
	Handler
	service port.Service
}

func NewCatalogHandler(service port.Service, logger *zap.Logger) (*CatalogHandler, error) {
	return &CatalogHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type addFoodItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

func (ch *CatalogHandler) AddFoodItem(ctx *gin.Context) {
	req := addFoodItemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		ch.handleError(ctx, domain.ErrInvalidFoodItem)
		return
	}

	item, err := ch.service.AddFoodItem(ctx, &domain.FoodItem{
		Name:        req.Name,
		Price:       price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, gin.H{
		"success": true,
		"message": "Food item added",
		"id":      item.ID,
	}, http.StatusCreated)
}

type removeFoodItemRequest struct {
	ID int `json:"id"`
}

func (ch *CatalogHandler) RemoveFoodItem(ctx *gin.Context) {
	req := removeFoodItemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	if err := ch.service.RemoveFoodItem(ctx, req.ID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, gin.H{
		"success": true,
		"message": "Food item removed",
	})
}

type foodItemResp struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Price       jsonDecimal `json:"price"`
	ImageURL    string      `json:"image"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (ch *CatalogHandler) ListFoodItems(ctx *gin.Context) {
	list, err := ch.service.ListFoodItems(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]foodItemResp, 0, len(list))
	for _, item := range list {
		result = append(result, foodItemResp{
			ID:          item.ID,
			Name:        item.Name,
			Price:       jsonDecimal(item.Price),
			ImageURL:    item.ImageURL,
			Description: item.Description,
			CreatedAt:   item.CreatedAt,
		})
	}

	ch.handleSuccess(ctx, result)
}
