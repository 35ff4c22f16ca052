package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port"
)

type ReservationHandler struct {
	Handler
	service port.Service
}

func NewReservationHandler(service port.Service, logger *zap.Logger) (*ReservationHandler, error) {
	return &ReservationHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (rh *ReservationHandler) Tables(ctx *gin.Context) {
	tables, err := rh.service.Tables(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, tables)
}

type reserveRequest struct {
	TableNumber int    `json:"table_number"`
	UserName    string `json:"user_name"`
	PhoneNumber string `json:"phone_number"`
}

func (rh *ReservationHandler) Reserve(ctx *gin.Context) {
	req := reserveRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	if err := rh.service.Reserve(ctx, &domain.Reservation{
		TableNumber: req.TableNumber,
		UserName:    req.UserName,
		PhoneNumber: req.PhoneNumber,
	}); err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccessWithStatus(ctx, gin.H{
		"success": true,
		"message": fmt.Sprintf("Table %d reserved successfully", req.TableNumber),
	}, http.StatusCreated)
}

type unreserveRequest struct {
	TableNumber int `json:"table_number"`
}

func (rh *ReservationHandler) Unreserve(ctx *gin.Context) {
	req := unreserveRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	if err := rh.service.Unreserve(ctx, req.TableNumber); err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, gin.H{
		"success": true,
		"message": fmt.Sprintf("Table %d released", req.TableNumber),
	})
}

type reservationResp struct {
	TableNumber int    `json:"table_number"`
	UserName    string `json:"user_name"`
	PhoneNumber string `json:"phone_number"`
}

func (rh *ReservationHandler) ListAllReservations(ctx *gin.Context) {
	list, err := rh.service.ListReservations(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	result := make([]reservationResp, 0, len(list))
	for _, r := range list {
		result = append(result, reservationResp{
			TableNumber: r.TableNumber,
			UserName:    r.UserName,
			PhoneNumber: r.PhoneNumber,
		})
	}

	rh.handleSuccess(ctx, result)
}
