package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/quickbite/dispatch/algorithm"
	db "github.com/quickbite/dispatch/db/sqlc"
)

type createOrderRequest struct {
	MerchantID        int64   `json:"merchant_id" binding:"required,min=1"`
	DeliveryLongitude float64 `json:"delivery_longitude" binding:"gte=-180,lte=180"`
	DeliveryLatitude  float64 `json:"delivery_latitude" binding:"gte=-90,lte=90"`
	TotalAmount       int64   `json:"total_amount" binding:"required,gt=0"`
	IsCOD             bool    `json:"is_cod"`
	DeliveryFee       int64   `json:"delivery_fee" binding:"gte=0"`
	Priority          string  `json:"priority" binding:"omitempty,validOrderPriority"`
}

type orderResponse struct {
	ID               int64              `json:"id"`
	MerchantID       int64              `json:"merchant_id"`
	PickupLocation   algorithm.Location `json:"pickup_location"`
	DeliveryLocation algorithm.Location `json:"delivery_location"`
	TotalAmount      int64              `json:"total_amount"`
	IsCOD            bool               `json:"is_cod"`
	DeliveryFee      int64              `json:"delivery_fee"`
	Priority         string             `json:"priority"`
	Status           string             `json:"status"`
	DriverID         *int64             `json:"driver_id,omitempty"`
	AssignedAt       *time.Time         `json:"assigned_at,omitempty"`
	PickedUpAt       *time.Time         `json:"picked_up_at,omitempty"`
	DeliveredAt      *time.Time         `json:"delivered_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

func newOrderResponse(order db.Order) orderResponse {
	rsp := orderResponse{
		ID:         order.ID,
		MerchantID: order.MerchantID,
		PickupLocation: algorithm.Location{
			Longitude: order.PickupLongitude,
			Latitude:  order.PickupLatitude,
		},
		DeliveryLocation: algorithm.Location{
			Longitude: order.DeliveryLongitude,
			Latitude:  order.DeliveryLatitude,
		},
		TotalAmount: order.TotalAmount,
		IsCOD:       order.IsCod,
		DeliveryFee: order.DeliveryFee,
		Priority:    order.Priority,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}

	if order.DriverID.Valid {
		rsp.DriverID = &order.DriverID.Int64
	}
	if order.AssignedAt.Valid {
		rsp.AssignedAt = &order.AssignedAt.Time
	}
	if order.PickedUpAt.Valid {
		rsp.PickedUpAt = &order.PickedUpAt.Time
	}
	if order.DeliveredAt.Valid {
		rsp.DeliveredAt = &order.DeliveredAt.Time
	}
	return rsp
}

// createOrder 创建配送订单
// 取货位置取自商户坐标
func (server *Server) createOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	merchant, err := server.store.GetMerchant(ctx, req.MerchantID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("merchant not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if req.Priority == "" {
		req.Priority = "normal"
	}

	order, err := server.store.CreateOrder(ctx, db.CreateOrderParams{
		MerchantID:        merchant.ID,
		PickupLatitude:    merchant.Latitude,
		PickupLongitude:   merchant.Longitude,
		DeliveryLatitude:  req.DeliveryLatitude,
		DeliveryLongitude: req.DeliveryLongitude,
		TotalAmount:       req.TotalAmount,
		IsCod:             req.IsCOD,
		DeliveryFee:       req.DeliveryFee,
		Priority:          req.Priority,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

type getOrderRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getOrder 查询订单详情
func (server *Server) getOrder(ctx *gin.Context) {
	var req getOrderRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	order, err := server.store.GetOrder(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("order not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

type listUnassignedOrdersRequest struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=100"`
}

// listUnassignedOrders 查询待派订单，加急单排在最前
func (server *Server) listUnassignedOrders(ctx *gin.Context) {
	var req listUnassignedOrdersRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	orders, err := server.store.ListUnassignedOrders(ctx, req.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		rsp = append(rsp, newOrderResponse(order))
	}
	ctx.JSON(http.StatusOK, rsp)
}

type orderDriverActionRequest struct {
	DriverID int64 `json:"driver_id" binding:"required,min=1"`
}

// markOrderPickedUp 骑手确认取货
// 条件更新要求订单确实派给了该骑手
func (server *Server) markOrderPickedUp(ctx *gin.Context) {
	var uri getOrderRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req orderDriverActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	order, err := server.store.MarkOrderPickedUp(ctx, db.MarkOrderPickedUpParams{
		ID:       uri.ID,
		DriverID: pgtype.Int8{Int64: req.DriverID, Valid: true},
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("order is not assigned to this driver")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// completeDelivery 骑手确认送达
// 事务内更新订单、骑手累计单量并将骑手放回在线池
func (server *Server) completeDelivery(ctx *gin.Context) {
	var uri getOrderRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req orderDriverActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.CompleteDeliveryTx(ctx, db.CompleteDeliveryTxParams{
		OrderID:  uri.ID,
		DriverID: req.DriverID,
	})
	if err != nil {
		if errors.Is(err, db.ErrOrderNotOwnedByDriver) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order":  newOrderResponse(result.Order),
		"driver": newDriverResponse(result.Driver),
	})
}
