package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/quickbite/dispatch/algorithm"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/quickbite/dispatch/websocket"
	"github.com/quickbite/dispatch/worker"
	"github.com/rs/zerolog/log"
)

// allocationOptionsRequest 派单筛选条件，空值使用默认值
type allocationOptionsRequest struct {
	MaxDistanceKm    float64  `json:"max_distance_km" binding:"omitempty,gt=0,lte=50"`
	MinRating        float64  `json:"min_rating" binding:"omitempty,gte=0,lte=5"`
	VehicleTypes     []string `json:"vehicle_types" binding:"omitempty,dive,validVehicleType"`
	ExcludeDriverIDs []int64  `json:"exclude_driver_ids" binding:"omitempty,dive,min=1"`
}

func (req allocationOptionsRequest) toOptions() algorithm.FindBestDriverOptions {
	opts := algorithm.FindBestDriverOptions{
		MaxDistanceKm:    req.MaxDistanceKm,
		MinRating:        req.MinRating,
		ExcludeDriverIDs: req.ExcludeDriverIDs,
	}
	for _, vt := range req.VehicleTypes {
		opts.VehicleTypes = append(opts.VehicleTypes, algorithm.VehicleType(vt))
	}
	return opts
}

// defaultAllocationOptions 配置文件里的派单兜底条件
func (server *Server) defaultAllocationOptions() algorithm.FindBestDriverOptions {
	return algorithm.FindBestDriverOptions{
		MaxDistanceKm: server.config.AllocMaxDistanceKm,
		MinRating:     server.config.AllocMinRating,
	}
}

// bindAllocationOptions 解析可选的请求体，空body视为默认条件
// 请求里没给的字段落回配置值
func (server *Server) bindAllocationOptions(ctx *gin.Context) (algorithm.FindBestDriverOptions, bool) {
	var req allocationOptionsRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return algorithm.FindBestDriverOptions{}, false
		}
	}

	opts := req.toOptions()
	if opts.MaxDistanceKm == 0 {
		opts.MaxDistanceKm = server.config.AllocMaxDistanceKm
	}
	if opts.MinRating == 0 {
		opts.MinRating = server.config.AllocMinRating
	}
	return opts, true
}

// findBestDriver 对订单评分但不落库，用于调度端预览
func (server *Server) findBestDriver(ctx *gin.Context) {
	var uri getOrderRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	opts, ok := server.bindAllocationOptions(ctx)
	if !ok {
		return
	}

	order, err := server.store.GetOrder(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("order not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	result, err := server.allocation.FindBestDriverForOrder(ctx, order, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// autoAssignOrder 评分并落库，成功后直接推送给骑手
func (server *Server) autoAssignOrder(ctx *gin.Context) {
	var uri getOrderRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	opts, ok := server.bindAllocationOptions(ctx)
	if !ok {
		return
	}

	result, err := server.allocation.AutoAssignOrder(ctx, uri.ID, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if !result.Success {
		switch result.Reason {
		case algorithm.ReasonOrderNotFound:
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("order not found")))
		case algorithm.ReasonOrderAlreadyTaken:
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("order already assigned")))
		default:
			// 无人可派不是请求错误，调用方根据 success/reason 决定重试
			ctx.JSON(http.StatusOK, result)
		}
		return
	}

	server.pushAssignmentToDriver(uri.ID, result)

	ctx.JSON(http.StatusOK, result)
}

type reassignOrderRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=255"`
}

// reassignOrder 释放当前骑手并立即重新派单
func (server *Server) reassignOrder(ctx *gin.Context) {
	var uri getOrderRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req reassignOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.allocation.ReassignOrder(ctx, uri.ID, req.Reason, server.defaultAllocationOptions())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if result.Success {
		server.pushAssignmentToDriver(uri.ID, result)
	}
	switch result.Reason {
	case algorithm.ReasonOrderNotFound:
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("order not found")))
		return
	case algorithm.ReasonOrderNotAssigned:
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("order has no assigned driver")))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

type batchAllocateRequest struct {
	OrderIDs      []int64 `json:"order_ids" binding:"required,min=1,max=100,dive,min=1"`
	MaxDistanceKm float64 `json:"max_distance_km" binding:"omitempty,gt=0,lte=50"`
	MinRating     float64 `json:"min_rating" binding:"omitempty,gte=0,lte=5"`
}

// batchAllocate 批量派单走任务队列异步执行
func (server *Server) batchAllocate(ctx *gin.Context) {
	var req batchAllocateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if server.taskDistributor == nil {
		ctx.JSON(http.StatusServiceUnavailable, errorResponse(errors.New("task queue is not available")))
		return
	}

	if req.MaxDistanceKm == 0 {
		req.MaxDistanceKm = server.config.AllocMaxDistanceKm
	}
	if req.MinRating == 0 {
		req.MinRating = server.config.AllocMinRating
	}

	err := server.taskDistributor.DistributeTaskBatchAllocate(ctx, &worker.PayloadBatchAllocate{
		OrderIDs:      req.OrderIDs,
		MaxDistanceKm: req.MaxDistanceKm,
		MinRating:     req.MinRating,
	}, asynq.MaxRetry(3), asynq.Queue(worker.QueueCritical))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{
		"message": "batch allocation enqueued",
		"orders":  len(req.OrderIDs),
	})
}

// pushAssignmentToDriver 同进程直推派单结果，失败不影响派单本身
func (server *Server) pushAssignmentToDriver(orderID int64, result algorithm.AllocationResult) {
	if server.wsHub == nil || len(result.Scores) == 0 {
		return
	}

	data, err := json.Marshal(map[string]any{
		"order_id":                   orderID,
		"estimated_pickup_minutes":   result.Scores[0].EstimatedPickupMinutes,
		"estimated_delivery_minutes": result.Scores[0].EstimatedDeliveryMinutes,
	})
	if err != nil {
		return
	}

	server.wsHub.SendToDriver(result.DriverID, websocket.Message{
		Type:      "assignment",
		Data:      data,
		Timestamp: time.Now(),
	})

	log.Debug().
		Int64("order_id", orderID).
		Int64("driver_id", result.DriverID).
		Msg("assignment pushed to driver")
}
