package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/quickbite/dispatch/algorithm"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/quickbite/dispatch/val"
)

type routeStopRequest struct {
	ID               int64   `json:"id" binding:"required,min=1"`
	OrderID          int64   `json:"order_id" binding:"omitempty,min=1"`
	StopType         string  `json:"stop_type" binding:"required,oneof=pickup delivery"`
	Longitude        float64 `json:"longitude" binding:"gte=-180,lte=180"`
	Latitude         float64 `json:"latitude" binding:"gte=-90,lte=90"`
	EstimatedMinutes float64 `json:"estimated_minutes" binding:"omitempty,gte=0,lte=60"`
}

type optimizeRouteRequest struct {
	// 经纬度范围由 ValidateCoordinates 校验，(0,0) 是合法坐标
	DriverLocation    algorithm.Location `json:"driver_location"`
	VehicleType       string             `json:"vehicle_type" binding:"omitempty,validVehicleType"`
	Stops             []routeStopRequest `json:"stops" binding:"required,min=1,max=30,dive"`
	RespectPrecedence bool               `json:"respect_precedence"`
	StartTime         time.Time          `json:"start_time"`
}

func toRouteStops(reqs []routeStopRequest) []algorithm.RouteStop {
	stops := make([]algorithm.RouteStop, 0, len(reqs))
	for _, r := range reqs {
		stops = append(stops, algorithm.RouteStop{
			ID: r.ID,
			Location: algorithm.Location{
				Longitude: r.Longitude,
				Latitude:  r.Latitude,
			},
			Type:             algorithm.StopType(r.StopType),
			OrderID:          r.OrderID,
			EstimatedMinutes: r.EstimatedMinutes,
		})
	}
	return stops
}

// optimizeRoute 无状态路径规划，不写库
func (server *Server) optimizeRoute(ctx *gin.Context) {
	var req optimizeRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := val.ValidateCoordinates(req.DriverLocation.Longitude, req.DriverLocation.Latitude); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	vehicle := algorithm.VehicleType(req.VehicleType)
	if req.VehicleType == "" {
		vehicle = algorithm.VehicleMotorcycle
	}
	startTime := req.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}

	route := server.optimizer.Optimize(
		req.DriverLocation,
		toRouteStops(req.Stops),
		vehicle,
		startTime,
		req.RespectPrecedence,
	)

	ctx.JSON(http.StatusOK, route)
}

type planDriverRouteRequest struct {
	Stops []routeStopRequest `json:"stops" binding:"required,min=1,max=30,dive"`
}

type routeResponse struct {
	Route db.Route       `json:"route"`
	Stops []db.RouteStop `json:"stops"`
}

// planDriverRoute 以骑手当前位置为起点规划取送路线并落库
// 多订单场景强制先取后送，因此不做 2-opt
func (server *Server) planDriverRoute(ctx *gin.Context) {
	var uri getDriverRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req planDriverRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	driver, err := server.store.GetDriver(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("driver not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if !driver.CurrentLatitude.Valid || !driver.CurrentLongitude.Valid {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("driver has no recent location")))
		return
	}

	driverLoc := algorithm.Location{
		Longitude: driver.CurrentLongitude.Float64,
		Latitude:  driver.CurrentLatitude.Float64,
	}

	optimized := server.optimizer.Optimize(
		driverLoc,
		toRouteStops(req.Stops),
		algorithm.VehicleType(driver.VehicleType),
		time.Now(),
		true,
	)

	result, err := server.store.CreateRouteTx(ctx, routeTxParams(driver, optimized))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"route":     result.Route,
		"stops":     result.Stops,
		"optimized": optimized,
	})
}

// routeTxParams 将优化结果映射为落库参数
func routeTxParams(driver db.Driver, optimized algorithm.OptimizedRoute) db.CreateRouteTxParams {
	arg := db.CreateRouteTxParams{
		DriverID:     pgtype.Int8{Int64: driver.ID, Valid: true},
		Status:       "active",
		VehicleType:  driver.VehicleType,
		TotalKm:      optimized.TotalKm,
		TotalMinutes: optimized.TotalMinutes,
		Stops:        make([]db.RouteStopInput, 0, len(optimized.Stops)),
	}
	for _, stop := range optimized.Stops {
		input := db.RouteStopInput{
			StopType:         string(stop.Type),
			Latitude:         stop.Location.Latitude,
			Longitude:        stop.Location.Longitude,
			Sequence:         int32(stop.Sequence),
			EstimatedArrival: pgtype.Timestamptz{Time: stop.EstimatedArrival, Valid: true},
		}
		if stop.OrderID > 0 {
			input.OrderID = pgtype.Int8{Int64: stop.OrderID, Valid: true}
		}
		arg.Stops = append(arg.Stops, input)
	}
	return arg
}

// 一条路线最多容纳的停靠点数量
const maxRouteStops = 30

type autoPlanRouteRequest struct {
	DriverID int64 `json:"driver_id" binding:"required,min=1"`
	MaxStops int32 `json:"max_stops" binding:"omitempty,min=2,max=30"`
}

// autoPlanRoute 把待派订单打包成一条取送路线并落库
// 每个订单产生取货和送货两个停靠点，取货必须先于送货
func (server *Server) autoPlanRoute(ctx *gin.Context) {
	var req autoPlanRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.MaxStops == 0 {
		req.MaxStops = maxRouteStops
	}

	driver, err := server.store.GetDriver(ctx, req.DriverID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("driver not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if !driver.CurrentLatitude.Valid || !driver.CurrentLongitude.Valid {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("driver has no recent location")))
		return
	}

	orders, err := server.store.ListUnassignedOrders(ctx, req.MaxStops/2)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if len(orders) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"orders_planned": 0})
		return
	}

	stops := make([]algorithm.RouteStop, 0, 2*len(orders))
	for i, order := range orders {
		stops = append(stops, algorithm.RouteStop{
			ID: int64(2*i + 1),
			Location: algorithm.Location{
				Longitude: order.PickupLongitude,
				Latitude:  order.PickupLatitude,
			},
			Type:    algorithm.StopPickup,
			OrderID: order.ID,
		})
		stops = append(stops, algorithm.RouteStop{
			ID: int64(2*i + 2),
			Location: algorithm.Location{
				Longitude: order.DeliveryLongitude,
				Latitude:  order.DeliveryLatitude,
			},
			Type:    algorithm.StopDelivery,
			OrderID: order.ID,
		})
	}

	driverLoc := algorithm.Location{
		Longitude: driver.CurrentLongitude.Float64,
		Latitude:  driver.CurrentLatitude.Float64,
	}
	optimized := server.optimizer.Optimize(
		driverLoc,
		stops,
		algorithm.VehicleType(driver.VehicleType),
		time.Now(),
		true,
	)

	result, err := server.store.CreateRouteTx(ctx, routeTxParams(driver, optimized))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"route":          result.Route,
		"stops":          result.Stops,
		"optimized":      optimized,
		"orders_planned": len(orders),
	})
}

// getDriverRoute 查询骑手当前活跃路线
func (server *Server) getDriverRoute(ctx *gin.Context) {
	var uri getDriverRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	route, err := server.store.GetActiveRouteByDriver(ctx, pgtype.Int8{Int64: uri.ID, Valid: true})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("no active route for driver")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	stops, err := server.store.ListRouteStops(ctx, route.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, routeResponse{Route: route, Stops: stops})
}
