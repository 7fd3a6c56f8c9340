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

type createDriverRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=64"`
	Phone       string   `json:"phone" binding:"required,validPhone"`
	VehicleType string   `json:"vehicle_type" binding:"required,validVehicleType"`
	Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
	Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
}

type driverResponse struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	Phone           string              `json:"phone"`
	VehicleType     string              `json:"vehicle_type"`
	Status          string              `json:"status"`
	Rating          float64             `json:"rating"`
	TotalDeliveries int64               `json:"total_deliveries"`
	IsVerified      bool                `json:"is_verified"`
	IsActive        bool                `json:"is_active"`
	Location        *algorithm.Location `json:"location,omitempty"`
	LastLocationAt  *time.Time          `json:"last_location_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

func newDriverResponse(driver db.Driver) driverResponse {
	rsp := driverResponse{
		ID:              driver.ID,
		Name:            driver.Name,
		Phone:           driver.Phone,
		VehicleType:     driver.VehicleType,
		Status:          driver.Status,
		TotalDeliveries: driver.TotalDeliveries,
		IsVerified:      driver.IsVerified,
		IsActive:        driver.IsActive,
		CreatedAt:       driver.CreatedAt,
	}

	if rating, err := parseNumericToFloat(driver.Rating); err == nil {
		rsp.Rating = rating
	}

	if driver.CurrentLatitude.Valid && driver.CurrentLongitude.Valid {
		rsp.Location = &algorithm.Location{
			Longitude: driver.CurrentLongitude.Float64,
			Latitude:  driver.CurrentLatitude.Float64,
		}
	}
	if driver.LastLocationAt.Valid {
		rsp.LastLocationAt = &driver.LastLocationAt.Time
	}
	return rsp
}

// createDriver 注册骑手
// 新骑手默认离线，上线后才会进入派单池
func (server *Server) createDriver(ctx *gin.Context) {
	var req createDriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.CreateDriverParams{
		Name:        req.Name,
		Phone:       req.Phone,
		VehicleType: req.VehicleType,
		Status:      "offline",
		Rating:      numericFromFloat(5.0),
		IsVerified:  true,
		IsActive:    true,
	}

	if req.Latitude != nil && req.Longitude != nil {
		arg.CurrentLatitude = pgtype.Float8{Float64: *req.Latitude, Valid: true}
		arg.CurrentLongitude = pgtype.Float8{Float64: *req.Longitude, Valid: true}
		arg.LastLocationAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}

	driver, err := server.store.CreateDriver(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newDriverResponse(driver))
}

type getDriverRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getDriver 查询骑手详情
func (server *Server) getDriver(ctx *gin.Context) {
	var req getDriverRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	driver, err := server.store.GetDriver(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("driver not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newDriverResponse(driver))
}

// listAvailableDrivers 查询当前可派单的骑手
func (server *Server) listAvailableDrivers(ctx *gin.Context) {
	drivers, err := server.store.ListAvailableDrivers(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]driverResponse, 0, len(drivers))
	for _, driver := range drivers {
		rsp = append(rsp, newDriverResponse(driver))
	}
	ctx.JSON(http.StatusOK, rsp)
}

type updateDriverStatusRequest struct {
	Status string `json:"status" binding:"required,validDriverStatus"`
}

// updateDriverStatus 骑手上下线
func (server *Server) updateDriverStatus(ctx *gin.Context) {
	var uri getDriverRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateDriverStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	driver, err := server.store.UpdateDriverStatus(ctx, db.UpdateDriverStatusParams{
		ID:     uri.ID,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("driver not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newDriverResponse(driver))
}

type updateDriverLocationRequest struct {
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
}

// updateDriverLocation 上报骑手位置
func (server *Server) updateDriverLocation(ctx *gin.Context) {
	var uri getDriverRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateDriverLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	driver, err := server.store.UpdateDriverLocation(ctx, db.UpdateDriverLocationParams{
		ID:               uri.ID,
		CurrentLatitude:  pgtype.Float8{Float64: req.Latitude, Valid: true},
		CurrentLongitude: pgtype.Float8{Float64: req.Longitude, Valid: true},
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("driver not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newDriverResponse(driver))
}
