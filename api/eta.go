package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickbite/dispatch/algorithm"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/quickbite/dispatch/val"
)

type predictETARequest struct {
	// 经纬度范围由 ValidateCoordinates 校验，(0,0) 是合法坐标
	Pickup       algorithm.Location `json:"pickup"`
	Delivery     algorithm.Location `json:"delivery"`
	MerchantID   *int64             `json:"merchant_id,omitempty" binding:"omitempty,min=1"`
	PrepMinutes  *float64           `json:"prep_minutes,omitempty" binding:"omitempty,gte=0,lte=120"`
	DriverRating *float64           `json:"driver_rating,omitempty" binding:"omitempty,gte=0,lte=5"`
	When         time.Time          `json:"when"`
}

// predictETA 预测送达时间
// 未给出餐时长但给了商户时，用商户平均出餐时长
func (server *Server) predictETA(ctx *gin.Context) {
	var req predictETARequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := val.ValidateCoordinates(req.Pickup.Longitude, req.Pickup.Latitude); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := val.ValidateCoordinates(req.Delivery.Longitude, req.Delivery.Latitude); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	prepMinutes := req.PrepMinutes
	if prepMinutes == nil && req.MerchantID != nil {
		merchant, err := server.store.GetMerchant(ctx, *req.MerchantID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				ctx.JSON(http.StatusNotFound, errorResponse(errors.New("merchant not found")))
				return
			}
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		prep := float64(merchant.AvgPrepMinutes)
		prepMinutes = &prep
	}

	when := req.When
	if when.IsZero() {
		when = time.Now()
	}

	result := server.allocation.Predictor().Predict(algorithm.PredictParams{
		Pickup:       req.Pickup,
		Delivery:     req.Delivery,
		PrepMinutes:  prepMinutes,
		DriverRating: req.DriverRating,
		When:         when,
	})

	ctx.JSON(http.StatusOK, result)
}
