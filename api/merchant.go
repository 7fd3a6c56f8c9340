package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickbite/dispatch/algorithm"
	db "github.com/quickbite/dispatch/db/sqlc"
)

type createMerchantRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=128"`
	Longitude      float64 `json:"longitude" binding:"gte=-180,lte=180"`
	Latitude       float64 `json:"latitude" binding:"gte=-90,lte=90"`
	AvgPrepMinutes int32   `json:"avg_prep_minutes" binding:"omitempty,gte=1,lte=120"`
}

type merchantResponse struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Location       algorithm.Location `json:"location"`
	AvgPrepMinutes int32              `json:"avg_prep_minutes"`
	CreatedAt      time.Time          `json:"created_at"`
}

func newMerchantResponse(merchant db.Merchant) merchantResponse {
	return merchantResponse{
		ID:   merchant.ID,
		Name: merchant.Name,
		Location: algorithm.Location{
			Longitude: merchant.Longitude,
			Latitude:  merchant.Latitude,
		},
		AvgPrepMinutes: merchant.AvgPrepMinutes,
		CreatedAt:      merchant.CreatedAt,
	}
}

// createMerchant 登记商户
func (server *Server) createMerchant(ctx *gin.Context) {
	var req createMerchantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.AvgPrepMinutes == 0 {
		req.AvgPrepMinutes = 15
	}

	merchant, err := server.store.CreateMerchant(ctx, db.CreateMerchantParams{
		Name:           req.Name,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AvgPrepMinutes: req.AvgPrepMinutes,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newMerchantResponse(merchant))
}

type getMerchantRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getMerchant 查询商户详情
func (server *Server) getMerchant(ctx *gin.Context) {
	var req getMerchantRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	merchant, err := server.store.GetMerchant(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("merchant not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newMerchantResponse(merchant))
}
