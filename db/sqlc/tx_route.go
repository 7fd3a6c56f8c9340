package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 路线规划事务 ====================

// RouteStopInput 一条待入库的途经点
type RouteStopInput struct {
	OrderID          pgtype.Int8
	StopType         string
	Latitude         float64
	Longitude        float64
	Sequence         int32
	EstimatedArrival pgtype.Timestamptz
}

// CreateRouteTxParams contains the input parameters for persisting a planned route
type CreateRouteTxParams struct {
	DriverID     pgtype.Int8
	Status       string
	VehicleType  string
	TotalKm      float64
	TotalMinutes float64
	Stops        []RouteStopInput
}

// CreateRouteTxResult contains the result of the create route transaction
type CreateRouteTxResult struct {
	Route Route
	Stops []RouteStop
}

// CreateRouteTx persists a route and all its stops atomically
func (store *SQLStore) CreateRouteTx(ctx context.Context, arg CreateRouteTxParams) (CreateRouteTxResult, error) {
	var result CreateRouteTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 创建路线
		result.Route, err = q.CreateRoute(ctx, CreateRouteParams{
			DriverID:     arg.DriverID,
			Status:       arg.Status,
			VehicleType:  arg.VehicleType,
			TotalKm:      arg.TotalKm,
			TotalMinutes: arg.TotalMinutes,
		})
		if err != nil {
			return fmt.Errorf("create route: %w", err)
		}

		// 2. 按顺序写入途经点
		result.Stops = make([]RouteStop, 0, len(arg.Stops))
		for _, stop := range arg.Stops {
			created, err := q.CreateRouteStop(ctx, CreateRouteStopParams{
				RouteID:          result.Route.ID,
				OrderID:          stop.OrderID,
				StopType:         stop.StopType,
				Latitude:         stop.Latitude,
				Longitude:        stop.Longitude,
				Sequence:         stop.Sequence,
				EstimatedArrival: stop.EstimatedArrival,
			})
			if err != nil {
				return fmt.Errorf("create route stop %d: %w", stop.Sequence, err)
			}
			result.Stops = append(result.Stops, created)
		}

		return nil
	})

	return result, err
}
