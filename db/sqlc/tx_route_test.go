package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func TestCreateRouteTx(t *testing.T) {
	driver := createRandomDriver(t)
	order := createRandomOrder(t)

	now := time.Now()
	arg := CreateRouteTxParams{
		DriverID:     pgtype.Int8{Int64: driver.ID, Valid: true},
		Status:       "planned",
		VehicleType:  driver.VehicleType,
		TotalKm:      6.4,
		TotalMinutes: 28.5,
		Stops: []RouteStopInput{
			{
				OrderID:          pgtype.Int8{Int64: order.ID, Valid: true},
				StopType:         "pickup",
				Latitude:         order.PickupLatitude,
				Longitude:        order.PickupLongitude,
				Sequence:         1,
				EstimatedArrival: pgtype.Timestamptz{Time: now.Add(10 * time.Minute), Valid: true},
			},
			{
				OrderID:          pgtype.Int8{Int64: order.ID, Valid: true},
				StopType:         "delivery",
				Latitude:         order.DeliveryLatitude,
				Longitude:        order.DeliveryLongitude,
				Sequence:         2,
				EstimatedArrival: pgtype.Timestamptz{Time: now.Add(25 * time.Minute), Valid: true},
			},
		},
	}

	result, err := testStore.CreateRouteTx(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, "planned", result.Route.Status)
	require.InDelta(t, 6.4, result.Route.TotalKm, 1e-9)
	require.InDelta(t, 28.5, result.Route.TotalMinutes, 1e-9)
	require.Len(t, result.Stops, 2)
	require.Equal(t, int32(1), result.Stops[0].Sequence)
	require.Equal(t, "pickup", result.Stops[0].StopType)
	require.Equal(t, int32(2), result.Stops[1].Sequence)

	// 途经点可按顺序读回
	stops, err := testStore.ListRouteStops(context.Background(), result.Route.ID)
	require.NoError(t, err)
	require.Len(t, stops, 2)
	require.Equal(t, int32(1), stops[0].Sequence)
	require.Equal(t, int32(2), stops[1].Sequence)

	// 骑手当前生效路线
	active, err := testStore.GetActiveRouteByDriver(context.Background(), pgtype.Int8{Int64: driver.ID, Valid: true})
	require.NoError(t, err)
	require.Equal(t, result.Route.ID, active.ID)

	// 完成后不再是生效路线
	_, err = testStore.UpdateRouteStatus(context.Background(), UpdateRouteStatusParams{
		ID:     result.Route.ID,
		Status: "completed",
	})
	require.NoError(t, err)
	_, err = testStore.GetActiveRouteByDriver(context.Background(), pgtype.Int8{Int64: driver.ID, Valid: true})
	require.ErrorIs(t, err, ErrRecordNotFound)
}
