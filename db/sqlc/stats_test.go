package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDriverAcceptanceStats(t *testing.T) {
	driver := createRandomDriver(t)

	// 没有任何派单记录
	stats, err := testStore.GetDriverAcceptanceStats(context.Background(), driver.ID)
	require.NoError(t, err)
	require.Zero(t, stats.Offered)
	require.Zero(t, stats.Accepted)

	// 一单完成、一单改派
	completed := createRandomOrder(t)
	_, err = testStore.AssignOrderTx(context.Background(), AssignOrderTxParams{
		OrderID:  completed.ID,
		DriverID: driver.ID,
		Reason:   "auto",
	})
	require.NoError(t, err)
	_, err = testStore.CompleteDeliveryTx(context.Background(), CompleteDeliveryTxParams{
		OrderID:  completed.ID,
		DriverID: driver.ID,
	})
	require.NoError(t, err)

	rejected := createRandomOrder(t)
	_, err = testStore.AssignOrderTx(context.Background(), AssignOrderTxParams{
		OrderID:  rejected.ID,
		DriverID: driver.ID,
		Reason:   "auto",
	})
	require.NoError(t, err)
	_, err = testStore.ReassignOrderTx(context.Background(), ReassignOrderTxParams{
		OrderID: rejected.ID,
		Reason:  "driver timeout",
	})
	require.NoError(t, err)

	stats, err = testStore.GetDriverAcceptanceStats(context.Background(), driver.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Offered)
	require.Equal(t, int64(1), stats.Accepted)
}

func TestGetDriverDeliverySpeed(t *testing.T) {
	driver := createRandomDriver(t)

	speed, err := testStore.GetDriverDeliverySpeed(context.Background(), driver.ID)
	require.NoError(t, err)
	require.Zero(t, speed.Completed)

	order := createRandomOrder(t)
	_, err = testStore.AssignOrderTx(context.Background(), AssignOrderTxParams{
		OrderID:  order.ID,
		DriverID: driver.ID,
		Reason:   "auto",
	})
	require.NoError(t, err)
	_, err = testStore.CompleteDeliveryTx(context.Background(), CompleteDeliveryTxParams{
		OrderID:  order.ID,
		DriverID: driver.ID,
	})
	require.NoError(t, err)

	speed, err = testStore.GetDriverDeliverySpeed(context.Background(), driver.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), speed.Completed)
	// 派单到送达几乎同时发生，平均时长接近 0
	require.GreaterOrEqual(t, speed.AvgMinutes, 0.0)
	require.Less(t, speed.AvgMinutes, 5.0)
}

func TestCountDriverOrdersToday(t *testing.T) {
	driver := createRandomDriver(t)

	count, err := testStore.CountDriverOrdersToday(context.Background(), driver.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	order := createRandomOrder(t)
	_, err = testStore.AssignOrderTx(context.Background(), AssignOrderTxParams{
		OrderID:  order.ID,
		DriverID: driver.ID,
		Reason:   "auto",
	})
	require.NoError(t, err)
	_, err = testStore.CompleteDeliveryTx(context.Background(), CompleteDeliveryTxParams{
		OrderID:  order.ID,
		DriverID: driver.ID,
	})
	require.NoError(t, err)

	count, err = testStore.CountDriverOrdersToday(context.Background(), driver.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
