package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/quickbite/dispatch/util"
	"github.com/stretchr/testify/require"
)

func createRandomMerchant(t *testing.T) Merchant {
	arg := CreateMerchantParams{
		Name:           util.RandomName(),
		Latitude:       util.RandomLatitude(),
		Longitude:      util.RandomLongitude(),
		AvgPrepMinutes: 15,
	}

	merchant, err := testStore.CreateMerchant(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, arg.Name, merchant.Name)
	require.InDelta(t, arg.Latitude, merchant.Latitude, 1e-9)
	require.InDelta(t, arg.Longitude, merchant.Longitude, 1e-9)
	require.Equal(t, int32(15), merchant.AvgPrepMinutes)
	require.NotZero(t, merchant.ID)

	return merchant
}

func createRandomOrder(t *testing.T) Order {
	merchant := createRandomMerchant(t)

	arg := CreateOrderParams{
		MerchantID:        merchant.ID,
		PickupLatitude:    merchant.Latitude,
		PickupLongitude:   merchant.Longitude,
		DeliveryLatitude:  util.RandomLatitude(),
		DeliveryLongitude: util.RandomLongitude(),
		TotalAmount:       util.RandomMoney(),
		IsCod:             false,
		DeliveryFee:       500,
		Priority:          "normal",
	}

	order, err := testStore.CreateOrder(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, merchant.ID, order.MerchantID)
	require.Equal(t, arg.TotalAmount, order.TotalAmount)
	require.Equal(t, "pending", order.Status)
	require.False(t, order.DriverID.Valid)
	require.False(t, order.AssignedAt.Valid)

	return order
}

func TestCreateOrder(t *testing.T) {
	createRandomOrder(t)
}

func TestGetOrder(t *testing.T) {
	created := createRandomOrder(t)

	got, err := testStore.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.MerchantID, got.MerchantID)

	_, err = testStore.GetOrder(context.Background(), -1)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAssignOrderDriver(t *testing.T) {
	order := createRandomOrder(t)
	driver := createRandomDriver(t)

	assigned, err := testStore.AssignOrderDriver(context.Background(), AssignOrderDriverParams{
		ID:       order.ID,
		DriverID: pgtype.Int8{Int64: driver.ID, Valid: true},
	})
	require.NoError(t, err)
	require.Equal(t, "assigned", assigned.Status)
	require.True(t, assigned.DriverID.Valid)
	require.Equal(t, driver.ID, assigned.DriverID.Int64)
	require.True(t, assigned.AssignedAt.Valid)

	// 已派出的订单无法再次写入
	other := createRandomDriver(t)
	_, err = testStore.AssignOrderDriver(context.Background(), AssignOrderDriverParams{
		ID:       order.ID,
		DriverID: pgtype.Int8{Int64: other.ID, Valid: true},
	})
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClearOrderDriver(t *testing.T) {
	order := createRandomOrder(t)
	driver := createRandomDriver(t)

	_, err := testStore.AssignOrderDriver(context.Background(), AssignOrderDriverParams{
		ID:       order.ID,
		DriverID: pgtype.Int8{Int64: driver.ID, Valid: true},
	})
	require.NoError(t, err)

	cleared, err := testStore.ClearOrderDriver(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, "pending", cleared.Status)
	require.False(t, cleared.DriverID.Valid)
	require.False(t, cleared.AssignedAt.Valid)
}

func TestMarkOrderPickedUpAndDelivered(t *testing.T) {
	order := createRandomOrder(t)
	driver := createRandomDriver(t)

	_, err := testStore.AssignOrderDriver(context.Background(), AssignOrderDriverParams{
		ID:       order.ID,
		DriverID: pgtype.Int8{Int64: driver.ID, Valid: true},
	})
	require.NoError(t, err)

	// 只有接单骑手可以标记取货
	other := createRandomDriver(t)
	_, err = testStore.MarkOrderPickedUp(context.Background(), MarkOrderPickedUpParams{
		ID:       order.ID,
		DriverID: pgtype.Int8{Int64: other.ID, Valid: true},
	})
	require.ErrorIs(t, err, ErrRecordNotFound)

	pickedUp, err := testStore.MarkOrderPickedUp(context.Background(), MarkOrderPickedUpParams{
		ID:       order.ID,
		DriverID: pgtype.Int8{Int64: driver.ID, Valid: true},
	})
	require.NoError(t, err)
	require.Equal(t, "picked_up", pickedUp.Status)
	require.True(t, pickedUp.PickedUpAt.Valid)

	delivered, err := testStore.MarkOrderDelivered(context.Background(), MarkOrderDeliveredParams{
		ID:       order.ID,
		DriverID: pgtype.Int8{Int64: driver.ID, Valid: true},
	})
	require.NoError(t, err)
	require.Equal(t, "delivered", delivered.Status)
	require.True(t, delivered.DeliveredAt.Valid)
}

func TestListUnassignedOrders(t *testing.T) {
	normal := createRandomOrder(t)

	merchant := createRandomMerchant(t)
	express, err := testStore.CreateOrder(context.Background(), CreateOrderParams{
		MerchantID:        merchant.ID,
		PickupLatitude:    merchant.Latitude,
		PickupLongitude:   merchant.Longitude,
		DeliveryLatitude:  util.RandomLatitude(),
		DeliveryLongitude: util.RandomLongitude(),
		TotalAmount:       util.RandomMoney(),
		DeliveryFee:       800,
		Priority:          "express",
	})
	require.NoError(t, err)

	orders, err := testStore.ListUnassignedOrders(context.Background(), 100)
	require.NoError(t, err)

	positions := make(map[int64]int, len(orders))
	for i, o := range orders {
		require.False(t, o.DriverID.Valid)
		require.Equal(t, "pending", o.Status)
		positions[o.ID] = i
	}
	// 加急单排在普通单前面
	require.Contains(t, positions, normal.ID)
	require.Contains(t, positions, express.ID)
	require.Less(t, positions[express.ID], positions[normal.ID])
}

func TestListStaleAssignedOrders(t *testing.T) {
	order := createRandomOrder(t)
	driver := createRandomDriver(t)

	_, err := testStore.AssignOrderDriver(context.Background(), AssignOrderDriverParams{
		ID:       order.ID,
		DriverID: pgtype.Int8{Int64: driver.ID, Valid: true},
	})
	require.NoError(t, err)

	// 刚派出的订单不算超时
	stale, err := testStore.ListStaleAssignedOrders(context.Background(), ListStaleAssignedOrdersParams{
		AssignedAt: time.Now().Add(-10 * time.Minute),
		Limit:      100,
	})
	require.NoError(t, err)
	for _, o := range stale {
		require.NotEqual(t, order.ID, o.ID)
	}

	// 把阈值推到未来，该订单立即可见
	stale, err = testStore.ListStaleAssignedOrders(context.Background(), ListStaleAssignedOrdersParams{
		AssignedAt: time.Now().Add(time.Minute),
		Limit:      1000,
	})
	require.NoError(t, err)
	found := false
	for _, o := range stale {
		if o.ID == order.ID {
			found = true
		}
	}
	require.True(t, found)
}
