package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/quickbite/dispatch/util"
	"github.com/stretchr/testify/require"
)

func createRandomDriver(t *testing.T) Driver {
	arg := CreateDriverParams{
		Name:        util.RandomName(),
		Phone:       util.RandomPhone(),
		VehicleType: util.RandomVehicleType(),
		Status:      "online",
		Rating:      numericFromFloat(4.8),
		IsVerified:  true,
		IsActive:    true,
		CurrentLatitude: pgtype.Float8{
			Float64: util.RandomLatitude(),
			Valid:   true,
		},
		CurrentLongitude: pgtype.Float8{
			Float64: util.RandomLongitude(),
			Valid:   true,
		},
		LastLocationAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	driver, err := testStore.CreateDriver(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, driver)

	require.Equal(t, arg.Name, driver.Name)
	require.Equal(t, arg.Phone, driver.Phone)
	require.Equal(t, arg.VehicleType, driver.VehicleType)
	require.Equal(t, "online", driver.Status)
	require.InDelta(t, 4.8, numericToFloat(t, driver.Rating), 1e-6)
	require.True(t, driver.IsVerified)
	require.True(t, driver.IsActive)
	require.NotZero(t, driver.ID)
	require.NotZero(t, driver.CreatedAt)

	return driver
}

func TestCreateDriver(t *testing.T) {
	createRandomDriver(t)
}

func TestGetDriver(t *testing.T) {
	created := createRandomDriver(t)

	got, err := testStore.GetDriver(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Name, got.Name)
	require.Equal(t, created.Phone, got.Phone)
	require.Equal(t, created.VehicleType, got.VehicleType)

	// 不存在的骑手
	_, err = testStore.GetDriver(context.Background(), -1)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUpdateDriverStatus(t *testing.T) {
	driver := createRandomDriver(t)

	updated, err := testStore.UpdateDriverStatus(context.Background(), UpdateDriverStatusParams{
		ID:     driver.ID,
		Status: "on_delivery",
	})
	require.NoError(t, err)
	require.Equal(t, "on_delivery", updated.Status)
	require.Equal(t, driver.ID, updated.ID)
}

func TestUpdateDriverLocation(t *testing.T) {
	driver := createRandomDriver(t)

	lat := util.RandomLatitude()
	lng := util.RandomLongitude()
	updated, err := testStore.UpdateDriverLocation(context.Background(), UpdateDriverLocationParams{
		ID:               driver.ID,
		CurrentLatitude:  pgtype.Float8{Float64: lat, Valid: true},
		CurrentLongitude: pgtype.Float8{Float64: lng, Valid: true},
	})
	require.NoError(t, err)
	require.True(t, updated.CurrentLatitude.Valid)
	require.InDelta(t, lat, updated.CurrentLatitude.Float64, 1e-9)
	require.InDelta(t, lng, updated.CurrentLongitude.Float64, 1e-9)
	// 上报定位会刷新时间戳
	require.True(t, updated.LastLocationAt.Valid)
	require.WithinDuration(t, time.Now(), updated.LastLocationAt.Time, 10*time.Second)
}

func TestIncrementDriverDeliveries(t *testing.T) {
	driver := createRandomDriver(t)

	updated, err := testStore.IncrementDriverDeliveries(context.Background(), driver.ID)
	require.NoError(t, err)
	require.Equal(t, driver.TotalDeliveries+1, updated.TotalDeliveries)
}

func TestListAvailableDrivers(t *testing.T) {
	online := createRandomDriver(t)

	offline := createRandomDriver(t)
	_, err := testStore.UpdateDriverStatus(context.Background(), UpdateDriverStatusParams{
		ID:     offline.ID,
		Status: "offline",
	})
	require.NoError(t, err)

	drivers, err := testStore.ListAvailableDrivers(context.Background())
	require.NoError(t, err)

	ids := make(map[int64]bool, len(drivers))
	for _, d := range drivers {
		require.Equal(t, "online", d.Status)
		require.True(t, d.IsActive)
		require.True(t, d.IsVerified)
		ids[d.ID] = true
	}
	require.True(t, ids[online.ID])
	require.False(t, ids[offline.ID])
}
