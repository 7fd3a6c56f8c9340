package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/quickbite/dispatch/algorithm"
	mockdb "github.com/quickbite/dispatch/db/mock"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/quickbite/dispatch/util"
	"github.com/quickbite/dispatch/worker"
	mockwk "github.com/quickbite/dispatch/worker/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingOrder(id int64) db.Order {
	return db.Order{
		ID:                id,
		MerchantID:        1,
		PickupLatitude:    39.90,
		PickupLongitude:   116.40,
		DeliveryLatitude:  39.92,
		DeliveryLongitude: 116.42,
		TotalAmount:       300,
		DeliveryFee:       500,
		Priority:          "normal",
		Status:            "pending",
	}
}

// eligibleDriver 距取货点约1公里的在线骑手
func eligibleDriver(id int64) db.Driver {
	return db.Driver{
		ID:               id,
		Name:             "测试骑手",
		Phone:            "13800138000",
		VehicleType:      "motorcycle",
		Status:           "online",
		Rating:           numericFromFloat(4.5),
		TotalDeliveries:  100,
		IsVerified:       true,
		IsActive:         true,
		CurrentLatitude:  pgtype.Float8{Float64: 39.91, Valid: true},
		CurrentLongitude: pgtype.Float8{Float64: 116.41, Valid: true},
	}
}

func stubDriverStats(store *mockdb.MockStore, driverID int64) {
	store.EXPECT().
		GetDriverAcceptanceStats(gomock.Any(), gomock.Eq(driverID)).
		Return(db.GetDriverAcceptanceStatsRow{Offered: 20, Accepted: 18}, nil)
	store.EXPECT().
		GetDriverDeliverySpeed(gomock.Any(), gomock.Eq(driverID)).
		Return(db.GetDriverDeliverySpeedRow{Completed: 15, AvgMinutes: 25}, nil)
	store.EXPECT().
		CountDriverOrdersToday(gomock.Any(), gomock.Eq(driverID)).
		Return(int64(2), nil)
}

func TestFindBestDriverAPI(t *testing.T) {
	order := pendingOrder(10)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		GetOrder(gomock.Any(), gomock.Eq(order.ID)).
		Times(1).
		Return(order, nil)
	store.EXPECT().
		ListAvailableDrivers(gomock.Any()).
		Times(1).
		Return([]db.Driver{eligibleDriver(1)}, nil)
	stubDriverStats(store, 1)
	// 纯评分，不落库
	store.EXPECT().
		AssignOrderTx(gomock.Any(), gomock.Any()).
		Times(0)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	url := fmt.Sprintf("/v1/orders/%d/find-best-driver", order.ID)
	request, err := http.NewRequest(http.MethodPost, url, nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result algorithm.AllocationResult
	err = json.Unmarshal(recorder.Body.Bytes(), &result)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, int64(1), result.DriverID)
	require.NotEmpty(t, result.Scores)
	require.Greater(t, result.Scores[0].TotalScore, 0.3)
}

// 配置的派单半径在请求未指定时生效
func TestFindBestDriverAPIConfiguredRadius(t *testing.T) {
	order := pendingOrder(10)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		GetOrder(gomock.Any(), gomock.Eq(order.ID)).
		Times(1).
		Return(order, nil)
	store.EXPECT().
		ListAvailableDrivers(gomock.Any()).
		Times(1).
		Return([]db.Driver{eligibleDriver(1)}, nil)
	stubDriverStats(store, 1)

	// 骑手距取货点约1.4公里，配置半径0.5公里时应被过滤
	server := newTestServerWithConfig(t, store, util.Config{
		Environment:        "test",
		AllocMaxDistanceKm: 0.5,
	})
	recorder := httptest.NewRecorder()

	url := fmt.Sprintf("/v1/orders/%d/find-best-driver", order.ID)
	request, err := http.NewRequest(http.MethodPost, url, nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result algorithm.AllocationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.False(t, result.Success)
	require.Equal(t, algorithm.ReasonNoDriversInRange, result.Reason)
}

// 请求里的半径覆盖配置值
func TestFindBestDriverAPIRequestOverridesConfig(t *testing.T) {
	order := pendingOrder(10)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		GetOrder(gomock.Any(), gomock.Eq(order.ID)).
		Times(1).
		Return(order, nil)
	store.EXPECT().
		ListAvailableDrivers(gomock.Any()).
		Times(1).
		Return([]db.Driver{eligibleDriver(1)}, nil)
	stubDriverStats(store, 1)

	server := newTestServerWithConfig(t, store, util.Config{
		Environment:        "test",
		AllocMaxDistanceKm: 0.5,
	})
	recorder := httptest.NewRecorder()

	data, err := json.Marshal(gin.H{"max_distance_km": 5})
	require.NoError(t, err)

	url := fmt.Sprintf("/v1/orders/%d/find-best-driver", order.ID)
	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result algorithm.AllocationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.Equal(t, int64(1), result.DriverID)
}

func TestAutoAssignOrderAPI(t *testing.T) {
	testCases := []struct {
		name          string
		orderID       int64
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "OK",
			orderID: 10,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(int64(10))).
					Times(1).
					Return(pendingOrder(10), nil)
				store.EXPECT().
					ListAvailableDrivers(gomock.Any()).
					Times(1).
					Return([]db.Driver{eligibleDriver(1)}, nil)
				stubDriverStats(store, 1)
				store.EXPECT().
					AssignOrderTx(gomock.Any(), gomock.Eq(db.AssignOrderTxParams{
						OrderID:  10,
						DriverID: 1,
						Reason:   "auto",
					})).
					Times(1).
					Return(db.AssignOrderTxResult{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var result algorithm.AllocationResult
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
				require.True(t, result.Success)
				require.Equal(t, int64(1), result.DriverID)
			},
		},
		{
			name:    "OrderNotFound",
			orderID: 11,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(int64(11))).
					Times(1).
					Return(db.Order{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:    "AlreadyAssigned",
			orderID: 12,
			buildStubs: func(store *mockdb.MockStore) {
				order := pendingOrder(12)
				order.DriverID = pgtype.Int8{Int64: 9, Valid: true}
				order.Status = "assigned"
				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(int64(12))).
					Times(1).
					Return(order, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:    "NoAvailableDrivers",
			orderID: 13,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(int64(13))).
					Times(1).
					Return(pendingOrder(13), nil)
				store.EXPECT().
					ListAvailableDrivers(gomock.Any()).
					Times(1).
					Return([]db.Driver{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var result algorithm.AllocationResult
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
				require.False(t, result.Success)
				require.Equal(t, "No available drivers found", result.Reason)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/orders/%d/auto-assign", tc.orderID)
			request, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestBatchAllocateAPI(t *testing.T) {
	t.Run("Enqueued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		distributor := mockwk.NewMockTaskDistributor(ctrl)
		distributor.EXPECT().
			DistributeTaskBatchAllocate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Times(1).
			Return(nil)

		server := newTestServerWithTaskDistributor(t, store, distributor)
		recorder := httptest.NewRecorder()

		data, err := json.Marshal(gin.H{"order_ids": []int64{1, 2, 3}})
		require.NoError(t, err)

		request, err := http.NewRequest(http.MethodPost, "/v1/allocations/batch", bytes.NewReader(data))
		require.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusAccepted, recorder.Code)
	})

	t.Run("ConfigDefaultsFillPayload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		distributor := mockwk.NewMockTaskDistributor(ctrl)
		distributor.EXPECT().
			DistributeTaskBatchAllocate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(ctx context.Context, payload *worker.PayloadBatchAllocate, opts ...asynq.Option) error {
				// 请求没带筛选条件，载荷应携带配置值
				require.Equal(t, 7.5, payload.MaxDistanceKm)
				require.Equal(t, 4.2, payload.MinRating)
				return nil
			})

		config := util.Config{
			Environment:        "test",
			AllocMaxDistanceKm: 7.5,
			AllocMinRating:     4.2,
		}
		server, err := NewServer(config, store, distributor)
		require.NoError(t, err)
		recorder := httptest.NewRecorder()

		data, err := json.Marshal(gin.H{"order_ids": []int64{1, 2}})
		require.NoError(t, err)

		request, err := http.NewRequest(http.MethodPost, "/v1/allocations/batch", bytes.NewReader(data))
		require.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusAccepted, recorder.Code)
	})

	t.Run("NoDistributor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		server := newTestServer(t, store)
		recorder := httptest.NewRecorder()

		data, err := json.Marshal(gin.H{"order_ids": []int64{1}})
		require.NoError(t, err)

		request, err := http.NewRequest(http.MethodPost, "/v1/allocations/batch", bytes.NewReader(data))
		require.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("EmptyOrderList", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		server := newTestServer(t, store)
		recorder := httptest.NewRecorder()

		data, err := json.Marshal(gin.H{"order_ids": []int64{}})
		require.NoError(t, err)

		request, err := http.NewRequest(http.MethodPost, "/v1/allocations/batch", bytes.NewReader(data))
		require.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestReassignOrderAPI(t *testing.T) {
	order := pendingOrder(30)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ReassignOrderTx(gomock.Any(), gomock.Eq(db.ReassignOrderTxParams{
			OrderID: order.ID,
			Reason:  "driver timeout",
		})).
		Times(1).
		Return(db.ReassignOrderTxResult{Order: order, PreviousDriverID: 1}, nil)
	store.EXPECT().
		GetOrder(gomock.Any(), gomock.Eq(order.ID)).
		Times(1).
		Return(order, nil)
	store.EXPECT().
		ListAvailableDrivers(gomock.Any()).
		Times(1).
		Return([]db.Driver{eligibleDriver(2)}, nil)
	stubDriverStats(store, 2)
	store.EXPECT().
		AssignOrderTx(gomock.Any(), gomock.Any()).
		Times(1).
		Return(db.AssignOrderTxResult{}, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	data, err := json.Marshal(gin.H{"reason": "driver timeout"})
	require.NoError(t, err)

	url := fmt.Sprintf("/v1/orders/%d/reassign", order.ID)
	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result algorithm.AllocationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.Equal(t, int64(2), result.DriverID)
}

// 订单没有骑手时改派是业务冲突而不是服务端错误
func TestReassignOrderAPINotAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ReassignOrderTx(gomock.Any(), gomock.Eq(db.ReassignOrderTxParams{
			OrderID: 31,
			Reason:  "driver timeout",
		})).
		Times(1).
		Return(db.ReassignOrderTxResult{}, db.ErrOrderNotAssigned)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	data, err := json.Marshal(gin.H{"reason": "driver timeout"})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/v1/orders/31/reassign", bytes.NewReader(data))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusConflict, recorder.Code)
}
