package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	mockdb "github.com/quickbite/dispatch/db/mock"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/quickbite/dispatch/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func randomDriver() db.Driver {
	return db.Driver{
		ID:               util.RandomInt(1, 1000),
		Name:             util.RandomName(),
		Phone:            util.RandomPhone(),
		VehicleType:      util.RandomVehicleType(),
		Status:           "online",
		Rating:           numericFromFloat(4.8),
		TotalDeliveries:  util.RandomInt(0, 500),
		IsVerified:       true,
		IsActive:         true,
		CurrentLatitude:  pgtype.Float8{Float64: util.RandomLatitude(), Valid: true},
		CurrentLongitude: pgtype.Float8{Float64: util.RandomLongitude(), Valid: true},
		LastLocationAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
		CreatedAt:        time.Now(),
	}
}

func requireBodyMatchDriver(t *testing.T, body io.Reader, driver db.Driver) {
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var got driverResponse
	err = json.Unmarshal(data, &got)
	require.NoError(t, err)

	require.Equal(t, driver.ID, got.ID)
	require.Equal(t, driver.Name, got.Name)
	require.Equal(t, driver.Phone, got.Phone)
	require.Equal(t, driver.VehicleType, got.VehicleType)
	require.Equal(t, driver.Status, got.Status)
	require.InDelta(t, 4.8, got.Rating, 1e-9)
	require.NotNil(t, got.Location)
	require.InDelta(t, driver.CurrentLatitude.Float64, got.Location.Latitude, 1e-9)
	require.InDelta(t, driver.CurrentLongitude.Float64, got.Location.Longitude, 1e-9)
}

func TestGetDriverAPI(t *testing.T) {
	driver := randomDriver()

	testCases := []struct {
		name          string
		url           string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			url:  fmt.Sprintf("/v1/drivers/%d", driver.ID),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDriver(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(driver, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchDriver(t, recorder.Body, driver)
			},
		},
		{
			name: "NotFound",
			url:  fmt.Sprintf("/v1/drivers/%d", driver.ID),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDriver(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(db.Driver{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "InternalError",
			url:  fmt.Sprintf("/v1/drivers/%d", driver.ID),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDriver(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(db.Driver{}, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "InvalidID_BadRequest",
			url:  "/v1/drivers/abc",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDriver(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
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

			request, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestCreateDriverAPI(t *testing.T) {
	driver := randomDriver()

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"name":         driver.Name,
				"phone":        driver.Phone,
				"vehicle_type": driver.VehicleType,
				"longitude":    driver.CurrentLongitude.Float64,
				"latitude":     driver.CurrentLatitude.Float64,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateDriver(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ any, arg db.CreateDriverParams) (db.Driver, error) {
						// 新骑手默认离线、已激活
						require.Equal(t, "offline", arg.Status)
						require.True(t, arg.IsActive)
						require.Equal(t, driver.Name, arg.Name)
						require.True(t, arg.CurrentLatitude.Valid)
						return driver, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchDriver(t, recorder.Body, driver)
			},
		},
		{
			name: "InvalidPhone",
			body: gin.H{
				"name":         driver.Name,
				"phone":        "12345",
				"vehicle_type": driver.VehicleType,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateDriver(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InvalidVehicleType",
			body: gin.H{
				"name":         driver.Name,
				"phone":        driver.Phone,
				"vehicle_type": "scooter",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateDriver(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
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

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/drivers", bytes.NewReader(data))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdateDriverStatusAPI(t *testing.T) {
	driver := randomDriver()

	testCases := []struct {
		name          string
		status        string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "GoOnline",
			status: "online",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateDriverStatus(gomock.Any(), gomock.Eq(db.UpdateDriverStatusParams{
						ID:     driver.ID,
						Status: "online",
					})).
					Times(1).
					Return(driver, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:   "InvalidStatus",
			status: "sleeping",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateDriverStatus(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:   "NotFound",
			status: "offline",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateDriverStatus(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Driver{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
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

			data, err := json.Marshal(gin.H{"status": tc.status})
			require.NoError(t, err)

			url := fmt.Sprintf("/v1/drivers/%d/status", driver.ID)
			request, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(data))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdateDriverLocationAPI(t *testing.T) {
	driver := randomDriver()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		UpdateDriverLocation(gomock.Any(), gomock.Eq(db.UpdateDriverLocationParams{
			ID:               driver.ID,
			CurrentLatitude:  pgtype.Float8{Float64: 39.915, Valid: true},
			CurrentLongitude: pgtype.Float8{Float64: 116.404, Valid: true},
		})).
		Times(1).
		Return(driver, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	data, err := json.Marshal(gin.H{"longitude": 116.404, "latitude": 39.915})
	require.NoError(t, err)

	url := fmt.Sprintf("/v1/drivers/%d/location", driver.ID)
	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestListAvailableDriversAPI(t *testing.T) {
	drivers := []db.Driver{randomDriver(), randomDriver()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListAvailableDrivers(gomock.Any()).
		Times(1).
		Return(drivers, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/v1/drivers/available", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []driverResponse
	err = json.Unmarshal(recorder.Body.Bytes(), &got)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
