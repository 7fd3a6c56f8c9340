package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quickbite/dispatch/algorithm"
	mockdb "github.com/quickbite/dispatch/db/mock"
	db "github.com/quickbite/dispatch/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPredictETAAPI(t *testing.T) {
	pickup := gin.H{"longitude": 116.40, "latitude": 39.90}
	delivery := gin.H{"longitude": 116.45, "latitude": 39.93}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"pickup":       pickup,
				"delivery":     delivery,
				"prep_minutes": 20,
				"when":         "2024-01-10T14:00:00Z",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var result algorithm.PredictionResult
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
				require.Greater(t, result.EstimatedMinutes, 20.0)
				require.GreaterOrEqual(t, result.Confidence, 0.7)
				require.LessOrEqual(t, result.Confidence, 0.95)
				require.LessOrEqual(t, result.Range.Min, result.EstimatedMinutes)
				require.GreaterOrEqual(t, result.Range.Max, result.EstimatedMinutes)
			},
		},
		{
			name: "MerchantPrepLookup",
			body: gin.H{
				"pickup":      pickup,
				"delivery":    delivery,
				"merchant_id": 7,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetMerchant(gomock.Any(), gomock.Eq(int64(7))).
					Times(1).
					Return(db.Merchant{ID: 7, Name: "测试商户", Latitude: 39.90, Longitude: 116.40, AvgPrepMinutes: 25}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var result algorithm.PredictionResult
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
				require.InDelta(t, 25.0, result.Breakdown.PrepTime, 1e-9)
			},
		},
		{
			name: "MerchantNotFound",
			body: gin.H{
				"pickup":      pickup,
				"delivery":    delivery,
				"merchant_id": 8,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetMerchant(gomock.Any(), gomock.Eq(int64(8))).
					Times(1).
					Return(db.Merchant{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			// (0,0) 在坐标范围内，是合法的取货点
			name: "ZeroCoordinates",
			body: gin.H{
				"pickup":   gin.H{"longitude": 0.0, "latitude": 0.0},
				"delivery": gin.H{"longitude": 0.1, "latitude": 0.1},
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var result algorithm.PredictionResult
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
				require.Greater(t, result.EstimatedMinutes, 0.0)
			},
		},
		{
			name: "InvalidCoordinates",
			body: gin.H{
				"pickup":   gin.H{"longitude": 200.0, "latitude": 39.90},
				"delivery": delivery,
			},
			buildStubs: func(store *mockdb.MockStore) {},
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

			request, err := http.NewRequest(http.MethodPost, "/v1/eta/predict", bytes.NewReader(data))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
