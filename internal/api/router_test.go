package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/car-deal-finder/internal/api"
	"github.com/donaldgifford/car-deal-finder/internal/engine"
	storeMocks "github.com/donaldgifford/car-deal-finder/internal/store/mocks"
	"github.com/donaldgifford/car-deal-finder/pkg/condition"
	"github.com/donaldgifford/car-deal-finder/pkg/logger"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
)

func newRouter(t *testing.T, ms *storeMocks.MockStore) http.Handler {
	t.Helper()

	l := logger.Discard()
	c := condition.New(condition.WithLogger(l))
	sc, err := score.New(score.DefaultConfig(), score.WithLogger(l), score.WithClassifier(c))
	require.NoError(t, err)

	return api.NewRouter(api.Deps{
		Store:      ms,
		Engine:     engine.NewEngine(ms, sc, c, engine.WithLogger(l)),
		SearchTerm: "Fiat Panda",
		Version:    "test",
		Logger:     l,
	})
}

func TestNewRouter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "liveness",
			method:     http.MethodGet,
			path:       "/healthz",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:   "readiness with database down",
			method: http.MethodGet,
			path:   "/readyz",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().Ping(mock.Anything).Return(errors.New("refused")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "metrics scrape",
			method:     http.MethodGet,
			path:       "/metrics",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusOK,
			wantBody:   "car_deal_finder_",
		},
		{
			name:       "weights operation",
			method:     http.MethodGet,
			path:       "/api/v1/config/weights",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusOK,
			wantBody:   `"search_term":"Fiat Panda"`,
		},
		{
			name:   "top listings operation",
			method: http.MethodGet,
			path:   "/api/v1/listings/top",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().TopListings(mock.Anything, 10).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "openapi document",
			method:     http.MethodGet,
			path:       "/swagger/swagger.json",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusOK,
			wantBody:   "/api/v1/rescore",
		},
		{
			name:   "dashboard",
			method: http.MethodGet,
			path:   "/",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListAllListings(mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "Fiat Panda deals",
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/nope",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			rec := httptest.NewRecorder()
			newRouter(t, ms).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}
