package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/car-deal-finder/internal/api/handlers"
	"github.com/donaldgifford/car-deal-finder/internal/store"
	storeMocks "github.com/donaldgifford/car-deal-finder/internal/store/mocks"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

func TestListingsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "no filters returns listings",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListListings(mock.Anything, mock.MatchedBy(func(q *store.ListingQuery) bool {
						return q.SortBy == store.SortByScore && !q.Ascending && q.MinPrice == nil
					})).
					Return([]domain.Listing{{ID: testID, Title: "Fiat Panda"}}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "range filters",
			query: "?min_price=30000&max_price=60000&min_year=2010&max_mileage=150000",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListListings(mock.Anything, mock.MatchedBy(func(q *store.ListingQuery) bool {
						return q.MinPrice != nil && *q.MinPrice == 30000 &&
							q.MaxPrice != nil && *q.MaxPrice == 60000 &&
							q.MinYear != nil && *q.MinYear == 2010 &&
							q.MaxYear == nil &&
							q.MaxMileage != nil && *q.MaxMileage == 150000
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"listings":[]`,
		},
		{
			name:  "min score",
			query: "?min_score=70",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListListings(mock.Anything, mock.MatchedBy(func(q *store.ListingQuery) bool {
						return q.MinScore != nil && *q.MinScore == 70
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "sort and pagination",
			query: "?sort_by=price&order=asc&limit=10&offset=20",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListListings(mock.Anything, mock.MatchedBy(func(q *store.ListingQuery) bool {
						return q.SortBy == store.SortByPrice && q.Ascending &&
							q.Limit == 10 && q.Offset == 20
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":10`,
		},
		{
			name:       "unknown sort field is rejected",
			query:      "?sort_by=seller",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "min score above range is rejected",
			query:      "?min_score=101",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "store error returns 500",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListListings(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(ms, newEngine(t, ms)))

			resp := api.Get("/api/v1/listings" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestListingsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   testID,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListingByID(mock.Anything, testID).
					Return(&domain.Listing{ID: testID, URL: "https://example.com/1", Score: ptr(77)}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"score":77`,
		},
		{
			name: "not found",
			id:   testID,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListingByID(mock.Anything, testID).Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed id is not found without a query",
			id:         "not-a-uuid",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store error",
			id:   testID,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListingByID(mock.Anything, testID).Return(nil, errors.New("timeout")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(ms, newEngine(t, ms)))

			resp := api.Get("/api/v1/listings/" + tt.id)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestListingsHandler_Top(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "defaults to ten",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().TopListings(mock.Anything, 10).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "custom limit",
			query: "?limit=3",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().TopListings(mock.Anything, 3).
					Return([]domain.Listing{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "limit above fifty is rejected",
			query:      "?limit=51",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "zero limit is rejected",
			query:      "?limit=0",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(ms, newEngine(t, ms)))

			resp := api.Get("/api/v1/listings/top" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestListingsHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "deleted",
			id:   testID,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().DeleteListing(mock.Anything, testID).Return(true, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "missing",
			id:   testID,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().DeleteListing(mock.Anything, testID).Return(false, nil).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed id",
			id:         "42",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(ms, newEngine(t, ms)))

			resp := api.Delete("/api/v1/listings/" + tt.id)
			require.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestListingsHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("descriptive patch", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().UpdateListing(mock.Anything, testID, mock.MatchedBy(func(p *domain.ListingPatch) bool {
			return p.Location != nil && *p.Location == "Odense"
		})).Return(&domain.Listing{ID: testID, Location: "Odense"}, nil).Once()

		_, api := humatest.New(t)
		handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(ms, newEngine(t, ms)))

		resp := api.Patch("/api/v1/listings/"+testID, map[string]any{"location": "Odense"})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"location":"Odense"`)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)

		_, api := humatest.New(t)
		handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(ms, newEngine(t, ms)))

		resp := api.Patch("/api/v1/listings/"+testID, map[string]any{})
		require.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("out of range values are rejected before the store", func(t *testing.T) {
		t.Parallel()

		bodies := []map[string]any{
			{"condition_score": 2},
			{"condition_score": -0.1},
			{"model_year": 1500},
			{"model_year": 2031},
			{"price": -1},
			{"mileage": -100},
		}

		for _, body := range bodies {
			ms := storeMocks.NewMockStore(t)

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(ms, newEngine(t, ms)))

			resp := api.Patch("/api/v1/listings/"+testID, body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, "body %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().UpdateListing(mock.Anything, testID, mock.Anything).Return(nil, store.ErrNotFound).Once()

		_, api := humatest.New(t)
		handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(ms, newEngine(t, ms)))

		resp := api.Patch("/api/v1/listings/"+testID, map[string]any{"title": "x"})
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}
