package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tarifflens/tarifflens-api/internal/handlers"
	"github.com/tarifflens/tarifflens-api/internal/mocks"
	"github.com/tarifflens/tarifflens-api/internal/services"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

func sourcingTestRouter(t *testing.T, sourcing *mocks.MockSourcingService) *gin.Engine {
	t.Helper()
	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		CatalogStore: testCatalogStore(t),
	})
	handler := handlers.NewSourcingHandler(common, sourcing)

	router := gin.New()
	router.POST("/api/v1/tariff/compare", handler.Compare)
	return router
}

func TestSourcingHandler_Compare(t *testing.T) {
	comparison := &types.SourcingComparison{
		ID: "cmp-1",
		Baseline: types.CountryCost{
			Country:   "CN",
			Breakdown: types.CostBreakdown{TotalLandedCost: 10334.64},
		},
		Alternatives: []types.CountryCost{
			{Country: "MX", SavingsVsBaseline: 300, Breakdown: types.CostBreakdown{TotalLandedCost: 10034.64}},
		},
		Warnings: []string{"country XX omitted: no modeled rate data"},
	}

	t.Run("successful comparison", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sourcing := mocks.NewMockSourcingService(ctrl)
		sourcing.EXPECT().
			Compare(gomock.Any(), "4015.19.0510", 10000.0, int64(500), "CN", []string{"MX", "XX"}, gomock.Nil()).
			Return(comparison, nil)

		router := sourcingTestRouter(t, sourcing)
		w := postJSON(t, router, "/api/v1/tariff/compare", map[string]any{
			"code":             "4015.19.0510",
			"declared_value":   10000,
			"quantity":         500,
			"baseline_country": "CN",
			"countries":        []string{"MX", "XX"},
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var got types.SourcingComparison
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "CN", got.Baseline.Country)
		require.Len(t, got.Alternatives, 1)
		assert.Equal(t, 300.0, got.Alternatives[0].SavingsVsBaseline)
		assert.Len(t, got.Warnings, 1)
	})

	t.Run("ancillary map forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ancillary := map[string]types.Ancillary{
			"MX": {Shipping: 400, Mode: types.TransportLand},
		}

		sourcing := mocks.NewMockSourcingService(ctrl)
		sourcing.EXPECT().
			Compare(gomock.Any(), "4015.19.0510", 10000.0, int64(500), "CN", []string{"MX"}, ancillary).
			Return(comparison, nil)

		router := sourcingTestRouter(t, sourcing)
		w := postJSON(t, router, "/api/v1/tariff/compare", map[string]any{
			"code":             "4015.19.0510",
			"declared_value":   10000,
			"quantity":         500,
			"baseline_country": "CN",
			"countries":        []string{"MX"},
			"ancillary_by_country": map[string]any{
				"MX": map[string]any{"shipping": 400, "mode": "land"},
			},
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing countries rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := sourcingTestRouter(t, mocks.NewMockSourcingService(ctrl))
		w := postJSON(t, router, "/api/v1/tariff/compare", map[string]any{
			"code":             "4015.19.0510",
			"quantity":         500,
			"baseline_country": "CN",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported baseline maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sourcing := mocks.NewMockSourcingService(ctrl)
		sourcing.EXPECT().
			Compare(gomock.Any(), "4015.19.0510", 10000.0, int64(500), "ZZ", []string{"MX"}, gomock.Nil()).
			Return(nil, &services.UnsupportedCountryError{Country: "ZZ"})

		router := sourcingTestRouter(t, sourcing)
		w := postJSON(t, router, "/api/v1/tariff/compare", map[string]any{
			"code":             "4015.19.0510",
			"declared_value":   10000,
			"quantity":         500,
			"baseline_country": "ZZ",
			"countries":        []string{"MX"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown code maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sourcing := mocks.NewMockSourcingService(ctrl)
		sourcing.EXPECT().
			Compare(gomock.Any(), "9999.99.9999", 10000.0, int64(500), "CN", []string{"MX"}, gomock.Nil()).
			Return(nil, services.ErrCodeNotFound)

		router := sourcingTestRouter(t, sourcing)
		w := postJSON(t, router, "/api/v1/tariff/compare", map[string]any{
			"code":             "9999.99.9999",
			"declared_value":   10000,
			"quantity":         500,
			"baseline_country": "CN",
			"countries":        []string{"MX"},
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
