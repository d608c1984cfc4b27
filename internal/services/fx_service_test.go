package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tarifflens/tarifflens-api/internal/mocks"
	"github.com/tarifflens/tarifflens-api/internal/services"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

func usdBreakdown() *types.CostBreakdown {
	return &types.CostBreakdown{
		Code:            "4015.19.0510",
		Country:         "CN",
		Currency:        "USD",
		DeclaredValue:   10000,
		Quantity:        500,
		DutyAmount:      300,
		Fees:            types.Fees{Processing: 34.64},
		Shipping:        800,
		Insurance:       120,
		TotalLandedCost: 11254.64,
	}
}

func TestFXService_ConvertBreakdown(t *testing.T) {
	ctx := context.Background()

	t.Run("same currency is a no-op copy", func(t *testing.T) {
		service := services.NewFXService(services.DefaultStaticRateProvider())
		original := usdBreakdown()

		out, err := service.ConvertBreakdown(ctx, original, "USD")
		require.NoError(t, err)
		assert.Equal(t, original, out)
		assert.NotSame(t, original, out)
	})

	t.Run("empty currency is a no-op copy", func(t *testing.T) {
		service := services.NewFXService(services.DefaultStaticRateProvider())

		out, err := service.ConvertBreakdown(ctx, usdBreakdown(), "")
		require.NoError(t, err)
		assert.Equal(t, "USD", out.Currency)
	})

	t.Run("converts all monetary fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := mocks.NewMockRateProvider(ctrl)
		provider.EXPECT().Rate(gomock.Any(), "USD", "EUR").Return(0.5, nil)

		service := services.NewFXService(provider)

		out, err := service.ConvertBreakdown(ctx, usdBreakdown(), "eur")
		require.NoError(t, err)
		assert.Equal(t, "EUR", out.Currency)
		assert.Equal(t, 5000.0, out.DeclaredValue)
		assert.Equal(t, 150.0, out.DutyAmount)
		assert.Equal(t, 17.32, out.Fees.Processing)
		assert.Equal(t, 400.0, out.Shipping)
		assert.Equal(t, 60.0, out.Insurance)
		assert.Equal(t, 5627.32, out.TotalLandedCost)
	})

	t.Run("total recomputed from converted components", func(t *testing.T) {
		service := services.NewFXService(services.DefaultStaticRateProvider())

		out, err := service.ConvertBreakdown(ctx, usdBreakdown(), "JPY")
		require.NoError(t, err)

		sum := out.DeclaredValue + out.DutyAmount + out.Fees.Total() + out.Shipping + out.Insurance
		assert.InDelta(t, sum, out.TotalLandedCost, 0.005)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := mocks.NewMockRateProvider(ctrl)
		provider.EXPECT().Rate(gomock.Any(), "USD", "XYZ").Return(0.0, errors.New("no rate"))

		service := services.NewFXService(provider)

		_, err := service.ConvertBreakdown(ctx, usdBreakdown(), "XYZ")
		assert.Error(t, err)
	})

	t.Run("original breakdown untouched", func(t *testing.T) {
		service := services.NewFXService(services.DefaultStaticRateProvider())
		original := usdBreakdown()

		_, err := service.ConvertBreakdown(ctx, original, "EUR")
		require.NoError(t, err)
		assert.Equal(t, "USD", original.Currency)
		assert.Equal(t, 10000.0, original.DeclaredValue)
	})
}

func TestStaticRateProvider_Rate(t *testing.T) {
	provider := services.DefaultStaticRateProvider()
	ctx := context.Background()

	rate, err := provider.Rate(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 0.92, rate, 1e-9)

	rate, err = provider.Rate(ctx, "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 1/0.92, rate, 1e-9)

	rate, err = provider.Rate(ctx, "usd", "jpy")
	require.NoError(t, err)
	assert.InDelta(t, 147.2, rate, 1e-9)

	_, err = provider.Rate(ctx, "USD", "XYZ")
	assert.Error(t, err)

	_, err = provider.Rate(ctx, "XYZ", "USD")
	assert.Error(t, err)
}
