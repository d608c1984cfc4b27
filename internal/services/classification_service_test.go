package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tarifflens/tarifflens-api/internal/catalog"
	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/logger"
	"github.com/tarifflens/tarifflens-api/internal/mocks"
	"github.com/tarifflens/tarifflens-api/internal/services"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

func init() {
	logger.InitLogger("local")
}

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	c, err := catalog.Load([]catalog.RawEntry{
		{Code: "4015.19.0510", Description: "Gloves of vulcanized rubber, seamless", GeneralRate: 3.0, SpecialPrograms: map[string]float64{"USMCA": 0}, Line: 2},
		{Code: "4015.19.1010", Description: "Gloves of rubber, surgical", GeneralRate: 0, Line: 3},
		{Code: "6109.10.0004", Description: "T-shirts of cotton, knitted, men's", GeneralRate: 16.5, SpecialPrograms: map[string]float64{"USMCA": 0, "GSP": 2.5}, Line: 4},
		{Code: "8471.30.0100", Description: "Portable digital computers, weighing not more than 10 kg", GeneralRate: 0, Line: 5},
	})
	require.NoError(t, err)
	return catalog.NewStore(c)
}

func TestClassificationService_Match(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query yields empty result", func(t *testing.T) {
		service := services.NewClassificationService(testStore(t), nil)

		candidates, err := service.Match(ctx, "   ", 10)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("non-positive limit yields empty result", func(t *testing.T) {
		service := services.NewClassificationService(testStore(t), nil)

		candidates, err := service.Match(ctx, "gloves", 0)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("exact code query ranks first with full score", func(t *testing.T) {
		service := services.NewClassificationService(testStore(t), nil)

		candidates, err := service.Match(ctx, "4015.19.0510", 10)
		require.NoError(t, err)
		require.NotEmpty(t, candidates)
		assert.Equal(t, "4015.19.0510", candidates[0].Entry.Code)
		assert.Equal(t, types.MatchExactCode, candidates[0].MatchKind)
		assert.Equal(t, 1.0, candidates[0].Score)
	})

	t.Run("raw digit code is recognized", func(t *testing.T) {
		service := services.NewClassificationService(testStore(t), nil)

		candidates, err := service.Match(ctx, "4015190510", 10)
		require.NoError(t, err)
		require.NotEmpty(t, candidates)
		assert.Equal(t, types.MatchExactCode, candidates[0].MatchKind)
	})

	t.Run("substring matching finds descriptions", func(t *testing.T) {
		service := services.NewClassificationService(testStore(t), nil)

		candidates, err := service.Match(ctx, "gloves", 10)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		for _, c := range candidates {
			assert.Equal(t, types.MatchSubstring, c.MatchKind)
			assert.GreaterOrEqual(t, c.Score, 0.30)
			assert.LessOrEqual(t, c.Score, 0.95)
		}
	})

	t.Run("semantic results merge with substring hits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		similarity := mocks.NewMockSimilarityClient(ctrl)
		// Corpus index 3 is the portable computers entry.
		similarity.EXPECT().
			Rank(gomock.Any(), "laptop", gomock.Any()).
			Return([]interfaces.SimilarityHit{{Index: 3, Score: 0.87}}, nil)

		service := services.NewClassificationService(testStore(t), similarity)

		candidates, err := service.Match(ctx, "laptop", 10)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "8471.30.0100", candidates[0].Entry.Code)
		assert.Equal(t, types.MatchSemantic, candidates[0].MatchKind)
		assert.InDelta(t, 0.87, candidates[0].Score, 1e-9)
	})

	t.Run("semantic failure degrades to text matching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		similarity := mocks.NewMockSimilarityClient(ctrl)
		similarity.EXPECT().
			Rank(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		service := services.NewClassificationService(testStore(t), similarity)

		candidates, err := service.Match(ctx, "gloves", 10)
		require.NoError(t, err)
		assert.Len(t, candidates, 2)
	})

	t.Run("duplicate code keeps highest score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		similarity := mocks.NewMockSimilarityClient(ctrl)
		// Index 0 is the seamless gloves entry, which the substring pass
		// also finds at a lower score.
		similarity.EXPECT().
			Rank(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]interfaces.SimilarityHit{{Index: 0, Score: 0.99}}, nil)

		service := services.NewClassificationService(testStore(t), similarity)

		candidates, err := service.Match(ctx, "gloves", 10)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, "4015.19.0510", candidates[0].Entry.Code)
		assert.InDelta(t, 0.99, candidates[0].Score, 1e-9)
		assert.Equal(t, types.MatchSemantic, candidates[0].MatchKind)
	})

	t.Run("out of range semantic index skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		similarity := mocks.NewMockSimilarityClient(ctrl)
		similarity.EXPECT().
			Rank(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]interfaces.SimilarityHit{{Index: 99, Score: 0.9}, {Index: -1, Score: 0.9}}, nil)

		service := services.NewClassificationService(testStore(t), similarity)

		candidates, err := service.Match(ctx, "zzz unmatched", 10)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("limit truncates results", func(t *testing.T) {
		service := services.NewClassificationService(testStore(t), nil)

		candidates, err := service.Match(ctx, "gloves", 1)
		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})
}
