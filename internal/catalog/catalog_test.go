package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarifflens/tarifflens-api/internal/catalog"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "full ten digit code with dots",
			input: "4015.19.0510",
			want:  "4015.19.0510",
		},
		{
			name:  "full ten digit code without punctuation",
			input: "4015190510",
			want:  "4015.19.0510",
		},
		{
			name:  "six digit subheading padded with zeros",
			input: "6109.10",
			want:  "6109.10.0000",
		},
		{
			name:  "four digit heading padded with zeros",
			input: "8471",
			want:  "8471.00.0000",
		},
		{
			name:  "mixed punctuation stripped",
			input: "8471-30.01 00",
			want:  "8471.30.0100",
		},
		{
			name:    "no digits",
			input:   "cotton shirts",
			wantErr: true,
		},
		{
			name:    "too few digits",
			input:   "841",
			wantErr: true,
		},
		{
			name:    "too many digits",
			input:   "40151905101",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.NormalizeCode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		raw        []catalog.RawEntry
		wantErr    bool
		wantReason string
	}{
		{
			name: "valid entries",
			raw: []catalog.RawEntry{
				{Code: "4015.19.0510", Description: "Gloves of vulcanized rubber", GeneralRate: 3.0, Line: 2},
				{Code: "6109.10.0004", Description: "T-shirts of cotton, men's", GeneralRate: 16.5, Line: 3},
			},
		},
		{
			name: "empty description rejected",
			raw: []catalog.RawEntry{
				{Code: "4015.19.0510", Description: "   ", GeneralRate: 3.0, Line: 2},
			},
			wantErr:    true,
			wantReason: "empty description",
		},
		{
			name: "negative rate rejected",
			raw: []catalog.RawEntry{
				{Code: "4015.19.0510", Description: "Gloves", GeneralRate: -1.0, Line: 2},
			},
			wantErr:    true,
			wantReason: "negative rate",
		},
		{
			name: "negative program rate rejected",
			raw: []catalog.RawEntry{
				{Code: "4015.19.0510", Description: "Gloves", GeneralRate: 3.0, SpecialPrograms: map[string]float64{"USMCA": -0.5}, Line: 2},
			},
			wantErr: true,
		},
		{
			name: "ambiguous duplicate rejected",
			raw: []catalog.RawEntry{
				{Code: "4015.19.0510", Description: "Gloves", GeneralRate: 3.0, Line: 2},
				{Code: "4015190510", Description: "Gloves again", GeneralRate: 5.0, Line: 3},
			},
			wantErr: true,
		},
		{
			name: "malformed code rejected",
			raw: []catalog.RawEntry{
				{Code: "abc", Description: "Gloves", GeneralRate: 3.0, Line: 2},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.Load(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var loadErr *catalog.LoadError
				require.ErrorAs(t, err, &loadErr)
				if tt.wantReason != "" {
					assert.Contains(t, loadErr.Reason, tt.wantReason)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.raw), c.Len())
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := catalog.Load([]catalog.RawEntry{
		{Code: "4015.19.0510", Description: "Gloves of vulcanized rubber", GeneralRate: 3.0, Line: 2},
		{Code: "6109.10", Description: "T-shirts, knitted", GeneralRate: 16.5, Line: 3},
	})
	require.NoError(t, err)

	t.Run("canonical form", func(t *testing.T) {
		entry, err := c.Lookup("4015.19.0510")
		require.NoError(t, err)
		assert.Equal(t, "4015.19.0510", entry.Code)
		assert.Equal(t, 3.0, entry.GeneralRate)
	})

	t.Run("raw digits", func(t *testing.T) {
		entry, err := c.Lookup("4015190510")
		require.NoError(t, err)
		assert.Equal(t, "4015.19.0510", entry.Code)
	})

	t.Run("padded subheading", func(t *testing.T) {
		entry, err := c.Lookup("6109.10")
		require.NoError(t, err)
		assert.Equal(t, "6109.10.0000", entry.Code)
		assert.Equal(t, "6109.10", entry.RawCode)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := c.Lookup("9999.99.9999")
		assert.True(t, errors.Is(err, catalog.ErrNotFound))
	})

	t.Run("malformed code maps to not found", func(t *testing.T) {
		_, err := c.Lookup("not-a-code")
		assert.True(t, errors.Is(err, catalog.ErrNotFound))
	})
}

func TestCatalog_All(t *testing.T) {
	c, err := catalog.Load([]catalog.RawEntry{
		{Code: "6109.10.0004", Description: "T-shirts", GeneralRate: 16.5, Line: 2},
		{Code: "4015.19.0510", Description: "Gloves", GeneralRate: 3.0, Line: 3},
	})
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 2)
	// Canonical code order regardless of source order.
	assert.Equal(t, "4015.19.0510", all[0].Code)
	assert.Equal(t, "6109.10.0004", all[1].Code)

	// Mutating the returned slice must not touch the snapshot.
	all[0].Description = "mutated"
	entry, err := c.Lookup("4015.19.0510")
	require.NoError(t, err)
	assert.Equal(t, "Gloves", entry.Description)
}

func TestHTSEntry_Chapter(t *testing.T) {
	entry := catalog.HTSEntry{Code: "4015.19.0510"}
	assert.Equal(t, "40", entry.Chapter())

	assert.Equal(t, "", catalog.HTSEntry{}.Chapter())
}

func TestStore_SnapshotAndSwap(t *testing.T) {
	first, err := catalog.Load([]catalog.RawEntry{
		{Code: "4015.19.0510", Description: "Gloves", GeneralRate: 3.0, Line: 2},
	})
	require.NoError(t, err)

	store := catalog.NewStore(first)
	assert.Equal(t, 1, store.Snapshot().Len())

	second, err := catalog.Load([]catalog.RawEntry{
		{Code: "4015.19.0510", Description: "Gloves", GeneralRate: 3.0, Line: 2},
		{Code: "6109.10.0004", Description: "T-shirts", GeneralRate: 16.5, Line: 3},
	})
	require.NoError(t, err)

	previous := store.Swap(second)
	assert.Equal(t, 1, previous.Len())
	assert.Equal(t, 2, store.Snapshot().Len())
}
