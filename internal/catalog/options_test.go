package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
)

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name string
		base float64
		size string
		want int64
	}{
		{name: "small_keeps_base", base: 2499, size: "small", want: 2499},
		{name: "large_doubles", base: 2499, size: "large", want: 4998},
		{name: "medium_rounds_half_up", base: 3299, size: "medium", want: 4949},
		{name: "custom_base_medium", base: 1999, size: "medium", want: 2999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ComputePrice(tt.base, tt.size, "royal-gold")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePrice_FrameNeverAffectsPrice(t *testing.T) {
	for _, size := range catalog.SizeOptions() {
		var prices []int64
		for _, frame := range catalog.FrameOptions() {
			price, err := catalog.ComputePrice(2799, size.ID, frame.ID)
			require.NoError(t, err)
			prices = append(prices, price)
		}
		for _, p := range prices {
			assert.Equal(t, prices[0], p, "size %s", size.ID)
		}
	}
}

func TestComputePrice_UnknownOptions(t *testing.T) {
	_, err := catalog.ComputePrice(2499, "huge", "royal-gold")
	require.ErrorIs(t, err, catalog.ErrUnknownSize)

	_, err = catalog.ComputePrice(2499, "small", "neon")
	require.ErrorIs(t, err, catalog.ErrUnknownFrame)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Medium", catalog.SizeLabel("medium"))
	assert.Equal(t, "Matte Black", catalog.FrameLabel("matte-black"))
	assert.Equal(t, "poster", catalog.SizeLabel("poster"))
	assert.Equal(t, "bamboo", catalog.FrameLabel("bamboo"))
}

func TestOptionsAreCopies(t *testing.T) {
	sizes := catalog.SizeOptions()
	sizes[0].PriceMultiplier = 100

	fresh, ok := catalog.LookupSize(sizes[0].ID)
	require.True(t, ok)
	assert.Equal(t, 1.0, fresh.PriceMultiplier)
}
