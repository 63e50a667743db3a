package beamform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceImagesSums(t *testing.T) {
	partials := [][]Real{
		{1, 2, 3, 4, 5},
		{10, 20, 30, 40, 50},
		{-1, -1, -1, -1, -1},
	}
	for _, w := range []int{0, 1, 2, 5, 9} {
		dst := make([]Real, 5)
		require.NoError(t, ReduceImages(dst, partials, w))
		assert.Equal(t, []Real{10, 21, 32, 43, 54}, dst, "workers=%d", w)
	}
}

func TestReduceImagesAddsToDst(t *testing.T) {
	dst := []Real{100, 100}
	require.NoError(t, ReduceImages(dst, [][]Real{{1, 2}}, 2))
	assert.Equal(t, []Real{101, 102}, dst)
}

func TestReduceImagesMismatch(t *testing.T) {
	err := ReduceImages(make([]Real, 3), [][]Real{{1, 2, 3}, {1, 2}}, 2)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestReduceImagesEmpty(t *testing.T) {
	assert.NoError(t, ReduceImages(nil, nil, 4))
	dst := []Real{1, 2}
	require.NoError(t, ReduceImages(dst, nil, 4))
	assert.Equal(t, []Real{1, 2}, dst)
}
