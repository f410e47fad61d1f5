package device

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  Size
	}{
		{0, SizeCompact},
		{79, SizeCompact},
		{80, SizeRegular},
		{139, SizeRegular},
		{140, SizeWide},
		{500, SizeWide},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Classify(tc.width), "width %d", tc.width)
	}
}

func TestNoGeolocator_ReportsUnavailable(t *testing.T) {
	_, err := NoGeolocator{}.CurrentPosition(context.Background())
	require.ErrorIs(t, err, ErrLocationUnavailable)
}

func TestStaticGeolocator_ReturnsFixedPosition(t *testing.T) {
	g := StaticGeolocator{Pos: Position{Latitude: 40.7, Longitude: -74.0}}
	pos, err := g.CurrentPosition(context.Background())
	require.NoError(t, err)
	require.Equal(t, 40.7, pos.Latitude)
	require.Equal(t, -74.0, pos.Longitude)
}
