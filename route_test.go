package gpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treklog/gpx/gpxerr"
)

func TestConsumeRoute(t *testing.T) {
	t.Run("full route", func(t *testing.T) {
		route, err := consumeRoute(newTestContext(`
			<rte>
				<name>Ferry crossing</name>
				<desc>across the sound</desc>
				<number>2</number>
				<rtept lat="47.6028" lon="-122.3398"><name>depart</name></rtept>
				<rtept lat="47.6225" lon="-122.5107"><name>arrive</name></rtept>
			</rte>`))
		require.NoError(t, err)

		assert.Equal(t, "Ferry crossing", route.Name)
		assert.Equal(t, "across the sound", route.Description)
		require.NotNil(t, route.Number)
		assert.Equal(t, uint32(2), *route.Number)

		require.Len(t, route.Points, 2)
		assert.Equal(t, "depart", route.Points[0].Name)
		assert.Equal(t, "arrive", route.Points[1].Name)
	})

	t.Run("empty route is valid", func(t *testing.T) {
		route, err := consumeRoute(newTestContext(`<rte></rte>`))
		require.NoError(t, err)
		assert.Empty(t, route.Points)
	})

	t.Run("no segment grouping in routes", func(t *testing.T) {
		_, err := consumeRoute(newTestContext(`<rte><trkseg></trkseg></rte>`))
		assert.True(t, gpxerr.HasTag(err, gpxerr.TagUnknownElement))
	})
}
