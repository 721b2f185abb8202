package gpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treklog/gpx/gpxerr"
)

func TestConsumeTrackSegment(t *testing.T) {
	t.Run("full segment", func(t *testing.T) {
		segment, err := consumeTrackSegment(newTestContext(`
			<trkseg>
				<trkpt lon="-77.0365" lat="38.8977">
					<name>The White House</name>
				</trkpt>
				<trkpt lon="-71.063611" lat="42.358056">
					<name>Boston, Massachusetts</name>
				</trkpt>
				<trkpt lon="-69.7832" lat="44.31055">
					<name>Augusta, Maine</name>
				</trkpt>
			</trkseg>`))
		require.NoError(t, err)
		require.Len(t, segment.Points, 3)

		// document order and per-point fidelity
		names := []string{"The White House", "Boston, Massachusetts", "Augusta, Maine"}
		lats := []float64{38.8977, 42.358056, 44.31055}
		for i, point := range segment.Points {
			assert.Equal(t, names[i], point.Name)
			assert.InDelta(t, lats[i], point.Latitude, 1e-9)
		}
	})

	t.Run("empty segment is valid", func(t *testing.T) {
		segment, err := consumeTrackSegment(newTestContext(`<trkseg></trkseg>`))
		require.NoError(t, err)
		assert.Empty(t, segment.Points)
	})

	t.Run("only trkpt children allowed", func(t *testing.T) {
		_, err := consumeTrackSegment(newTestContext(`<trkseg><wpt lat="1" lon="2"/></trkseg>`))
		require.Error(t, err)
		assert.True(t, gpxerr.HasTag(err, gpxerr.TagUnknownElement))
	})

	t.Run("unterminated segment", func(t *testing.T) {
		_, err := consumeTrackSegment(newTestContext(`<trkseg>`))
		assert.Error(t, err)
	})
}
