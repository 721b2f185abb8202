package gpx

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaypointPoint(t *testing.T) {
	waypoint, err := consumeWaypoint(newTestContext(`<wpt lat="38.8977" lon="-77.0365"/>`), "wpt")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-77.0365, 38.8977}, waypoint.Point())
}

func TestTrackSegmentLineString(t *testing.T) {
	segment, err := consumeTrackSegment(newTestContext(`
		<trkseg>
			<trkpt lon="-77.0365" lat="38.8977"/>
			<trkpt lon="-71.063611" lat="42.358056"/>
			<trkpt lon="-69.7832" lat="44.31055"/>
		</trkseg>`))
	require.NoError(t, err)

	line := segment.LineString()
	require.Len(t, line, 3)
	assert.Equal(t, orb.Point{-77.0365, 38.8977}, line[0])
	assert.InDelta(t, 9.2377437, planar.Length(line), 1e-6)
}

func TestTrackMultiLineString(t *testing.T) {
	track, err := consumeTrack(newTestContext(`
		<trk>
			<trkseg>
				<trkpt lat="1" lon="1"/>
				<trkpt lat="2" lon="2"/>
			</trkseg>
			<trkseg></trkseg>
			<trkseg>
				<trkpt lat="3" lon="3"/>
			</trkseg>
		</trk>`))
	require.NoError(t, err)

	lines := track.MultiLineString()
	require.Len(t, lines, 3)
	assert.Len(t, lines[0], 2)
	assert.Empty(t, lines[1])
	assert.Len(t, lines[2], 1)
}

func TestRouteLineString(t *testing.T) {
	route, err := consumeRoute(newTestContext(`
		<rte>
			<rtept lat="47.6028" lon="-122.3398"/>
			<rtept lat="47.6225" lon="-122.5107"/>
		</rte>`))
	require.NoError(t, err)

	line := route.LineString()
	require.Len(t, line, 2)
	assert.Equal(t, orb.Point{-122.3398, 47.6028}, line[0])
	assert.Equal(t, orb.Point{-122.5107, 47.6225}, line[1])
}
