package gpx

import "github.com/paulmach/orb"

// Geometry accessors bridge parsed entities to the orb geometry types, so
// callers can hand tracks and points straight to planar/geo algorithms.
// orb follows the lon/lat axis order.

// Point returns the waypoint's position.
func (w *Waypoint[V]) Point() orb.Point {
	return orb.Point{w.Longitude, w.Latitude}
}

// LineString returns the segment's points as a line string, in document
// order.
func (s *TrackSegment[V]) LineString() orb.LineString {
	line := make(orb.LineString, 0, len(s.Points))
	for i := range s.Points {
		line = append(line, s.Points[i].Point())
	}
	return line
}

// MultiLineString returns one line string per segment, in document order.
func (t *Track[V]) MultiLineString() orb.MultiLineString {
	lines := make(orb.MultiLineString, 0, len(t.Segments))
	for i := range t.Segments {
		lines = append(lines, t.Segments[i].LineString())
	}
	return lines
}

// LineString returns the route's points as a line string, in document
// order.
func (r *Route[V]) LineString() orb.LineString {
	line := make(orb.LineString, 0, len(r.Points))
	for i := range r.Points {
		line = append(line, r.Points[i].Point())
	}
	return line
}
