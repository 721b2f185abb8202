package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
)

// consumeTrackSegment consumes a trkseg element. Its only valid children
// are trkpt elements; an empty segment is valid.
func consumeTrackSegment[V any](c *context[V]) (TrackSegment[V], error) {
	var none TrackSegment[V]

	if _, err := verifyStartingTag(c, "trkseg"); err != nil {
		return none, err
	}

	segment := TrackSegment[V]{}
	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return none, gpxerr.MissingClosingTag("trkseg")
		}
		if err != nil {
			return none, errors.WithStack(gpxerr.TokenError("trkseg", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "trkpt" {
				return none, gpxerr.InvalidChildElement(t.Name.Local, "trkseg")
			}
			point, err := consumeWaypoint(c, "trkpt")
			if err != nil {
				return none, err
			}
			segment.Points = append(segment.Points, point)
		case xml.EndElement:
			if t.Name.Local != "trkseg" {
				return none, gpxerr.InvalidClosingTag(t.Name.Local, "trkseg")
			}
			c.tokens.Next()
			return segment, nil
		default:
			c.tokens.Next()
		}
	}
}
