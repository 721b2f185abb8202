package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
)

// consumeTrack consumes a trk element. A track with no segments is valid.
func consumeTrack[V any](c *context[V]) (Track[V], error) {
	var none Track[V]

	if _, err := verifyStartingTag(c, "trk"); err != nil {
		return none, err
	}

	track := Track[V]{}
	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return none, gpxerr.MissingClosingTag("trk")
		}
		if err != nil {
			return none, errors.WithStack(gpxerr.TokenError("trk", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				if track.Name, err = consumeString(c, "name", true); err != nil {
					return none, err
				}
			case "cmt":
				if track.Comment, err = consumeString(c, "cmt", true); err != nil {
					return none, err
				}
			case "desc":
				if track.Description, err = consumeString(c, "desc", true); err != nil {
					return none, err
				}
			case "src":
				if track.Source, err = consumeString(c, "src", true); err != nil {
					return none, err
				}
			case "link":
				link, err := consumeLink(c)
				if err != nil {
					return none, err
				}
				track.Links = append(track.Links, link)
			case "number":
				raw, err := consumeString(c, "number", true)
				if err != nil {
					return none, err
				}
				track.Number = optUint32(raw)
			case "type":
				if track.Type, err = consumeString(c, "type", true); err != nil {
					return none, err
				}
			case "trkseg":
				segment, err := consumeTrackSegment(c)
				if err != nil {
					return none, err
				}
				track.Segments = append(track.Segments, segment)
			default:
				return none, gpxerr.InvalidChildElement(t.Name.Local, "trk")
			}
		case xml.EndElement:
			if t.Name.Local != "trk" {
				return none, gpxerr.InvalidClosingTag(t.Name.Local, "trk")
			}
			c.tokens.Next()
			return track, nil
		default:
			c.tokens.Next()
		}
	}
}
