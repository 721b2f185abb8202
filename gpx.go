package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
	"github.com/treklog/gpx/xmlutil"
)

// consumeGpx consumes the document root. The version attribute, when
// recognized, is recorded in the context before any child is parsed so
// child consumers observe the established version. A bare <gpx></gpx> is
// a valid, empty document.
func consumeGpx[V any](c *context[V]) (*Gpx[V], error) {
	attrs, err := verifyStartingTag(c, "gpx")
	if err != nil {
		return nil, err
	}

	doc := &Gpx[V]{
		Version: ParseVersion(xmlutil.AttrValue(attrs, "version")),
		Creator: xmlutil.AttrValue(attrs, "creator"),
	}
	c.version = doc.Version

	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return nil, gpxerr.MissingClosingTag("gpx")
		}
		if err != nil {
			return nil, errors.WithStack(gpxerr.TokenError("gpx", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "metadata":
				if doc.Metadata, err = consumeMetadata(c); err != nil {
					return nil, err
				}
			case "wpt":
				point, err := consumeWaypoint(c, "wpt")
				if err != nil {
					return nil, err
				}
				doc.Waypoints = append(doc.Waypoints, point)
			case "trk":
				track, err := consumeTrack(c)
				if err != nil {
					return nil, err
				}
				doc.Tracks = append(doc.Tracks, track)
			case "rte":
				route, err := consumeRoute(c)
				if err != nil {
					return nil, err
				}
				doc.Routes = append(doc.Routes, route)
			default:
				return nil, gpxerr.InvalidChildElement(t.Name.Local, "gpx")
			}
		case xml.EndElement:
			if t.Name.Local != "gpx" {
				return nil, gpxerr.InvalidClosingTag(t.Name.Local, "gpx")
			}
			c.tokens.Next()
			return doc, nil
		default:
			c.tokens.Next()
		}
	}
}
