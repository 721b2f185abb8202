package gpx

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
	"github.com/treklog/gpx/xmlutil"
)

// consumeWaypoint consumes a point element named local: "wpt" at the
// document root, "trkpt" inside a track segment, "rtept" inside a route.
// The lat and lon attributes are required and must parse; all other fields
// are optional. An extensions child is handed to the active extension hook
// rather than rejected as an unknown child.
func consumeWaypoint[V any](c *context[V], local string) (Waypoint[V], error) {
	var none Waypoint[V]

	attrs, err := verifyStartingTag(c, local)
	if err != nil {
		return none, err
	}

	waypoint := Waypoint[V]{}
	for _, coord := range []struct {
		name string
		into *float64
	}{
		{"lat", &waypoint.Latitude},
		{"lon", &waypoint.Longitude},
	} {
		raw, ok := xmlutil.Attr(attrs, coord.name)
		if !ok {
			return none, gpxerr.MissingAttribute(coord.name, local)
		}
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return none, gpxerr.BadAttribute(coord.name, local, gpxerr.WithMessage("not a number: %q", raw))
		}
		*coord.into = v
	}

	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return none, gpxerr.MissingClosingTag(local)
		}
		if err != nil {
			return none, errors.WithStack(gpxerr.TokenError(local, err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ele":
				raw, err := consumeString(c, "ele", true)
				if err != nil {
					return none, err
				}
				waypoint.Elevation = optFloat(raw)
			case "time":
				if waypoint.Time, err = consumeTime(c, "time"); err != nil {
					return none, err
				}
			case "magvar":
				raw, err := consumeString(c, "magvar", true)
				if err != nil {
					return none, err
				}
				waypoint.MagneticVariation = optFloat(raw)
			case "geoidheight":
				raw, err := consumeString(c, "geoidheight", true)
				if err != nil {
					return none, err
				}
				waypoint.GeoidHeight = optFloat(raw)
			case "name":
				if waypoint.Name, err = consumeString(c, "name", true); err != nil {
					return none, err
				}
			case "cmt":
				if waypoint.Comment, err = consumeString(c, "cmt", true); err != nil {
					return none, err
				}
			case "desc":
				if waypoint.Description, err = consumeString(c, "desc", true); err != nil {
					return none, err
				}
			case "src":
				if waypoint.Source, err = consumeString(c, "src", true); err != nil {
					return none, err
				}
			case "link":
				link, err := consumeLink(c)
				if err != nil {
					return none, err
				}
				waypoint.Links = append(waypoint.Links, link)
			case "sym":
				if waypoint.Symbol, err = consumeString(c, "sym", true); err != nil {
					return none, err
				}
			case "type":
				if waypoint.Type, err = consumeString(c, "type", true); err != nil {
					return none, err
				}
			case "fix":
				if waypoint.Fix, err = consumeFix(c); err != nil {
					return none, err
				}
			case "sat":
				raw, err := consumeString(c, "sat", true)
				if err != nil {
					return none, err
				}
				waypoint.Satellites = optUint64(raw)
			case "hdop":
				raw, err := consumeString(c, "hdop", true)
				if err != nil {
					return none, err
				}
				waypoint.HDOP = optFloat(raw)
			case "vdop":
				raw, err := consumeString(c, "vdop", true)
				if err != nil {
					return none, err
				}
				waypoint.VDOP = optFloat(raw)
			case "pdop":
				raw, err := consumeString(c, "pdop", true)
				if err != nil {
					return none, err
				}
				waypoint.PDOP = optFloat(raw)
			case "ageofdgpsdata":
				raw, err := consumeString(c, "ageofdgpsdata", true)
				if err != nil {
					return none, err
				}
				waypoint.AgeOfDGPSData = optFloat(raw)
			case "dgpsid":
				raw, err := consumeString(c, "dgpsid", true)
				if err != nil {
					return none, err
				}
				waypoint.DGPSID = optUint16(raw)
			case "extensions":
				if waypoint.Extensions, err = c.ext.Consume(c.tokens); err != nil {
					return none, err
				}
			default:
				return none, gpxerr.InvalidChildElement(t.Name.Local, local)
			}
		case xml.EndElement:
			if t.Name.Local != local {
				return none, gpxerr.InvalidClosingTag(t.Name.Local, local)
			}
			c.tokens.Next()
			return waypoint, nil
		default:
			c.tokens.Next()
		}
	}
}
