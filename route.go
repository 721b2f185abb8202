package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
)

// consumeRoute consumes an rte element. Routes carry the same descriptive
// fields as tracks but hold their points directly, without segments.
func consumeRoute[V any](c *context[V]) (Route[V], error) {
	var none Route[V]

	if _, err := verifyStartingTag(c, "rte"); err != nil {
		return none, err
	}

	route := Route[V]{}
	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return none, gpxerr.MissingClosingTag("rte")
		}
		if err != nil {
			return none, errors.WithStack(gpxerr.TokenError("rte", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				if route.Name, err = consumeString(c, "name", true); err != nil {
					return none, err
				}
			case "cmt":
				if route.Comment, err = consumeString(c, "cmt", true); err != nil {
					return none, err
				}
			case "desc":
				if route.Description, err = consumeString(c, "desc", true); err != nil {
					return none, err
				}
			case "src":
				if route.Source, err = consumeString(c, "src", true); err != nil {
					return none, err
				}
			case "link":
				link, err := consumeLink(c)
				if err != nil {
					return none, err
				}
				route.Links = append(route.Links, link)
			case "number":
				raw, err := consumeString(c, "number", true)
				if err != nil {
					return none, err
				}
				route.Number = optUint32(raw)
			case "type":
				if route.Type, err = consumeString(c, "type", true); err != nil {
					return none, err
				}
			case "rtept":
				point, err := consumeWaypoint(c, "rtept")
				if err != nil {
					return none, err
				}
				route.Points = append(route.Points, point)
			default:
				return none, gpxerr.InvalidChildElement(t.Name.Local, "rte")
			}
		case xml.EndElement:
			if t.Name.Local != "rte" {
				return none, gpxerr.InvalidClosingTag(t.Name.Local, "rte")
			}
			c.tokens.Next()
			return route, nil
		default:
			c.tokens.Next()
		}
	}
}
