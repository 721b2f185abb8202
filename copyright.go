package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
	"github.com/treklog/gpx/xmlutil"
)

// consumeCopyright consumes a copyright element. The author attribute and
// both children are optional; a year that does not parse as an integer is
// dropped rather than reported.
func consumeCopyright[V any](c *context[V]) (*Copyright, error) {
	attrs, err := verifyStartingTag(c, "copyright")
	if err != nil {
		return nil, err
	}

	copyright := &Copyright{Author: xmlutil.AttrValue(attrs, "author")}
	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return nil, gpxerr.MissingClosingTag("copyright")
		}
		if err != nil {
			return nil, errors.WithStack(gpxerr.TokenError("copyright", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "year":
				raw, err := consumeString(c, "year", false)
				if err != nil {
					return nil, err
				}
				copyright.Year = optInt(raw)
			case "license":
				if copyright.License, err = consumeString(c, "license", false); err != nil {
					return nil, err
				}
			default:
				return nil, gpxerr.InvalidChildElement(t.Name.Local, "copyright")
			}
		case xml.EndElement:
			if t.Name.Local != "copyright" {
				return nil, gpxerr.InvalidClosingTag(t.Name.Local, "copyright")
			}
			c.tokens.Next()
			return copyright, nil
		default:
			c.tokens.Next()
		}
	}
}
