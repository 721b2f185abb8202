package gpx

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
	"github.com/treklog/gpx/xmlutil"
)

// consumeBounds consumes a bounds element. All four edge attributes are
// required and must parse as floats; there are no child elements.
func consumeBounds[V any](c *context[V]) (*Bounds, error) {
	attrs, err := verifyStartingTag(c, "bounds")
	if err != nil {
		return nil, err
	}

	bounds := &Bounds{}
	for _, edge := range []struct {
		name string
		into *float64
	}{
		{"minlat", &bounds.MinLatitude},
		{"minlon", &bounds.MinLongitude},
		{"maxlat", &bounds.MaxLatitude},
		{"maxlon", &bounds.MaxLongitude},
	} {
		raw, ok := xmlutil.Attr(attrs, edge.name)
		if !ok {
			return nil, gpxerr.MissingAttribute(edge.name, "bounds")
		}
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return nil, gpxerr.BadAttribute(edge.name, "bounds", gpxerr.WithMessage("not a number: %q", raw))
		}
		*edge.into = v
	}

	for {
		tok, err := c.tokens.Next()
		if err == io.EOF {
			return nil, gpxerr.MissingClosingTag("bounds")
		}
		if err != nil {
			return nil, errors.WithStack(gpxerr.TokenError("bounds", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil, gpxerr.InvalidChildElement(t.Name.Local, "bounds")
		case xml.EndElement:
			if t.Name.Local != "bounds" {
				return nil, gpxerr.InvalidClosingTag(t.Name.Local, "bounds")
			}
			return bounds, nil
		}
	}
}
