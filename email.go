package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
	"github.com/treklog/gpx/xmlutil"
)

// consumeEmail consumes an email element. GPX splits addresses into id and
// domain attributes to frustrate scrapers; both are required and are joined
// back into one address here. The element has no children.
func consumeEmail[V any](c *context[V]) (string, error) {
	attrs, err := verifyStartingTag(c, "email")
	if err != nil {
		return "", err
	}

	id, ok := xmlutil.Attr(attrs, "id")
	if !ok {
		return "", gpxerr.MissingAttribute("id", "email")
	}
	domain, ok := xmlutil.Attr(attrs, "domain")
	if !ok {
		return "", gpxerr.MissingAttribute("domain", "email")
	}

	for {
		tok, err := c.tokens.Next()
		if err == io.EOF {
			return "", gpxerr.MissingClosingTag("email")
		}
		if err != nil {
			return "", errors.WithStack(gpxerr.TokenError("email", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return "", gpxerr.InvalidChildElement(t.Name.Local, "email")
		case xml.EndElement:
			if t.Name.Local != "email" {
				return "", gpxerr.InvalidClosingTag(t.Name.Local, "email")
			}
			return id + "@" + domain, nil
		}
	}
}
