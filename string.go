package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
)

// consumeString consumes a single element named local and returns its text
// content. No markup is permitted inside the element. When allowEmpty is
// false, an element with no text content is an error.
//
// If the element carries more than one text token, the last one wins; text
// is not concatenated. The upstream decoder only splits text around
// entities and CDATA sections, so in practice a leaf carries one token,
// but the behavior is contractual and covered by tests.
func consumeString[V any](c *context[V], local string, allowEmpty bool) (string, error) {
	if _, err := verifyStartingTag(c, local); err != nil {
		return "", err
	}

	var content string
	for {
		tok, err := c.tokens.Next()
		if err == io.EOF {
			return "", gpxerr.MissingClosingTag(local)
		}
		if err != nil {
			return "", errors.WithStack(gpxerr.TokenError(local, err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return "", gpxerr.InvalidChildElement(t.Name.Local, local)
		case xml.CharData:
			content = string(t)
		case xml.EndElement:
			if t.Name.Local != local {
				return "", gpxerr.InvalidClosingTag(t.Name.Local, local)
			}
			if allowEmpty || content != "" {
				return content, nil
			}
			return "", gpxerr.NoContent(local)
		}
	}
}
