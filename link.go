package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
	"github.com/treklog/gpx/xmlutil"
)

// consumeLink consumes a link element. The href attribute is required; the
// text and type children are optional and may be empty.
func consumeLink[V any](c *context[V]) (Link, error) {
	attrs, err := verifyStartingTag(c, "link")
	if err != nil {
		return Link{}, err
	}

	link := Link{}
	href, ok := xmlutil.Attr(attrs, "href")
	if !ok {
		return Link{}, gpxerr.MissingAttribute("href", "link")
	}
	link.Href = href

	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return Link{}, gpxerr.MissingClosingTag("link")
		}
		if err != nil {
			return Link{}, errors.WithStack(gpxerr.TokenError("link", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "text":
				if link.Text, err = consumeString(c, "text", true); err != nil {
					return Link{}, err
				}
			case "type":
				if link.Type, err = consumeString(c, "type", true); err != nil {
					return Link{}, err
				}
			default:
				return Link{}, gpxerr.InvalidChildElement(t.Name.Local, "link")
			}
		case xml.EndElement:
			if t.Name.Local != "link" {
				return Link{}, gpxerr.InvalidClosingTag(t.Name.Local, "link")
			}
			c.tokens.Next()
			return link, nil
		default:
			c.tokens.Next()
		}
	}
}
