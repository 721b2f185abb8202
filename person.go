package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
)

// consumePerson consumes a person element named local ("author" under
// metadata). Name, email and link children are all optional.
func consumePerson[V any](c *context[V], local string) (*Person, error) {
	if _, err := verifyStartingTag(c, local); err != nil {
		return nil, err
	}

	person := &Person{}
	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return nil, gpxerr.MissingClosingTag(local)
		}
		if err != nil {
			return nil, errors.WithStack(gpxerr.TokenError(local, err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				if person.Name, err = consumeString(c, "name", true); err != nil {
					return nil, err
				}
			case "email":
				if person.Email, err = consumeEmail(c); err != nil {
					return nil, err
				}
			case "link":
				link, err := consumeLink(c)
				if err != nil {
					return nil, err
				}
				person.Link = &link
			default:
				return nil, gpxerr.InvalidChildElement(t.Name.Local, local)
			}
		case xml.EndElement:
			if t.Name.Local != local {
				return nil, gpxerr.InvalidClosingTag(t.Name.Local, local)
			}
			c.tokens.Next()
			return person, nil
		default:
			c.tokens.Next()
		}
	}
}
