package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
)

// consumeMetadata consumes the metadata element of a document.
func consumeMetadata[V any](c *context[V]) (*Metadata, error) {
	if _, err := verifyStartingTag(c, "metadata"); err != nil {
		return nil, err
	}

	metadata := &Metadata{}
	for {
		tok, err := c.tokens.Peek()
		if err == io.EOF {
			return nil, gpxerr.MissingClosingTag("metadata")
		}
		if err != nil {
			return nil, errors.WithStack(gpxerr.TokenError("metadata", err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				if metadata.Name, err = consumeString(c, "name", true); err != nil {
					return nil, err
				}
			case "desc":
				if metadata.Description, err = consumeString(c, "desc", true); err != nil {
					return nil, err
				}
			case "author":
				if metadata.Author, err = consumePerson(c, "author"); err != nil {
					return nil, err
				}
			case "copyright":
				if metadata.Copyright, err = consumeCopyright(c); err != nil {
					return nil, err
				}
			case "link":
				link, err := consumeLink(c)
				if err != nil {
					return nil, err
				}
				metadata.Links = append(metadata.Links, link)
			case "time":
				if metadata.Time, err = consumeTime(c, "time"); err != nil {
					return nil, err
				}
			case "keywords":
				if metadata.Keywords, err = consumeString(c, "keywords", true); err != nil {
					return nil, err
				}
			case "bounds":
				if metadata.Bounds, err = consumeBounds(c); err != nil {
					return nil, err
				}
			default:
				return nil, gpxerr.InvalidChildElement(t.Name.Local, "metadata")
			}
		case xml.EndElement:
			if t.Name.Local != "metadata" {
				return nil, gpxerr.InvalidClosingTag(t.Name.Local, "metadata")
			}
			c.tokens.Next()
			return metadata, nil
		default:
			c.tokens.Next()
		}
	}
}
