package gpx

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
)

// context threads the parse state through every consumer call: the token
// stream, the document version and the active extension hook. It is passed
// by pointer and never retained past a consumer's return.
type context[V any] struct {
	tokens  *TokenReader
	version Version
	ext     Extensions[V]
}

func newContext[V any](r io.Reader, version Version, ext Extensions[V]) *context[V] {
	return &context[V]{tokens: NewTokenReader(r), version: version, ext: ext}
}

// verifyStartingTag confirms that the next structural token on the stream
// is the opening tag named local and returns its attributes, leaving the
// stream positioned after the opening tag. Comments, directives and
// processing instructions before the tag are skipped, as is whitespace-only
// character data (the decoder reports inter-element whitespace as text).
// Every consumer begins through this function.
func verifyStartingTag[V any](c *context[V], local string) ([]xml.Attr, error) {
	for {
		tok, err := c.tokens.Next()
		if err == io.EOF {
			return nil, gpxerr.MissingOpeningTag(local)
		}
		if err != nil {
			return nil, errors.WithStack(gpxerr.TokenError(local, err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != local {
				return nil, gpxerr.InvalidChildElement(t.Name.Local, local)
			}
			return t.Attr, nil
		case xml.EndElement:
			return nil, gpxerr.InvalidChildElement(t.Name.Local, local)
		case xml.CharData:
			if s := strings.TrimSpace(string(t)); s != "" {
				return nil, gpxerr.InvalidChildElement(s, local)
			}
		}
	}
}
