package gpx

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/treklog/gpx/gpxerr"
)

// Extensions parses the extensions element of a waypoint into a value of
// type V. The hook is supplied once to ReadWithExtensions and invoked each
// time waypoint parsing encounters an extensions child; it is the only
// place the reader delegates element consumption to the caller.
//
// Consume is called with the stream positioned before the extensions
// opening tag and must leave it positioned immediately after the matching
// closing tag, on success and on failure alike.
type Extensions[V any] interface {
	Consume(r *TokenReader) (V, error)
}

// Empty is the extension value type used when no extension hook is active.
type Empty = struct{}

// NoExtensions is the hook used by Read: it discards the entire extensions
// subtree and produces no value.
type NoExtensions struct{}

// Consume implements Extensions[Empty].
func (NoExtensions) Consume(r *TokenReader) (Empty, error) {
	return Empty{}, SkipElement(r, "extensions")
}

// SkipElement consumes the next element named local, including its entire
// subtree, leaving r positioned after the element's closing tag. Leading
// comments and processing instructions are skipped. It is a convenience
// for Extensions implementations that only care about part of the
// extensions content.
func SkipElement(r *TokenReader, local string) error {
	for {
		tok, err := r.Next()
		if err == io.EOF {
			return gpxerr.MissingOpeningTag(local)
		}
		if err != nil {
			return errors.WithStack(gpxerr.TokenError(local, err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != local {
				return gpxerr.InvalidChildElement(t.Name.Local, local)
			}
			return skipSubtree(r, local)
		case xml.EndElement:
			return gpxerr.InvalidChildElement(t.Name.Local, local)
		}
	}
}

// skipSubtree consumes tokens until the element the stream is inside is
// closed. The decoder enforces well-formedness, so tracking depth alone is
// sufficient.
func skipSubtree(r *TokenReader, local string) error {
	depth := 1
	for depth > 0 {
		tok, err := r.Next()
		if err == io.EOF {
			return gpxerr.MissingClosingTag(local)
		}
		if err != nil {
			return errors.WithStack(gpxerr.TokenError(local, err))
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}
