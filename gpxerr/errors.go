// Package gpxerr defines the structured error taxonomy of the GPX reader.
//
// Every failure produced while consuming a document is an *Error carrying a
// machine-readable Tag plus the element names needed to render a precise
// diagnostic without re-parsing the input. Errors are constructed through the
// per-tag constructor functions below; optional detail is supplied through
// functional Options.
package gpxerr

import (
	"errors"
	"fmt"
)

// Error tags. Each tag identifies one failure class of the reader.
const (
	// TagMissingOpeningTag: the expected opening tag never appeared before
	// the token stream was exhausted.
	TagMissingOpeningTag = "missing-opening-tag"
	// TagUnknownElement: an element appeared as a child of an entity whose
	// child vocabulary does not include it, or where a specific opening tag
	// was required.
	TagUnknownElement = "unknown-element"
	// TagInvalidClosingTag: a closing tag's name does not match the entity
	// currently being closed.
	TagInvalidClosingTag = "invalid-closing-tag"
	// TagMissingClosingTag: the token stream was exhausted while an entity
	// was still open.
	TagMissingClosingTag = "missing-closing-tag"
	// TagNoContent: a leaf element required non-empty text but had none.
	TagNoContent = "no-content"
	// TagMissingAttribute: a required attribute was absent from an opening tag.
	TagMissingAttribute = "missing-attribute"
	// TagBadAttribute: a required attribute was present but unparsable.
	TagBadAttribute = "bad-attribute"
	// TagTokenError: the underlying tokenizer reported malformed input.
	TagTokenError = "token-error"
)

// Error represents a GPX read error.
//
// Element is the element (or text content) found at fault; Within names the
// enclosing entity, or the element that was expected instead, depending on
// the Tag. Attribute is set for attribute-level failures only.
type Error struct {
	Tag       string
	Element   string
	Within    string
	Attribute string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	s := "gpx error tag:" + e.Tag
	if e.Attribute != "" {
		s += " attribute:" + e.Attribute
	}
	if e.Element != "" {
		s += " element:<" + e.Element + ">"
	}
	if e.Within != "" {
		s += " in:<" + e.Within + ">"
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// Option mutates an Error under construction.
type Option func(*Error)

// WithMessage sets the free-form diagnostic message.
func WithMessage(format string, args ...interface{}) Option {
	return func(e *Error) { e.Message = fmt.Sprintf(format, args...) }
}

// WithCause records the underlying error.
func WithCause(cause error) Option {
	return func(e *Error) { e.Cause = cause }
}

// HasTag reports whether err is (or wraps) an *Error with the given tag.
func HasTag(err error, tag string) bool {
	var e *Error
	return errors.As(err, &e) && e.Tag == tag
}

func MissingOpeningTag(expected string, opts ...Option) *Error {
	e := &Error{Tag: TagMissingOpeningTag, Element: expected}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidChildElement(child, within string, opts ...Option) *Error {
	e := &Error{Tag: TagUnknownElement, Element: child, Within: within}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidClosingTag(found, want string, opts ...Option) *Error {
	e := &Error{Tag: TagInvalidClosingTag, Element: found, Within: want}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingClosingTag(element string, opts ...Option) *Error {
	e := &Error{Tag: TagMissingClosingTag, Element: element}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NoContent(element string, opts ...Option) *Error {
	e := &Error{Tag: TagNoContent, Element: element}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingAttribute(attribute, element string, opts ...Option) *Error {
	e := &Error{Tag: TagMissingAttribute, Attribute: attribute, Element: element}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func BadAttribute(attribute, element string, opts ...Option) *Error {
	e := &Error{Tag: TagBadAttribute, Attribute: attribute, Element: element}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func TokenError(within string, cause error, opts ...Option) *Error {
	e := &Error{Tag: TagTokenError, Within: within, Cause: cause}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
