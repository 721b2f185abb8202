package gpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treklog/gpx/gpxerr"
)

func TestConsumeString(t *testing.T) {
	t.Run("simple string", func(t *testing.T) {
		got, err := consumeString(newTestContext("<string>hello world</string>"), "string", false)
		require.NoError(t, err)
		assert.Equal(t, "hello world", got)
	})

	t.Run("cdata content", func(t *testing.T) {
		got, err := consumeString(newTestContext("<desc><![CDATA[a <b> c]]></desc>"), "desc", false)
		require.NoError(t, err)
		assert.Equal(t, "a <b> c", got)
	})

	t.Run("no markup inside leaf", func(t *testing.T) {
		_, err := consumeString(newTestContext("<foo>bar<baz></baz></foo>"), "foo", false)
		assert.True(t, gpxerr.HasTag(err, gpxerr.TagUnknownElement))
	})

	t.Run("missing starting tag", func(t *testing.T) {
		_, err := consumeString(newTestContext("bar</foo>"), "foo", false)
		assert.Error(t, err)
	})

	t.Run("missing ending tag", func(t *testing.T) {
		_, err := consumeString(newTestContext("<foo>bar"), "foo", false)
		assert.Error(t, err)
	})

	t.Run("empty not allowed", func(t *testing.T) {
		_, err := consumeString(newTestContext("<foo></foo>"), "foo", false)
		assert.True(t, gpxerr.HasTag(err, gpxerr.TagNoContent))
	})

	t.Run("empty allowed", func(t *testing.T) {
		got, err := consumeString(newTestContext("<foo></foo>"), "foo", true)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("empty allowed via self-closing tag", func(t *testing.T) {
		got, err := consumeString(newTestContext("<foo/>"), "foo", true)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("mismatched ending tag", func(t *testing.T) {
		_, err := consumeString(newTestContext("<foo></foobar>"), "foo", false)
		assert.Error(t, err)
	})
}
