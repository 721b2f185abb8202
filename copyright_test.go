package gpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treklog/gpx/gpxerr"
)

func TestConsumeCopyright(t *testing.T) {
	t.Run("full copyright", func(t *testing.T) {
		copyright, err := consumeCopyright(newTestContext(
			`<copyright author='OpenStreetMap contributors'><year>2020</year><license>https://www.openstreetmap.org/copyright</license></copyright>`))
		require.NoError(t, err)

		assert.Equal(t, "OpenStreetMap contributors", copyright.Author)
		require.NotNil(t, copyright.Year)
		assert.Equal(t, 2020, *copyright.Year)
		assert.Equal(t, "https://www.openstreetmap.org/copyright", copyright.License)
	})

	t.Run("barebones", func(t *testing.T) {
		copyright, err := consumeCopyright(newTestContext(`<copyright author='pelmers'></copyright>`))
		require.NoError(t, err)

		assert.Equal(t, "pelmers", copyright.Author)
		assert.Nil(t, copyright.Year)
		assert.Equal(t, "", copyright.License)
	})

	t.Run("unparsable year degrades to absent", func(t *testing.T) {
		copyright, err := consumeCopyright(newTestContext(
			`<copyright author='X'><year>MMXX</year></copyright>`))
		require.NoError(t, err)

		assert.Equal(t, "X", copyright.Author)
		assert.Nil(t, copyright.Year)
	})

	t.Run("unknown child element", func(t *testing.T) {
		_, err := consumeCopyright(newTestContext(`<copyright><baz>1</baz></copyright>`))
		require.Error(t, err)
		assert.True(t, gpxerr.HasTag(err, gpxerr.TagUnknownElement))
		assert.Contains(t, err.Error(), "<baz>")
		assert.Contains(t, err.Error(), "<copyright>")
	})
}
