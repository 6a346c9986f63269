package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLanding(t *testing.T) {
	landing, err := Landing()
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "music", "design"}, landing.Rotator)
	assert.NotEmpty(t, landing.Experience)
	assert.NotEmpty(t, landing.Tools)
	assert.NotEmpty(t, landing.LinksAndReferences)
	assert.Equal(t, "sl1ck", landing.Music.Alias)
	assert.Equal(t, []string{"Hi,", "I'm", "Håkon"}, TitleWords(landing))
}

func TestParseValidation(t *testing.T) {
	_, err := Parse([]byte("header: {text: no title}"))
	assert.Error(t, err)

	_, err = Parse([]byte("header: {title: Hi}\nlinks_and_references:\n  - title: GitHub\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("header: [broken"))
	assert.Error(t, err)
}
