//go:build release && !compiled

package embedded_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frame/internal/adapters/embedded"
	"go.trai.ch/frame/internal/core/domain"
)

func TestNew_ScriptReleaseEmbedsBundle(t *testing.T) {
	store, err := embedded.New()
	require.NoError(t, err)

	a, err := store.ScriptBundle()
	require.NoError(t, err)
	assert.Equal(t, domain.ArtifactScript, a.Kind)
	assert.Equal(t, store.Manifest().Runtime, a.Interpreter)
	assert.NotEmpty(t, a.Bytes)

	_, err = store.ExecutableImage()
	assert.ErrorContains(t, err, domain.ErrArtifactMissing.Error())
}
