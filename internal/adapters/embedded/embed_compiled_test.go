//go:build release && compiled

package embedded_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frame/internal/adapters/embedded"
	"go.trai.ch/frame/internal/core/domain"
)

func TestNew_CompiledReleaseEmbedsExecutable(t *testing.T) {
	store, err := embedded.New()
	require.NoError(t, err)

	a, err := store.ExecutableImage()
	require.NoError(t, err)
	assert.Equal(t, domain.ArtifactNativeExecutable, a.Kind)
	assert.NotEmpty(t, a.Bytes)

	_, err = store.ScriptBundle()
	assert.ErrorContains(t, err, domain.ErrArtifactMissing.Error())
}
