package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/frame/internal/core/domain"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, domain.Development, domain.Classify(false))
	assert.Equal(t, domain.Production, domain.Classify(true))
}

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name     string
		env      domain.Environment
		compiled bool
		want     domain.DeliveryStrategy
	}{
		{"development ignores compiled flag", domain.Development, true, domain.DevServer},
		{"development", domain.Development, false, domain.DevServer},
		{"production compiled", domain.Production, true, domain.NativeBinary},
		{"production script", domain.Production, false, domain.HostedScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SelectStrategy(tt.env, tt.compiled))
		})
	}
}

func TestDeliveryStrategy_Properties(t *testing.T) {
	assert.False(t, domain.DevServer.UsesEmbeddedAssets())
	assert.True(t, domain.NativeBinary.UsesEmbeddedAssets())
	assert.True(t, domain.HostedScript.UsesEmbeddedAssets())

	assert.Equal(t, "dev-frontend", domain.DevServer.LogTarget())
	assert.Equal(t, "frontend", domain.NativeBinary.LogTarget())
	assert.Equal(t, "frontend", domain.HostedScript.LogTarget())

	assert.Equal(t, "hosted-script", domain.HostedScript.String())
	assert.Equal(t, "production", domain.Production.String())
}
