package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestMethodPathKey(t *testing.T) {
	assert.Equal(t, "GET::/api/ping", domain.MethodPathKey("GET", "/api/ping"))
}

func TestUpstreamOrigin(t *testing.T) {
	assert.Equal(t, "http://localhost:41234", domain.UpstreamOrigin(41234))
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"*", "/", true},
		{"*", "/api/item/1", true},
		{"*", "", true},
		{"/api/*", "/api/item", true},
		{"/api/*", "/api/", true},
		{"/api/*", "/apix", false},
		{"/api/*/edit", "/api/item/7/edit", true},
		{"/api/*/edit", "/api/item/7", false},
		{"*.js", "/_app/entry.js", true},
		{"*.js", "/_app/entry.css", false},
		{"/exact", "/exact", true},
		{"/exact", "/exact/", false},
		{"**", "/x", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MatchGlob(tt.pattern, tt.s))
		})
	}
}

func TestParseExcludeRules_Defaults(t *testing.T) {
	rules, err := domain.ParseExcludeRules(domain.DefaultExcludePatterns)
	require.NoError(t, err)
	require.Len(t, rules, 4)

	excluded := func(method, path string) bool {
		for _, r := range rules {
			if r.Matches(method, path) {
				return true
			}
		}
		return false
	}

	assert.True(t, excluded("POST", "/api/item"))
	assert.True(t, excluded("PUT", "/"))
	assert.True(t, excluded("DELETE", "/api/item/1"))
	assert.True(t, excluded("PATCH", "/api/item/1"))
	assert.True(t, excluded("post", "/api/item"))
	assert.False(t, excluded("GET", "/api/ping"))
	assert.False(t, excluded("HEAD", "/"))

	for i, raw := range domain.DefaultExcludePatterns {
		assert.Equal(t, raw, rules[i].String())
	}
}

func TestParseExcludeRule(t *testing.T) {
	t.Run("bare glob matches any method", func(t *testing.T) {
		r, err := domain.ParseExcludeRule("/api/*")
		require.NoError(t, err)
		assert.True(t, r.Matches("GET", "/api/x"))
		assert.True(t, r.Matches("POST", "/api/x"))
		assert.False(t, r.Matches("GET", "/x"))
	})

	t.Run("method is normalized", func(t *testing.T) {
		r, err := domain.ParseExcludeRule("get /health")
		require.NoError(t, err)
		assert.Equal(t, "GET", r.Method)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "GET /a /b"} {
			_, err := domain.ParseExcludeRule(raw)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidExcludeRule.Error())

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, raw, zErr.Metadata()["rule"])
		}
	})
}
