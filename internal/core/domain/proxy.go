package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// CacheKeySeparator joins the method and path of a cache key.
const CacheKeySeparator = "::"

// CacheKeyFunc derives the proxy cache key of a request.
type CacheKeyFunc func(method, path string) string

// MethodPathKey is the default cache key: "<METHOD>::<PATH>".
func MethodPathKey(method, path string) string {
	return method + CacheKeySeparator + path
}

// ProxyConfig configures the reverse proxy in front of the frontend.
type ProxyConfig struct {
	UpstreamOrigin   string
	CacheKey         CacheKeyFunc
	ExcludeRules     []ExcludeRule
	WebsocketEnabled bool
}

// UpstreamOrigin returns the origin the proxy forwards to for a frontend port.
func UpstreamOrigin(port uint16) string {
	return "http://localhost:" + strconv.Itoa(int(port))
}

// DefaultExcludePatterns lists the rules that keep mutating requests out of the cache.
var DefaultExcludePatterns = []string{"POST *", "PUT *", "DELETE *", "PATCH *"}

// ExcludeRule keeps matching requests out of the proxy cache.
// An empty Method matches every method.
type ExcludeRule struct {
	Method string
	Glob   string
}

// ParseExcludeRule parses "<METHOD> <path-glob>" or a bare "<path-glob>".
func ParseExcludeRule(raw string) (ExcludeRule, error) {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 1:
		return ExcludeRule{Glob: fields[0]}, nil
	case 2: //nolint:mnd // method and glob
		return ExcludeRule{Method: strings.ToUpper(fields[0]), Glob: fields[1]}, nil
	default:
		return ExcludeRule{}, zerr.With(ErrInvalidExcludeRule, "rule", raw)
	}
}

// ParseExcludeRules parses every pattern, stopping at the first invalid one.
func ParseExcludeRules(patterns []string) ([]ExcludeRule, error) {
	rules := make([]ExcludeRule, 0, len(patterns))
	for _, p := range patterns {
		r, err := ParseExcludeRule(p)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Matches reports whether the rule applies to the request.
func (r ExcludeRule) Matches(method, path string) bool {
	if r.Method != "" && !strings.EqualFold(r.Method, method) {
		return false
	}
	return MatchGlob(r.Glob, path)
}

// String renders the rule in its parseable form.
func (r ExcludeRule) String() string {
	if r.Method == "" {
		return r.Glob
	}
	return r.Method + " " + r.Glob
}

// MatchGlob reports whether s matches pattern, where '*' matches any run of
// bytes including '/'. Every other byte matches itself.
func MatchGlob(pattern, s string) bool {
	p, i := 0, 0
	star, mark := -1, 0

	for i < len(s) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			star = p
			mark = i
			p++
		case p < len(pattern) && pattern[p] == s[i]:
			p++
			i++
		case star >= 0:
			p = star + 1
			mark++
			i = mark
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
