package app

import "go.trai.ch/frame/internal/core/domain"

// NewProxyConfig returns the proxy configuration for a frontend on port:
// mutating requests bypass the cache and websockets are bridged only in
// development.
func NewProxyConfig(port uint16, env domain.Environment) (domain.ProxyConfig, error) {
	rules, err := domain.ParseExcludeRules(domain.DefaultExcludePatterns)
	if err != nil {
		return domain.ProxyConfig{}, err
	}
	return domain.ProxyConfig{
		UpstreamOrigin:   domain.UpstreamOrigin(port),
		CacheKey:         domain.MethodPathKey,
		ExcludeRules:     rules,
		WebsocketEnabled: env == domain.Development,
	}, nil
}
