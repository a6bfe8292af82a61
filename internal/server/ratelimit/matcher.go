package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the tier for a request path and method, or nil when
// only the global default applies. Configured paths ending in "/" match as
// prefixes, so "/api/resume/" covers "/api/resume/{id}".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes must never be throttled.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
