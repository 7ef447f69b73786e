package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Returns nil when no configuration matches, in which case
// the caller applies the default limit. Paths ending in "/" are treated as
// prefixes (e.g. "/profiles/" matches "/profiles/{id}").
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health and metrics probes are never limited.
	if method == "GET" && (path == "/health" || path == "/metrics") {
		return &EndpointConfig{Limit: 0}
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
