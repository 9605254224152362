package ratelimit

import "strings"

// matchEndpoint matches a request path and method to an endpoint
// configuration. Returns nil when no configuration matches, in which case
// the default limit applies.
func matchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Path == path && ec.Method == method {
			return ec
		}
	}

	// Prefix match for paths ending with "/".
	for i := range configs {
		ec := &configs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}
	return nil
}
