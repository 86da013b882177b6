package gateway

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a required configuration value that is absent.
// It is always raised before any network activity.
type ConfigurationError struct {
	// Key is the missing configuration key. It is meant for logs and must
	// never be echoed back to end users.
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Key)
}

// ErrInvalidResponse is wrapped by a *NetworkError when a successful gateway
// response body is not JSON.
var ErrInvalidResponse = errors.New("gateway response is not valid JSON")

// NetworkError reports a transport-level failure reaching the gateway.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("gateway request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// GatewayError reports a client or server error status from the gateway.
type GatewayError struct {
	StatusCode int
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned HTTP %d", e.StatusCode)
}

// IsConfigurationError reports whether err is or wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
