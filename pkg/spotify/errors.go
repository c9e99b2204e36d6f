package spotify

import (
	"errors"
	"fmt"
)

// Predefined errors for matching with errors.Is.
var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("spotify: invalid configuration")

	// ErrAuthentication is matched by every *AuthenticationError.
	ErrAuthentication = errors.New("spotify: authentication failed")

	// ErrInvalidArgument is matched by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("spotify: invalid argument")
)

// ConfigurationError is returned when client credentials are missing.
type ConfigurationError struct {
	Field string // Name of the missing configuration field
}

// Error returns the error message.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("spotify: %s is required", e.Field)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// AuthenticationError is returned when the token exchange does not succeed.
//
// StatusCode carries the HTTP status returned by the accounts service.
// It is a 2xx code only when the response body did not contain a token.
type AuthenticationError struct {
	StatusCode int
	Message    string
}

// Error returns the error message.
func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("spotify: could not authenticate client, status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("spotify: could not authenticate client, status %d", e.StatusCode)
}

// Is reports whether target is ErrAuthentication.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// InvalidArgumentError is returned when a required call argument is missing.
type InvalidArgumentError struct {
	Argument string
}

// Error returns the error message.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("spotify: %s is required", e.Argument)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
