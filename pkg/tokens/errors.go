package tokens

import (
	"errors"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// ErrInvalidState is returned when a request is used out of lifecycle order,
// for example signed before it is frozen.
var ErrInvalidState = errors.New("invalid request state")

// StatusError reports a transaction the network answered with anything other
// than SUCCESS, either at precheck or in its receipt.
type StatusError struct {
	Operation     string
	Status        hedera.Status
	TransactionID string
}

func (e *StatusError) Error() string {
	if e.TransactionID == "" {
		return fmt.Sprintf("%s failed with status %s", e.Operation, e.Status.String())
	}
	return fmt.Sprintf("%s failed with status %s (transaction %s)", e.Operation, e.Status.String(), e.TransactionID)
}

// IsStatus reports whether err carries the given network status.
func IsStatus(err error, status hedera.Status) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == status
}

// ConfigError wraps failures to read or parse the run configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(format string, args ...any) error {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}

// Process exit codes returned by ExitCode.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitConfig  = 2
)

// ExitCode maps the outcome of a run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return ExitConfig
	}
	return ExitFailure
}
