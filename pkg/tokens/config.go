package tokens

import (
	"strconv"
	"time"

	"github.com/hashgraph-online/token-lifecycle-go/pkg/shared"
)

// Config is everything a run reads from its environment.
type Config struct {
	Operator shared.OperatorConfig
	Token    CreateTokenOptions

	// Zero values inherit the SDK defaults.
	RequestTimeout time.Duration
	MaxAttempts    int

	VerifyWithMirror bool
	VerifyTimeout    time.Duration
	MirrorBaseURL    string
	MirrorAPIKey     string

	LogLevel  string
	LogFormat string
}

// ConfigFromEnv reads the operator identity via shared.OperatorConfigFromEnv
// and the run settings from TOKEN_*, REQUEST_TIMEOUT, MAX_ATTEMPTS,
// VERIFY_WITH_MIRROR, VERIFY_TIMEOUT, MIRROR_BASE_URL, MIRROR_API_KEY,
// LOG_LEVEL and LOG_FORMAT. All failures are *ConfigError.
func ConfigFromEnv() (Config, error) {
	operator, err := shared.OperatorConfigFromEnv()
	if err != nil {
		return Config{}, &ConfigError{Err: err}
	}

	config := Config{
		Operator: operator,
		Token: CreateTokenOptions{
			Name:   shared.FirstNonEmptyEnv("TOKEN_NAME"),
			Symbol: shared.FirstNonEmptyEnv("TOKEN_SYMBOL"),
			Memo:   shared.FirstNonEmptyEnv("TOKEN_MEMO"),
		},
		MirrorBaseURL: shared.FirstNonEmptyEnv("MIRROR_BASE_URL"),
		MirrorAPIKey:  shared.FirstNonEmptyEnv("MIRROR_API_KEY"),
		LogLevel:      shared.FirstNonEmptyEnv("LOG_LEVEL"),
		LogFormat:     shared.FirstNonEmptyEnv("LOG_FORMAT"),
	}

	if raw := shared.FirstNonEmptyEnv("TOKEN_INITIAL_SUPPLY"); raw != "" {
		config.Token.InitialSupply, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, configError("invalid TOKEN_INITIAL_SUPPLY %q: %w", raw, err)
		}
		if config.Token.InitialSupply == 0 {
			return Config{}, configError("TOKEN_INITIAL_SUPPLY must be at least 1")
		}
	}
	if raw := shared.FirstNonEmptyEnv("TOKEN_DECIMALS"); raw != "" {
		decimals, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Config{}, configError("invalid TOKEN_DECIMALS %q: %w", raw, err)
		}
		config.Token.Decimals = uint(decimals)
	}
	if raw := shared.FirstNonEmptyEnv("REQUEST_TIMEOUT"); raw != "" {
		config.RequestTimeout, err = time.ParseDuration(raw)
		if err != nil || config.RequestTimeout < 0 {
			return Config{}, configError("invalid REQUEST_TIMEOUT %q", raw)
		}
	}
	if raw := shared.FirstNonEmptyEnv("MAX_ATTEMPTS"); raw != "" {
		config.MaxAttempts, err = strconv.Atoi(raw)
		if err != nil || config.MaxAttempts < 0 {
			return Config{}, configError("invalid MAX_ATTEMPTS %q", raw)
		}
	}
	if raw := shared.FirstNonEmptyEnv("VERIFY_WITH_MIRROR"); raw != "" {
		config.VerifyWithMirror, err = strconv.ParseBool(raw)
		if err != nil {
			return Config{}, configError("invalid VERIFY_WITH_MIRROR %q: %w", raw, err)
		}
	}
	if raw := shared.FirstNonEmptyEnv("VERIFY_TIMEOUT"); raw != "" {
		config.VerifyTimeout, err = time.ParseDuration(raw)
		if err != nil || config.VerifyTimeout < 0 {
			return Config{}, configError("invalid VERIFY_TIMEOUT %q", raw)
		}
	}

	return config, nil
}
