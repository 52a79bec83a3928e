package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/adapters/jwtauth"
	"github.com/m-mizutani/komainu/pkg/adapters/openai"
	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

// SDK selects and configures the AI SDK handle the guard fronts
type SDK struct {
	provider     string
	openaiAPIKey string
	sessionToken string
	jwtSecret    string
}

// Flags returns CLI flags for SDK configuration
func (x *SDK) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sdk",
			Category:    "sdk",
			Sources:     cli.EnvVars("KOMAINU_SDK"),
			Usage:       "SDK backend [openai|jwt]",
			Value:       "openai",
			Destination: &x.provider,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Category:    "sdk",
			Sources:     cli.EnvVars("KOMAINU_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Usage:       "OpenAI API key (sdk=openai)",
			Destination: &x.openaiAPIKey,
		},
		&cli.StringFlag{
			Name:        "session-token",
			Category:    "sdk",
			Sources:     cli.EnvVars("KOMAINU_SESSION_TOKEN"),
			Usage:       "Session token to validate (sdk=jwt)",
			Destination: &x.sessionToken,
		},
		&cli.StringFlag{
			Name:        "sdk-jwt-secret",
			Category:    "sdk",
			Sources:     cli.EnvVars("KOMAINU_JWT_SECRET"),
			Usage:       "Shared secret for session token verification (sdk=jwt)",
			Destination: &x.jwtSecret,
		},
	}
}

// LogValue returns the SDK configuration as a slog.Value for logging.
// Credentials are reported only by presence.
func (x SDK) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("provider", x.provider),
		slog.Bool("openai_api_key_configured", x.openaiAPIKey != ""),
		slog.Bool("session_token_configured", x.sessionToken != ""),
	)
}

// Configure builds the SDK client
func (x *SDK) Configure() (interfaces.SDKClient, error) {
	switch x.provider {
	case "openai":
		if x.openaiAPIKey == "" {
			return nil, goerr.New("openai-api-key is required", goerr.V("sdk", x.provider))
		}
		return openai.New(x.openaiAPIKey), nil

	case "jwt":
		if x.jwtSecret == "" {
			return nil, goerr.New("sdk-jwt-secret is required", goerr.V("sdk", x.provider))
		}
		return jwtauth.NewVerifier([]byte(x.jwtSecret)).Client(x.sessionToken), nil

	default:
		return nil, goerr.New("unknown SDK backend",
			goerr.V("sdk", x.provider),
			goerr.V("valid_backends", []string{"openai", "jwt"}),
		)
	}
}
