package admin

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/curkin/adminconsole/internal/platform/config"
	"github.com/curkin/adminconsole/internal/platform/otel"
)

// errEnvironmentInvalid is returned by the env command when a required
// variable is missing.
var errEnvironmentInvalid = errors.New("environment validation failed")

type envVar struct {
	name        string
	description string
	example     string
	value       string
}

// checkEnvironment reports the resolved configuration against the
// variables it comes from. Secrets are masked.
func checkEnvironment(cfg Config, out io.Writer) error {
	required := []envVar{
		{name: EnvBaseURL, description: "Backend API base URL", example: "http://localhost:8080/api/v1", value: cfg.BaseURL},
	}
	optional := []envVar{
		{name: EnvUseAPIKey, description: "Use API key authentication", example: "false", value: boolValue(cfg.UseAPIKey)},
		{name: EnvAPIKey, description: "API key for authentication", example: "your-secure-api-key-here", value: config.MaskSecret(cfg.APIKey)},
		{name: EnvDBPath, description: "Local credential database", example: "data/admin.db", value: cfg.DBPath},
		{name: EnvTimeout, description: "Per-request timeout", example: "30s", value: cfg.Timeout.String()},
		{name: EnvOutput, description: "Output format", example: "table", value: cfg.Output},
		{name: EnvLang, description: "Console language", example: "pt-BR", value: cfg.Lang},
		{name: otel.EndpointEnv, description: "OTLP trace collector endpoint", example: "localhost:4318", value: lookupValue(nil, otel.EndpointEnv)},
	}

	fmt.Fprintln(out, "Validating admin console environment configuration...")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Required environment variables:")
	missing := false
	for _, v := range required {
		if strings.TrimSpace(v.value) == "" {
			missing = true
			fmt.Fprintf(out, "  [missing] %s: %s\n", v.name, v.description)
			fmt.Fprintf(out, "            Example: %s=%s\n", v.name, v.example)
			continue
		}
		fmt.Fprintf(out, "  [ok]      %s: %s\n", v.name, v.value)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Optional environment variables:")
	for _, v := range optional {
		if strings.TrimSpace(v.value) == "" {
			fmt.Fprintf(out, "  [unset]   %s: %s\n", v.name, v.description)
			fmt.Fprintf(out, "            Example: %s=%s\n", v.name, v.example)
			continue
		}
		fmt.Fprintf(out, "  [ok]      %s: %s\n", v.name, v.value)
	}
	if cfg.UseAPIKey && strings.TrimSpace(cfg.APIKey) == "" {
		fmt.Fprintf(out, "  [warning] %s is true but %s is empty; login tokens will be used\n", EnvUseAPIKey, EnvAPIKey)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	if missing {
		fmt.Fprintln(out, "Environment validation failed.")
		fmt.Fprintf(out, "Set %s (or pass -base-url) and run `admin env` again.\n", EnvBaseURL)
		return errEnvironmentInvalid
	}
	fmt.Fprintln(out, "Environment validation passed.")
	return nil
}

func boolValue(v bool) string {
	if !v {
		return ""
	}
	return strconv.FormatBool(v)
}
