package constants

import (
	"strings"

	"github.com/kerimovok/go-pkg-utils/config"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// ConfigPath is the YAML configuration file read at startup.
const ConfigPath = "config/portfolio.yaml"

var EnvValidationRules = []validator.ValidationRule{
	// Server validation
	{
		Variable: "PORT",
		Default:  "5000",
		Rule:     config.IsValidPort,
		Message:  "server port is required and must be a valid port number",
	},
	{
		Variable: "GO_ENV",
		Default:  "development",
		Rule:     func(v string) bool { return v == "development" || v == "production" },
		Message:  "GO_ENV must be either 'development' or 'production'",
	},
	{
		Variable: "BASE_URL",
		Default:  "http://localhost:5000",
		Rule:     func(v string) bool { return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") },
		Message:  "BASE_URL must be an absolute http(s) URL",
	},

	// Credential validation; a missing secret is a configuration error and
	// must abort startup rather than surface at request time
	{
		Variable: "JWT_SECRET",
		Rule:     func(v string) bool { return v != "" },
		Message:  "JWT secret is required",
	},
	{
		Variable: "ADMIN_EMAIL",
		Rule:     func(v string) bool { return strings.Contains(v, "@") },
		Message:  "admin email is required and must be a valid email address",
	},
	{
		Variable: "ADMIN_PASSWORD",
		Rule:     func(v string) bool { return v != "" },
		Message:  "admin password is required",
	},
}
