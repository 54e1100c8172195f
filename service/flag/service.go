package flag

import (
	"github.com/spf13/pflag"
	"github.com/thirukguru/version-tracker/model"
	"github.com/thirukguru/version-tracker/service/settings"
)

// NewService creates a new flag service whose defaults come from the environment.
func NewService(defaults settings.Settings) Service {
	return &service{defaults: defaults}
}

// GetParsedFlags parses and returns the top-level command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	read := s.register(pflag.CommandLine)
	pflag.Parse()
	return read(), nil
}

// ParseSubcommand parses args for a subcommand and returns the remaining positional args.
func (s *service) ParseSubcommand(name string, args []string) (model.Flags, []string, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	read := s.register(fs)
	if err := fs.Parse(args); err != nil {
		return model.Flags{}, nil, err
	}
	return read(), fs.Args(), nil
}

func (s *service) register(fs *pflag.FlagSet) func() model.Flags {
	d := s.defaults

	version := fs.BoolP("version", "v", false, "Show version information")
	backend := fs.StringP("backend", "b", d.Backend, "Settings backend (sqlite, memory, dynamodb, redis)")
	dbPath := fs.String("db-path", d.DBPath, "Custom SQLite database path (default ~/.version-tracker/settings.db)")
	scope := fs.StringP("scope", "s", d.Scope, "Installation scope that namespaces the stored histories")
	appVersion := fs.String("app-version", "", "Track this version instead of the binary's own")
	appBuild := fs.String("app-build", "", "Track this build instead of the binary's own")
	output := fs.StringP("output", "o", d.Output, "Output format (table or json)")
	outputFile := fs.StringP("output-file", "f", "", "Write the report to this file instead of stdout")
	table := fs.String("table", d.Table, "DynamoDB table name")
	redisURL := fs.String("redis-url", d.RedisURL, "Redis URL for the redis backend")
	profile := fs.StringP("profile", "p", "", "AWS profile to use")
	region := fs.StringP("region", "r", "", "AWS region to use")
	endpoint := fs.String("endpoint", d.Endpoint, "DynamoDB endpoint override (uses local credentials)")
	logLevel := fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", d.LogFormat, "Log format (text or json)")

	return func() model.Flags {
		return model.Flags{
			Version:    *version,
			Backend:    *backend,
			DBPath:     *dbPath,
			Scope:      *scope,
			AppVersion: *appVersion,
			AppBuild:   *appBuild,
			Output:     *output,
			OutputFile: *outputFile,
			Table:      *table,
			RedisURL:   *redisURL,
			Profile:    *profile,
			Region:     *region,
			Endpoint:   *endpoint,
			LogLevel:   *logLevel,
			LogFormat:  *logFormat,
		}
	}
}
