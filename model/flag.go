package model

// Flags represents the command line flags.
type Flags struct {
	Version    bool
	Backend    string
	DBPath     string
	Scope      string
	AppVersion string
	AppBuild   string
	Output     string
	OutputFile string
	Table      string
	RedisURL   string
	Profile    string
	Region     string
	Endpoint   string
	LogLevel   string
	LogFormat  string
}
