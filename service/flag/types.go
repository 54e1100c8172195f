package flag

import (
	"github.com/thirukguru/version-tracker/model"
	"github.com/thirukguru/version-tracker/service/settings"
)

type service struct {
	defaults settings.Settings
}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags() (model.Flags, error)
	ParseSubcommand(name string, args []string) (model.Flags, []string, error)
}
