package model

// LaunchReport is a point-in-time view of the tracked launch state.
type LaunchReport struct {
	Scope   string `json:"scope,omitempty"`
	Backend string `json:"backend,omitempty"`

	IsFirstLaunchEver       bool `json:"is_first_launch_ever"`
	IsFirstLaunchForVersion bool `json:"is_first_launch_for_version"`
	IsFirstLaunchForBuild   bool `json:"is_first_launch_for_build"`

	CurrentVersion        string   `json:"current_version"`
	PreviousVersion       string   `json:"previous_version"`
	FirstInstalledVersion string   `json:"first_installed_version"`
	VersionHistory        []string `json:"version_history"`

	CurrentBuild        string   `json:"current_build"`
	PreviousBuild       string   `json:"previous_build"`
	FirstInstalledBuild string   `json:"first_installed_build"`
	BuildHistory        []string `json:"build_history"`
}
