package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/thirukguru/version-tracker/model"
)

type realRenderer struct{}

func (r *realRenderer) DrawLaunchTable(w io.Writer, report model.LaunchReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Version Tracking")
	t.AppendHeader(table.Row{"Field", "Value"})
	if report.Scope != "" || report.Backend != "" {
		t.AppendRow(table.Row{"Scope", report.Scope})
		t.AppendRow(table.Row{"Backend", report.Backend})
		t.AppendSeparator()
	}
	t.AppendRows([]table.Row{
		{"IsFirstLaunchEver", report.IsFirstLaunchEver},
		{"IsFirstLaunchForVersion", report.IsFirstLaunchForVersion},
		{"IsFirstLaunchForBuild", report.IsFirstLaunchForBuild},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"CurrentVersion", report.CurrentVersion},
		{"PreviousVersion", report.PreviousVersion},
		{"FirstInstalledVersion", report.FirstInstalledVersion},
		{"VersionHistory", bracketed(report.VersionHistory)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"CurrentBuild", report.CurrentBuild},
		{"PreviousBuild", report.PreviousBuild},
		{"FirstInstalledBuild", report.FirstInstalledBuild},
		{"BuildHistory", bracketed(report.BuildHistory)},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawHistoryTable prints versions and builds side by side, oldest first.
// The two histories grow independently, so rows do not pair a version with a build.
func (r *realRenderer) DrawHistoryTable(w io.Writer, report model.LaunchReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Version", "Build"})

	n := max(len(report.VersionHistory), len(report.BuildHistory))
	for i := 0; i < n; i++ {
		t.AppendRow(table.Row{i + 1, at(report.VersionHistory, i), at(report.BuildHistory, i)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func (r *realRenderer) OutputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func bracketed(items []string) string {
	return "[ " + strings.Join(items, ", ") + " ]"
}

func at(items []string, i int) string {
	if i < len(items) {
		return items[i]
	}
	return ""
}
