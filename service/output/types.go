package output

import (
	"io"

	"github.com/thirukguru/version-tracker/model"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing reports
type Renderer interface {
	DrawLaunchTable(w io.Writer, report model.LaunchReport)
	DrawHistoryTable(w io.Writer, report model.LaunchReport)
	OutputJSON(w io.Writer, v any) error
}

// service is the internal implementation
type service struct {
	format   Format
	path     string
	w        io.Writer
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderLaunch(report model.LaunchReport) error
	RenderHistory(report model.LaunchReport) error
}
