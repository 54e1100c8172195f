// Package output provides a service for rendering launch reports to the console.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thirukguru/version-tracker/model"
)

// NewService creates a new output service with the specified format.
// An empty path writes to stdout.
func NewService(format, path string) Service {
	return newService(format, path, os.Stdout, &realRenderer{})
}

func newService(format, path string, w io.Writer, r Renderer) *service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}
	return &service{format: f, path: path, w: w, renderer: r}
}

func (s *service) RenderLaunch(report model.LaunchReport) error {
	return s.write(func(w io.Writer) error {
		if s.format == FormatJSON {
			return s.renderer.OutputJSON(w, report)
		}
		s.renderer.DrawLaunchTable(w, report)
		return nil
	})
}

func (s *service) RenderHistory(report model.LaunchReport) error {
	return s.write(func(w io.Writer) error {
		if s.format == FormatJSON {
			return s.renderer.OutputJSON(w, historyJSON{
				Scope:    report.Scope,
				Versions: report.VersionHistory,
				Builds:   report.BuildHistory,
			})
		}
		s.renderer.DrawHistoryTable(w, report)
		return nil
	})
}

type historyJSON struct {
	Scope    string   `json:"scope,omitempty"`
	Versions []string `json:"versions"`
	Builds   []string `json:"builds"`
}

func (s *service) write(render func(io.Writer) error) error {
	if s.path == "" {
		return render(s.w)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
