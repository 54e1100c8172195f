package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/version-tracker/model"
)

func sampleReport() model.LaunchReport {
	return model.LaunchReport{
		Scope:                   "default",
		Backend:                 "sqlite",
		IsFirstLaunchForVersion: true,
		IsFirstLaunchForBuild:   true,
		CurrentVersion:          "1.1.0.0",
		PreviousVersion:         "1.0.0.0",
		FirstInstalledVersion:   "1.0.0.0",
		VersionHistory:          []string{"1.0.0.0", "1.1.0.0"},
		CurrentBuild:            "110",
		PreviousBuild:           "100",
		FirstInstalledBuild:     "100",
		BuildHistory:            []string{"100", "105", "110"},
	}
}

func TestRenderLaunchTable(t *testing.T) {
	var buf bytes.Buffer
	svc := newService("table", "", &buf, &realRenderer{})

	require.NoError(t, svc.RenderLaunch(sampleReport()))

	out := buf.String()
	for _, want := range []string{
		"IsFirstLaunchEver", "IsFirstLaunchForVersion", "IsFirstLaunchForBuild",
		"PreviousVersion", "FirstInstalledBuild",
		"[ 1.0.0.0, 1.1.0.0 ]", "[ 100, 105, 110 ]", "sqlite",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderLaunchJSON(t *testing.T) {
	var buf bytes.Buffer
	svc := newService("json", "", &buf, &realRenderer{})

	require.NoError(t, svc.RenderLaunch(sampleReport()))

	var got model.LaunchReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
}

func TestRenderHistoryTable(t *testing.T) {
	var buf bytes.Buffer
	svc := newService("table", "", &buf, &realRenderer{})

	require.NoError(t, svc.RenderHistory(sampleReport()))
	assert.Contains(t, buf.String(), "105")
	assert.Contains(t, buf.String(), "VERSION")
}

func TestRenderHistoryJSON(t *testing.T) {
	var buf bytes.Buffer
	svc := newService("json", "", &buf, &realRenderer{})

	require.NoError(t, svc.RenderHistory(sampleReport()))

	var got historyJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"1.0.0.0", "1.1.0.0"}, got.Versions)
	assert.Equal(t, []string{"100", "105", "110"}, got.Builds)
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "launch.json")
	svc := NewService("json", path)

	require.NoError(t, svc.RenderLaunch(sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"current_version": "1.1.0.0"`)
}

type failingRenderer struct {
	realRenderer
}

func (f *failingRenderer) OutputJSON(w io.Writer, _ any) error {
	_, _ = io.WriteString(w, "{")
	return errors.New("encode failed")
}

func TestRenderToFileRenderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.json")

	err := newService("json", path, io.Discard, &failingRenderer{}).RenderLaunch(sampleReport())
	require.EqualError(t, err, "encode failed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{", string(data))

	require.NoError(t, NewService("json", path).RenderLaunch(sampleReport()))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
