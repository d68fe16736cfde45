package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodedReport struct {
	SortedList struct {
		Values   []int           `json:"values" yaml:"values"`
		Rejected []int           `json:"rejected" yaml:"rejected"`
		Popped   []int           `json:"popped" yaml:"popped"`
		Bounds   *map[string]int `json:"bounds" yaml:"bounds"`
	} `json:"sorted_list" yaml:"sorted_list"`
	Stack        []string `json:"stack" yaml:"stack"`
	FrontInserts []string `json:"front_inserts" yaml:"front_inserts"`
	Journal      struct {
		Entries    []string `json:"entries" yaml:"entries"`
		References []string `json:"references" yaml:"references"`
	} `json:"journal" yaml:"journal"`
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSandboxDemo(t *testing.T) {

	t.Run("default configuration", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		xdg.Reload()

		outW := bytes.NewBuffer(nil)
		errW := bytes.NewBuffer(nil)

		statusCode := _main([]string{COMMAND_NAME}, outW, errW)
		require.Equal(t, 0, statusCode, errW.String())

		var report decodedReport
		require.NoError(t, json.Unmarshal(outW.Bytes(), &report))

		assert.Equal(t, []int{1, 4}, report.SortedList.Values)
		assert.Equal(t, []int{2}, report.SortedList.Rejected)
		assert.Equal(t, []int{9, 4}, report.SortedList.Popped)
		if assert.NotNil(t, report.SortedList.Bounds) {
			assert.Equal(t, map[string]int{"min": 1, "max": 4}, *report.SortedList.Bounds)
		}

		assert.Equal(t, []string{"ONE", "TWO"}, report.Stack)
		assert.Equal(t, []string{"c", "a", "b"}, report.FrontInserts)
		assert.Equal(t, []string{"first", "second"}, report.Journal.Entries)
		assert.Equal(t, []string{"first", "second"}, report.Journal.References)

		assert.Contains(t, errW.String(), "out of order value rejected")
	})

	t.Run("yaml output", func(t *testing.T) {
		path := writeConfig(t, "sorted_values: [3, 5]\njournal_entries: [x]\n")

		outW := bytes.NewBuffer(nil)
		errW := bytes.NewBuffer(nil)

		statusCode := _main([]string{COMMAND_NAME, "-config", path, "-format", "yaml"}, outW, errW)
		require.Equal(t, 0, statusCode, errW.String())

		var report decodedReport
		require.NoError(t, yaml.Unmarshal(outW.Bytes(), &report))

		assert.Equal(t, []int{3, 5}, report.SortedList.Values)
		assert.Empty(t, report.SortedList.Rejected)
		assert.Empty(t, report.Stack)
		assert.Equal(t, []string{"x"}, report.Journal.References)
	})

	t.Run("empty sorted list has no bounds", func(t *testing.T) {
		path := writeConfig(t, "sorted_values: [1]\npop_count: 3\n")

		outW := bytes.NewBuffer(nil)
		errW := bytes.NewBuffer(nil)

		statusCode := _main([]string{COMMAND_NAME, "-config", path}, outW, errW)
		require.Equal(t, 0, statusCode, errW.String())

		var report decodedReport
		require.NoError(t, json.Unmarshal(outW.Bytes(), &report))

		assert.Empty(t, report.SortedList.Values)
		assert.Equal(t, []int{1}, report.SortedList.Popped)
		assert.Nil(t, report.SortedList.Bounds)
		assert.Contains(t, errW.String(), "sorted list is empty")
	})

	t.Run("debug logs", func(t *testing.T) {
		path := writeConfig(t, "sorted_values: [1]\n")

		errW := bytes.NewBuffer(nil)
		statusCode := _main([]string{COMMAND_NAME, "-config", path, "-debug"}, bytes.NewBuffer(nil), errW)
		require.Equal(t, 0, statusCode, errW.String())

		assert.Contains(t, errW.String(), "demo configuration loaded")
		assert.Contains(t, errW.String(), "bounds updated")
		assert.Contains(t, errW.String(), "demo finished")
	})

	t.Run("invalid configuration", func(t *testing.T) {
		path := writeConfig(t, "pop_count: -2\n")

		outW := bytes.NewBuffer(nil)
		statusCode := _main([]string{COMMAND_NAME, "-config", path}, outW, bytes.NewBuffer(nil))
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
		assert.Empty(t, outW.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		errW := bytes.NewBuffer(nil)
		statusCode := _main([]string{COMMAND_NAME, "-format", "toml"}, bytes.NewBuffer(nil), errW)
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
		assert.Contains(t, errW.String(), "unknown format 'toml'")
	})

	t.Run("report cannot be written", func(t *testing.T) {
		path := writeConfig(t, "sorted_values: [1]\n")

		errW := bytes.NewBuffer(nil)
		statusCode := _main([]string{COMMAND_NAME, "-config", path}, failingWriter{}, errW)
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
		assert.Contains(t, errW.String(), "failed to write the report")
	})

	t.Run("unknown flag", func(t *testing.T) {
		statusCode := _main([]string{COMMAND_NAME, "-x"}, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
		assert.Equal(t, ERROR_STATUS_CODE, statusCode)
	})
}
