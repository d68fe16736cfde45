package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
)

const (
	APP_NAME = "sandboxvec"

	DEMO_CONFIG_FILE_NAME = "demo.yaml"
	DEMO_CONFIG_RELPATH   = APP_NAME + "/" + DEMO_CONFIG_FILE_NAME
	MAX_DEMO_POP_COUNT    = 1_000
)

var (
	ErrNegativePopCount = errors.New("pop_count should not be negative")
	ErrTooManyPops      = fmt.Errorf("pop_count should not exceed %d", MAX_DEMO_POP_COUNT)

	FORCE_COLOR           bool
	TERM_256COLOR_CAPABLE bool
	NO_COLOR              bool
	SHOULD_COLORIZE       bool
)

func init() {
	targetSpecificInit()
}

// DemoConfig is the input of the sandboxdemo command.
type DemoConfig struct {
	// values pushed in order to the sorted list, out of order values are rejected.
	SortedValues []int `yaml:"sorted_values"`

	// number of values popped from the sorted list after all pushes.
	PopCount int `yaml:"pop_count"`

	StackValues     []string `yaml:"stack_values"`
	FrontInsertions []string `yaml:"front_insertions"`
	JournalEntries  []string `yaml:"journal_entries"`
}

func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		SortedValues:    []int{1, 4, 4, 2, 9},
		PopCount:        2,
		StackValues:     []string{"one", "two"},
		FrontInsertions: []string{"a", "b", "c"},
		JournalEntries:  []string{"first", "second"},
	}
}

func (c DemoConfig) Validate() error {
	if c.PopCount < 0 {
		return ErrNegativePopCount
	}
	if c.PopCount > MAX_DEMO_POP_COUNT {
		return ErrTooManyPops
	}
	return nil
}

// LoadDemoConfig reads the demo configuration at path. If path is empty the file is searched
// in the XDG config directories, the default configuration is returned if it is not found.
// The path of the loaded file is returned, it is empty if the default configuration is used.
func LoadDemoConfig(path string) (DemoConfig, string, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(DEMO_CONFIG_RELPATH)
		if err != nil {
			return DefaultDemoConfig(), "", nil
		}
		path = found
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DemoConfig{}, "", fmt.Errorf("demo config %s does not exist", path)
		}
		return DemoConfig{}, "", fmt.Errorf("failed to read the demo config: %w", err)
	}

	var cfg DemoConfig
	if err := yaml.UnmarshalWithOptions(content, &cfg, yaml.DisallowUnknownField()); err != nil {
		return DemoConfig{}, "", fmt.Errorf("invalid demo config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return DemoConfig{}, "", fmt.Errorf("invalid demo config %s: %w", path, err)
	}

	return cfg, path, nil
}
