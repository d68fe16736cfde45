package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/inoxlang/sandboxvec/internal/config"
	"github.com/rs/zerolog"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "sandboxdemo"

	SOURCE_LOG_FIELD_NAME = "source"

	JSON_FORMAT = "json"
	YAML_FORMAT = "yaml"
)

func main() {
	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	flags := flag.NewFlagSet(COMMAND_NAME, flag.ContinueOnError)
	flags.SetOutput(errW)

	var configPath string
	var format string
	var debug bool

	flags.StringVar(&configPath, "config", "", "path of the demo configuration, searched in the XDG config directories if not set")
	flags.StringVar(&format, "format", JSON_FORMAT, "output format: json or yaml")
	flags.BoolVar(&debug, "debug", false, "log the debug messages of the use cases")

	if len(args) > 0 {
		args = args[1:]
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return ERROR_STATUS_CODE
	}

	if format != JSON_FORMAT && format != YAML_FORMAT {
		fmt.Fprintf(errW, "unknown format '%s', expected %s or %s\n", format, JSON_FORMAT, YAML_FORMAT)
		return ERROR_STATUS_CODE
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:     errW,
		NoColor: !config.SHOULD_COLORIZE,
	}).Level(level).With().Timestamp().Str(SOURCE_LOG_FIELD_NAME, COMMAND_NAME).Logger()

	cfg, loadedPath, err := config.LoadDemoConfig(configPath)
	if err != nil {
		logger.Err(err).Send()
		return ERROR_STATUS_CODE
	}

	if loadedPath == "" {
		logger.Debug().Msg("no demo configuration found, the default one is used")
	} else {
		logger.Debug().Str("path", loadedPath).Msg("demo configuration loaded")
	}

	report := runDemo(cfg, logger)

	var output []byte
	switch format {
	case JSON_FORMAT:
		output, err = json.MarshalIndent(report, "", "  ")
	case YAML_FORMAT:
		output, err = yaml.MarshalWithOptions(report, yaml.UseJSONMarshaler())
	}

	if err != nil {
		logger.Err(err).Msg("failed to marshal the report")
		return ERROR_STATUS_CODE
	}

	if len(output) > 0 && output[len(output)-1] != '\n' {
		output = append(output, '\n')
	}

	if _, err := outW.Write(output); err != nil {
		logger.Err(err).Msg("failed to write the report")
		return ERROR_STATUS_CODE
	}
	return 0
}
