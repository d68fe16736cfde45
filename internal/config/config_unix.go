//go:build unix

package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

func targetSpecificInit() {
	// FORCE COLOR

	if s, ok := os.LookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	//NO_COLOR

	if s, ok := os.LookupEnv("NO_COLOR"); ok {
		NO_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	//TERM

	term := os.Getenv("TERM")
	if strings.Contains(term, "256color") {
		TERM_256COLOR_CAPABLE = true
	}

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || TERM_256COLOR_CAPABLE || termenv.EnvColorProfile() != termenv.Ascii)
}
