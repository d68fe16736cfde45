//go:build !unix

package config

func targetSpecificInit() {
	SHOULD_COLORIZE = false
}
