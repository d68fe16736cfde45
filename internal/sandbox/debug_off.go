//go:build !sandboxdebug

package sandbox

const debugAssertions = false
