//go:build sandboxdebug

package sandbox

// the length of the sequence is compared to the guarantee at the entry of every operation.
const debugAssertions = true
