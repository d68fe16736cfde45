package testconfig

import (
	"os"
	"strconv"
	"testing"
)

const PARALLEL_TESTS_ENV_VAR = "SANDBOXVEC_PARALLEL_TESTS"

var (
	PARALLELIZE_SAME_PKG_TESTS = false
)

func init() {
	if enabled, err := strconv.ParseBool(os.Getenv(PARALLEL_TESTS_ENV_VAR)); err == nil {
		PARALLELIZE_SAME_PKG_TESTS = enabled
	}
}

// AllowParallelization marks the test as parallel if same package tests are allowed to
// run in parallel, see PARALLEL_TESTS_ENV_VAR.
func AllowParallelization(t *testing.T) {
	if PARALLELIZE_SAME_PKG_TESTS {
		t.Parallel()
	}
}
