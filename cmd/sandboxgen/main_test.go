package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedPositionsAreUpToDate(t *testing.T) {
	committed, err := os.ReadFile(filepath.Join("..", "..", "internal", "sandbox", "positions_gen.go"))
	require.NoError(t, err)

	generated, err := positionsFile("sandbox", DEFAULT_MAX_GUARANTEE).Bytes()
	require.NoError(t, err)

	assert.Equal(t, string(committed), string(generated), "run go generate ./internal/sandbox")
}

func TestSandboxgen(t *testing.T) {

	t.Run("base case", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "positions_gen.go")

		statusCode := _main([]string{COMMAND_NAME, "-out", out, "-max", "2", "-pkg", "p"}, bytes.NewBuffer(nil))
		require.Equal(t, 0, statusCode)

		content, err := os.ReadFile(out)
		require.NoError(t, err)

		assert.Contains(t, string(content), "package p\n")
		assert.Contains(t, string(content), "func Fwd1[T any, M nat.Nat](_ Handle[T, nat.S[nat.S[M]]]) Pos[nat.S[nat.S[M]]] {")
		assert.Contains(t, string(content), "return Pos[nat.S[nat.S[M]]]{reverse: true, shift: 1}")
		assert.NotContains(t, string(content), "Fwd2")
		assert.NotContains(t, string(content), "Rev3")
	})

	t.Run("missing output", func(t *testing.T) {
		errW := bytes.NewBuffer(nil)
		assert.Equal(t, ERROR_STATUS_CODE, _main([]string{COMMAND_NAME}, errW))
		assert.Contains(t, errW.String(), "missing -out")
	})

	t.Run("invalid maximum", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "positions_gen.go")
		assert.Equal(t, ERROR_STATUS_CODE, _main([]string{COMMAND_NAME, "-out", out, "-max", "0"}, bytes.NewBuffer(nil)))
	})
}
