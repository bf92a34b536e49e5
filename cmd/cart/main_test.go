package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, store string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("CART_CURRENCY", "USD")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{"--store", store, "--log-level", "error"}, args...), &stdout, &stderr)
	return stdout.String(), err
}

func TestCartPersistsAcrossRuns(t *testing.T) {
	store := filepath.Join(t.TempDir(), "cart.db")

	out, err := runCLI(t, store, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "cart is empty")

	_, err = runCLI(t, store, "add", "1")
	require.NoError(t, err)
	_, err = runCLI(t, store, "add", "1")
	require.NoError(t, err)
	_, err = runCLI(t, store, "add", "2")
	require.NoError(t, err)

	out, err = runCLI(t, store, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Lukather")
	assert.Contains(t, out, "SRV")
	assert.Contains(t, out, "TOTAL")
	assert.Regexp(t, `Lukather\s+2`, out)

	out, err = runCLI(t, store, "dec", "1")
	require.NoError(t, err)
	assert.Regexp(t, `Lukather\s+1`, out)

	out, err = runCLI(t, store, "remove", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "Lukather")

	out, err = runCLI(t, store, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "cart is empty")
}

func TestIncreaseStopsAtCap(t *testing.T) {
	store := filepath.Join(t.TempDir(), "cart.db")

	_, err := runCLI(t, store, "add", "3")
	require.NoError(t, err)

	var out string
	for i := 0; i < 6; i++ {
		out, err = runCLI(t, store, "inc", "3")
		require.NoError(t, err)
	}
	assert.Regexp(t, `Borland\s+5`, out)
}

func TestCatalogCommand(t *testing.T) {
	out, err := runCLI(t, filepath.Join(t.TempDir(), "cart.db"), "catalog")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 13)
	assert.Contains(t, lines[0], "NAME")
}

func TestCommandErrors(t *testing.T) {
	store := filepath.Join(t.TempDir(), "cart.db")

	t.Run("unknown product -> error", func(t *testing.T) {
		_, err := runCLI(t, store, "add", "999")
		assert.ErrorContains(t, err, "not in the catalog")
	})

	t.Run("non-numeric id -> error", func(t *testing.T) {
		_, err := runCLI(t, store, "inc", "abc")
		assert.ErrorContains(t, err, "not a number")
	})

	t.Run("missing arg -> error", func(t *testing.T) {
		_, err := runCLI(t, store, "remove")
		assert.Error(t, err)
	})

	t.Run("bad currency -> error", func(t *testing.T) {
		_, err := runCLI(t, store, "--currency", "NOPE", "show")
		assert.Error(t, err)
	})
}
