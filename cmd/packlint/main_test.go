package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePack(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const cleanPack = `[
	{"id":"olive-oil","name":"Olive Oil","kcal100":884,"protein100":0,"carbs100":0,"fat100":100,"units":[{"label":"1 tbsp","grams":13.5}]},
	{"id":"flour","name":"All-Purpose Flour","kcal100":364,"protein100":10.3,"carbs100":76.3,"fat100":1,"units":[{"label":"1 cup","grams":125}]}
]`

const dirtyPack = `[
	{"id":"a","name":"Olive Oil","kcal100":884,"protein100":0,"carbs100":0,"fat100":100,"units":[{"label":"1 tbsp","grams":13.6}]},
	{"id":"b","name":"OLIVE OIL","kcal100":0,"protein100":0,"carbs100":0,"fat100":0,"units":[]}
]`

func TestRun_Clean(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	code := run([]string{writePack(t, cleanPack)}, 1, &stdout, &stderr)

	assert.Equal(t, exitClean, code)
	assert.Empty(t, stdout.String())
}

func TestRun_Issues(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	code := run([]string{writePack(t, dirtyPack)}, 1, &stdout, &stderr)

	assert.Equal(t, exitIssues, code)
	out := stdout.String()
	assert.Contains(t, out, "[zero-macros] b")
	assert.Contains(t, out, "[missing-units] b")
	assert.Contains(t, out, "[duplicate-name]")
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-json", writePack(t, dirtyPack)}, 1, &stdout, &stderr)
	require.Equal(t, exitIssues, code)

	var issues []service.Issue
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &issues))
	assert.Len(t, issues, 3)
}

func TestRun_SchemaError(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	code := run([]string{writePack(t, `[{"id":"a"}]`)}, 1, &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "items[0].name: required")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	code := run([]string{filepath.Join(t.TempDir(), "missing.json")}, 1, &stdout, &stderr)

	assert.Equal(t, exitError, code)
}

func TestRun_TooManyArgs(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitError, run([]string{"a.json", "b.json"}, 1, &stdout, &stderr))
}
