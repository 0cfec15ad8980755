package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/staffing/pkg/nlp"
	"github.com/artem13815/staffing/pkg/staffing"
)

const sample = "CV - QA - Automation QA - Insider - tmura - R-12793\nОписание\n1. Индустрия FinTech\n3. Стек Java"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	out, err := run(t, "", "parse", path)
	require.NoError(t, err)

	var ex staffing.Extraction
	require.NoError(t, json.Unmarshal([]byte(out), &ex))
	assert.Equal(t, "R-12793", ex.Meta.RequestID)
	assert.Equal(t, []int{2}, ex.MissingItems)
}

func TestParseStdinStages(t *testing.T) {
	out, err := run(t, sample, "parse", "-", "--stage", "split", "--compact")
	require.NoError(t, err)
	var split nlp.SplitResult
	require.NoError(t, json.Unmarshal([]byte(out), &split))
	assert.Equal(t, "Индустрия FinTech", split.NumberedList[1])

	out, err = run(t, "Требования: Java", "parse", "-", "-s", "technologies")
	require.NoError(t, err)
	assert.Contains(t, out, `"Java"`)

	_, err = run(t, sample, "parse", "-", "--stage", "everything")
	assert.ErrorContains(t, err, `unknown stage "everything"`)
}

func TestParseUnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, []byte{1}, 0o644))

	_, err := run(t, "", "parse", path)
	assert.Error(t, err)
}

func TestPatternsCommand(t *testing.T) {
	out, err := run(t, sample, "patterns", "--file", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(nlp.Patterns())+1)
	assert.Contains(t, out, "request_id")
	assert.Regexp(t, `request_id\s+0\.98\s+1\s+44`, out)
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "", "token", "--sub", "8f7d2a6e-4b8c-4f3e-9a61-2c1d5e7b9f00")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)

	_, err = run(t, "", "token", "--sub", "nope")
	assert.Error(t, err)
}
