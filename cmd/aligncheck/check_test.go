package main

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davejbax/memalign/internal/verify"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheckText(t *testing.T) {
	stdout, stderr, err := execute(t, "check", "--types", "int8,uint8")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Test: align_up<int8>(13, 8) == 16 : OK\n")
	assert.Contains(t, stdout, "Test: align_down<int8>(-3, 4) == -4 : OK\n")
	assert.Contains(t, stdout, "Test: is_aligned<uint8>(13, 8) == false : OK\n")
	assert.Contains(t, stdout, "Test: align_up<unsafe.Pointer>(nil, 64) == nil : OK\n")
	assert.NotContains(t, stdout, "FAIL")
	assert.Contains(t, stdout, " 0 failed\n")

	assert.Contains(t, stderr, "checks complete")
}

func TestCheckFailuresOnly(t *testing.T) {
	stdout, _, err := execute(t, "check", "--failures-only")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], " 0 failed"), lines[0])
}

func TestCheckJSON(t *testing.T) {
	stdout, _, err := execute(t, "check", "-f", "json", "--types", "uint32", "--max-alignment", "16")
	require.NoError(t, err)

	var report verify.Report
	require.NoError(t, jsoniter.Unmarshal([]byte(stdout), &report))

	assert.Zero(t, report.Failed)
	assert.Equal(t, len(report.Results), report.Passed)
	for _, r := range report.Results {
		assert.LessOrEqual(t, r.Alignment, uint64(16))
	}
}

func TestCheckVerbose(t *testing.T) {
	_, stderr, err := execute(t, "-v", "check", "--types", "int16")
	require.NoError(t, err)
	assert.Contains(t, stderr, "running checks")
	assert.Contains(t, stderr, "suite=int16")
}

func TestCheckInvalid(t *testing.T) {
	_, _, err := execute(t, "check", "--max-alignment", "24")
	require.Error(t, err)

	_, _, err = execute(t, "check", "--types", "int7")
	require.Error(t, err)

	_, _, err = execute(t, "check", "--format", "xml")
	require.ErrorIs(t, err, errUnknownFormat)
}

func TestCheckConfigFile(t *testing.T) {
	path := writeConfig(t, "aligncheck.yaml", `
format: json
check:
  types: [int64]
  pointers: false
  properties: false
`)

	stdout, _, err := execute(t, "--config", path, "check")
	require.NoError(t, err)

	var report verify.Report
	require.NoError(t, jsoniter.Unmarshal([]byte(stdout), &report))
	require.NotEmpty(t, report.Results)

	for _, r := range report.Results {
		assert.Equal(t, "int64", r.Type)
		assert.Contains(t, []string{verify.CheckUp, verify.CheckDown, verify.CheckIsAligned}, r.Check)
	}
}

func TestTypes(t *testing.T) {
	stdout, _, err := execute(t, "types")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(verify.TypeNames(), "\n")+"\n", stdout)
}
