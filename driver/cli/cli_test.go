package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlagPrintsExpression(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-parse", "a & b"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "a")
	require.Contains(t, stdout.String(), "b")
}

func TestDimacsFlagReportsSAT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cnf")
	require.NoError(t, os.WriteFile(path, []byte("p cnf 2 2\n1 2 0\n-1 -2 0\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := Run([]string{"-dimacscnf", path}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "SAT: true")
}

func TestUnreadableDimacsFileReturnsExitCodeOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-dimacscnf", "/does/not/exist.cnf"}, &stdout, &stderr)
	require.Equal(t, 1, code)
}
