package logx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogRespectsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, 2)

	log.Log(1, "command level")
	log.Log(2, "operation level")
	log.Log(6, "iteration level, should be dropped")

	out := buf.String()
	require.Contains(t, out, "command level")
	require.Contains(t, out, "operation level")
	require.NotContains(t, out, "iteration level")
}

func TestDumpGatedBehindVerbositySix(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, 3)
	log.Dump(6, "cube", []int{1, 2, 3})
	require.Empty(t, buf.String())

	log2 := New(&buf, 6)
	log2.Dump(6, "cube", []int{1, 2, 3})
	require.Contains(t, buf.String(), "cube")
}
