package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{})
}

func baseConfig() Config {
	return Config{Seed: 1337, StartingStack: 1000, SmallBlind: 5, BigBlind: 10}
}

func TestRunSimulatePlaysTenHands(t *testing.T) {
	var out bytes.Buffer
	err := RunSimulate(baseConfig(), &out, testLogger())
	require.NoError(t, err)

	text := out.String()
	require.Equal(t, 10, strings.Count(text, "reason="))
	require.Contains(t, text, "folds=")
	require.Contains(t, text, "showdowns=")
}

func TestRunInteractiveFoldImmediately(t *testing.T) {
	cfg := baseConfig()
	cfg.ControlledPlayer = 0
	in := strings.NewReader("0\n") // SB's first legal action is Fold at index 0

	var out bytes.Buffer
	err := RunInteractive(cfg, in, &out, testLogger())
	require.NoError(t, err)
	require.Contains(t, out.String(), "reason=fold")
}

func TestRunInteractiveRejectsOutOfRangeIndex(t *testing.T) {
	cfg := baseConfig()
	cfg.ControlledPlayer = 0
	in := strings.NewReader("99\n")

	var out bytes.Buffer
	err := RunInteractive(cfg, in, &out, testLogger())
	require.Error(t, err)
}
