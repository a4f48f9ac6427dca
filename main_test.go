package main

import (
	"bytes"
	"testing"

	"isolation/config"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlayCommand(t *testing.T) {
	t.Setenv(config.EnvBoardSize, "5")

	out, err := execute(t, "play", "--player1", "Random", "--player2", "MM_Null", "--log-level", "warn")

	require.NoError(t, err)
	require.Contains(t, out, "Winner: ")
	require.Contains(t, out, "Moves: ")
}

func TestPlayCommandRejectsUnknownAgent(t *testing.T) {
	_, err := execute(t, "play", "--player1", "Nobody", "--player2", "Random")
	require.ErrorContains(t, err, "unknown agent Nobody")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "play", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")
}
