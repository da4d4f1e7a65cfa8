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

	"github.com/denisok6893-rgb/red-flag-checker/internal/assessment"
	"github.com/denisok6893-rgb/red-flag-checker/internal/calculator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, err := execute(t, "score", "--set", "communication_honesty=very_negative")
	require.NoError(t, err)
	assert.Contains(t, out, "Red flags:   50")
	assert.Contains(t, out, "Net score:   -50")
	assert.Contains(t, out, "Risk:        Moderate")
}

func TestScoreCommand_FileAndJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sel.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"trust_reliability":"very_positive"}`), 0o600))

	out, err := execute(t, "score", "--file", path, "--json")
	require.NoError(t, err)

	var got scoreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 40, got.Score.GreenScore)
	assert.Equal(t, assessment.RiskLow, got.Risk.Level)
}

func TestScoreCommand_BadLevel(t *testing.T) {
	_, err := execute(t, "score", "--set", "communication_honesty=terrible")
	assert.Error(t, err)

	_, err = execute(t, "score", "--set", "communication_honesty")
	assert.Error(t, err)
}

func TestRiskCommand(t *testing.T) {
	out, err := execute(t, "risk", "80")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Severe:"), out)

	_, err = execute(t, "risk", "eighty")
	assert.Error(t, err)
}

func TestPoolCommand(t *testing.T) {
	out, err := execute(t, "pool", "--seeking", "male", "--json")
	require.NoError(t, err)

	var got calculator.Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 49.0, got.Probability)
	assert.Equal(t, "REALISTIC", got.Delusion)

	out, err = execute(t, "pool", "--set", "Height=6-0", "--set", "Income=100k")
	require.NoError(t, err)
	assert.Contains(t, out, "Region:           us")
	assert.Contains(t, out, "(2 factors)")

	_, err = execute(t, "pool", "--seeking", "robot")
	assert.Error(t, err)

	_, err = execute(t, "pool", "--set", "Height=7-0")
	assert.ErrorIs(t, err, calculator.ErrUnknownOption)
}

func TestShareCommands(t *testing.T) {
	link, err := execute(t, "share", "encode", "--name", "Sam", "--set", "communication_honesty=very_negative", "--base-url", "https://example.test/quiz")
	require.NoError(t, err)
	link = strings.TrimSpace(link)
	assert.True(t, strings.HasPrefix(link, "https://example.test/quiz#share="), link)

	out, err := execute(t, "share", "decode", link)
	require.NoError(t, err)
	assert.Contains(t, out, "Profile: Sam (1 ratings)")
	assert.Contains(t, out, "Red flags:   50")

	_, err = execute(t, "share", "decode", "%%%")
	assert.Error(t, err)
}
