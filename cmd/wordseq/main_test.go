// Package main provides tests for the wordseq CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/wordseq/internal/cli"
	"github.com/leapstack-labs/wordseq/internal/cli/config"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	return filepath.Join(wd, "..", "..", "testdata")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := run(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "wordseq") {
		t.Errorf("version output should contain 'wordseq', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := run(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"check", "explain", "vocab", "watch", "repl", "version", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestCheckWithProjectConfig(t *testing.T) {
	td := testdataDir(t)

	output, err := run(t, "--config", filepath.Join(td, "wordseq.yaml"), "-o", "json",
		"check", "--file", filepath.Join(td, "inputs.txt"))
	if err == nil {
		t.Fatal("expected an error for the invalid line in inputs.txt")
	}

	var got struct {
		Results []struct {
			Input   string `json:"input"`
			Verdict string `json:"verdict"`
		} `json:"results"`
		Summary struct {
			Valid   int `json:"valid"`
			Invalid int `json:"invalid"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}

	want := map[string]string{
		"cat-dog":     "valid",
		"catdog_bird": "valid",
		"horse cow":   "valid",
		"-cat":        "invalid",
	}
	if len(got.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(got.Results), len(want))
	}
	for _, res := range got.Results {
		if want[res.Input] != res.Verdict {
			t.Errorf("%q: verdict = %s, want %s", res.Input, res.Verdict, want[res.Input])
		}
	}
	if got.Summary.Valid != 3 || got.Summary.Invalid != 1 {
		t.Errorf("summary = %+v, want 3 valid and 1 invalid", got.Summary)
	}
}

func TestCheckInlineFlags(t *testing.T) {
	output, err := run(t, "--words", "cat,dog", "--joiners", "-", "-o", "markdown", "check", "cat-dog", "dog")
	if err != nil {
		t.Fatalf("check error = %v\n%s", err, output)
	}
	if !strings.Contains(output, "2 checked, 2 valid, 0 invalid") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestStrictFlag(t *testing.T) {
	_, err := run(t, "--words", "cat,dog", "--joiners", "-", "--strict", "check", "cat--dog")
	if err == nil {
		t.Error("strict mode should reject consecutive joiners")
	}
}

func TestFoldCaseFlag(t *testing.T) {
	output, err := run(t, "--words", "cat,dog", "--joiners", "-", "--fold-case", "check", "CAT-Dog")
	if err != nil {
		t.Errorf("fold-case check error = %v\n%s", err, output)
	}
}

func TestInvalidOutputFlag(t *testing.T) {
	_, err := run(t, "--words", "cat", "-o", "xml", "check", "cat")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("expected output format error, got %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	output, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(output, "wordseq") {
		t.Errorf("completion script should mention wordseq")
	}
}
