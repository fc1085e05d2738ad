package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlayUnknownVariantReturnsError(t *testing.T) {
	rootCmd.SetArgs([]string{"play", "no_such_plane"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Expected an error for an unknown variant")
	}
	if !strings.Contains(err.Error(), "no_such_plane") {
		t.Errorf("error %q should name the variant", err)
	}
}

func TestBadLogFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "paperplane.log")
	rootCmd.SetArgs([]string{"play", "--log-file", path})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagLogFile = ""
	})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Expected an error when the log file cannot be opened")
	}
}

func TestOpenLoggerClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paperplane.log")
	flagLogFile = path
	t.Cleanup(func() { flagLogFile = "" })

	logger, closer, err := openLogger("paperplane", nil)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Info("throw", "outcome", "hit")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "outcome=hit") {
		t.Errorf("log file missing record, got %q", data)
	}
}

func TestOpenLoggerWithoutFile(t *testing.T) {
	logger, closer, err := openLogger("paperplane", nil)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Info("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}
