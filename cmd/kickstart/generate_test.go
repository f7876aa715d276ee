package main

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runKickstart(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateWritesReproducibleArchive(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.zip")
	second := filepath.Join(dir, "second.zip")
	args := []string{
		"generate",
		"--database", "postgres",
		"--format", "json,html",
		"--logging", "logback",
		"--stamp", "2024-06-01T12:00:00Z",
	}

	if _, err := runKickstart(t, append(args, "--output", first)...); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if _, err := runKickstart(t, append(args, "--output", second)...); err != nil {
		t.Fatalf("second generate: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first archive: %v", err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read second archive: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("expected byte-identical archives for identical options")
	}

	zr, err := zip.NewReader(bytes.NewReader(a), int64(len(a)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"build.gradle", "docker-compose.yml", "src/main/kotlin/com/example/App.kt"} {
		if !names[want] {
			t.Fatalf("expected %s in archive, got %v", want, names)
		}
	}
}

func TestGenerateReportsWrittenFiles(t *testing.T) {
	out, err := runKickstart(t, "generate", "--output", filepath.Join(t.TempDir(), "service.zip"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "service.zip") || !strings.Contains(out, "build.gradle") {
		t.Fatalf("expected summary with archive path and file list, got:\n%s", out)
	}
}

func TestGenerateRejectsUnknownDatabase(t *testing.T) {
	_, err := runKickstart(t, "generate", "--database", "oracle", "--output", filepath.Join(t.TempDir(), "x.zip"))
	if err == nil || !strings.Contains(err.Error(), "oracle") {
		t.Fatalf("expected unknown database error, got %v", err)
	}
}

func TestVersionShort(t *testing.T) {
	out, err := runKickstart(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected a version string")
	}
}
