package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/arith/internal/config"
)

func TestRun_CreatesConfig(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	result, err := Run(Options{
		TargetDir: dir,
		Version:   "1.2.3",
		Stdout:    &buf,
	})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if len(result.Created) != 1 || result.Created[0] != config.DefaultFile {
		t.Errorf("expected [%s] created, got %v", config.DefaultFile, result.Created)
	}

	data, err := os.ReadFile(filepath.Join(dir, config.DefaultFile))
	if err != nil {
		t.Fatalf("reading scaffolded file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# scaffolded by arith 1.2.3\n") {
		t.Errorf("missing version marker, got:\n%s", data)
	}
	if !strings.Contains(buf.String(), "created: "+config.DefaultFile) {
		t.Errorf("summary should mention created file, got:\n%s", buf.String())
	}
}

// TestRun_ConfigLoads verifies the scaffolded file is a valid config
// that matches the built-in defaults.
func TestRun_ConfigLoads(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(Options{TargetDir: dir, Stdout: &bytes.Buffer{}}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.DefaultFile))
	if err != nil {
		t.Fatalf("scaffolded config does not load: %v", err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("scaffolded config = %+v, want defaults %+v", *cfg, *config.DefaultConfig())
	}
}

func TestRun_SkipsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFile)
	if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	result, err := Run(Options{TargetDir: dir, Stdout: &buf})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(result.Skipped) != 1 || len(result.Created) != 0 {
		t.Errorf("expected 1 skipped and 0 created, got %+v", result)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "format: json") {
		t.Error("existing file should not be modified without Force")
	}
	if !strings.Contains(buf.String(), "use --force to overwrite") {
		t.Errorf("summary should hint at --force, got:\n%s", buf.String())
	}
}

func TestRun_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFile)
	if err := os.WriteFile(path, []byte("stale\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Run(Options{TargetDir: dir, Force: true, Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(result.Overwritten) != 1 {
		t.Errorf("expected 1 overwritten file, got %v", result.Overwritten)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("file should have been overwritten")
	}
	if !strings.HasPrefix(string(data), "# scaffolded by arith dev\n") {
		t.Errorf("expected default version marker, got:\n%s", data)
	}
}
