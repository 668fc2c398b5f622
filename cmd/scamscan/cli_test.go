package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/scamscan/internal/model"
)

const scamJobText = "Work from home making money! No experience needed. Sign up fee required. Urgent! Act now!"

// testEnv holds an isolated database directory and configuration file so
// tests never touch the user's real data.
type testEnv struct {
	dir        string
	dbDir      string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		dir:        dir,
		dbDir:      filepath.Join(dir, "db"),
		configPath: filepath.Join(dir, "scamscan.yaml"),
	}
	writeFile(t, env.configPath, "engine:\n  batchSize: 2\n")
	return env
}

// run executes the root command with the environment's global flags.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", e.configPath, "--db-dir", e.dbDir))
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// batchEnvelope mirrors the JSON envelope of a batch report.
type batchEnvelope struct {
	Version string            `json:"version"`
	Kind    string            `json:"kind"`
	Report  model.BatchReport `json:"report"`
}

// trendEnvelope mirrors the JSON envelope of a trend report.
type trendEnvelope struct {
	Kind   string            `json:"kind"`
	Report model.TrendReport `json:"report"`
}

func decodeJSON(t *testing.T, data string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(data), v); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}
}
