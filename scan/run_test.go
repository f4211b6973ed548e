package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap/zaptest"

	"cssshare/config"
	"cssshare/state"
)

func runCommand(t *testing.T, args ...string) (*state.LocalEnv, error) {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)

	cmd := &cli.Command{
		Name:   "cssshare",
		Action: Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output-name"},
		},
	}
	return env, cmd.Run(ctx, append([]string{"cssshare"}, args...))
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.css": `.a { color: red; }`,
		"b.css": `.a { color: red; }`,
	})

	if _, err := runCommand(t, root); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, ok := readShared(t, root); !ok {
		t.Error("shared rules file was not written")
	}
}

func TestRun_OutputName(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.css": `.a { color: red; }`,
		"b.css": `.a { color: red; }`,
	})

	env, err := runCommand(t, "--output-name", "common.css", root)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if env.Cfg.Scan.OutputName != "common.css" {
		t.Errorf("OutputName = %q, want common.css", env.Cfg.Scan.OutputName)
	}
	if _, err := os.Stat(filepath.Join(root, "common.css")); err != nil {
		t.Errorf("custom output was not written: %v", err)
	}
}

func TestRun_OutputNameSanitized(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.css": `.a { color: red; }`,
		"b.css": `.a { color: red; }`,
	})

	env, err := runCommand(t, "--output-name", "../escape.css", root)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	name := env.Cfg.Scan.OutputName
	if strings.ContainsRune(name, filepath.Separator) || strings.HasPrefix(name, ".") {
		t.Errorf("OutputName %q was not sanitized", name)
	}
	if _, err := os.Stat(filepath.Join(root, name)); err != nil {
		t.Errorf("output was not written inside scanned directory: %v", err)
	}
}

func TestRun_InvalidRoot(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no argument", nil},
		{"missing directory", []string{filepath.Join(t.TempDir(), "missing")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			if !errors.Is(err, ErrInvalidRoot) {
				t.Errorf("expected ErrInvalidRoot, got %v", err)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(state.ContextWithEnv(context.Background()))
	cancel()

	cmd := &cli.Command{Name: "cssshare", Action: Run}
	if err := cmd.Run(ctx, []string{"cssshare", t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
