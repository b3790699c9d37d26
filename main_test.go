package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/frommie/starsort/config"
	"github.com/frommie/starsort/testutils"
)

// executeCommand runs a fresh root command with args
func executeCommand(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func createPhotoTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	images := map[string][2]int{
		"album/land.jpg":   {800, 600},
		"album/port.jpg":   {600, 800},
		"album/square.jpg": {500, 500},
	}
	for name, size := range images {
		if err := testutils.CreateTestJPEG(t, filepath.Join(dir, name), size[0], size[1]); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	if err := testutils.CreateSidecar(t, filepath.Join(dir, "album"), []string{"land.jpg", "port.jpg", "square.jpg"}, nil); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	return dir
}

func TestRootCmd(t *testing.T) {
	photos := createPhotoTree(t)
	album := filepath.Join(photos, "album")

	t.Run("Orientation flags", func(t *testing.T) {
		outDir := t.TempDir()
		land := filepath.Join(outDir, "land.txt")
		port := filepath.Join(outDir, "port.txt")

		if out, err := executeCommand("--landscape", land, "--portrait", port, photos); err != nil {
			t.Fatalf("command failed: %v, output: %s", err, out)
		}
		if got := testutils.ReadLines(t, land); !reflect.DeepEqual(got, []string{filepath.Join(album, "land.jpg")}) {
			t.Errorf("landscape = %v", got)
		}
		if got := testutils.ReadLines(t, port); !reflect.DeepEqual(got, []string{filepath.Join(album, "port.jpg")}) {
			t.Errorf("portrait = %v", got)
		}
	})

	t.Run("All flag", func(t *testing.T) {
		all := filepath.Join(t.TempDir(), "all.txt")
		if out, err := executeCommand("--all", all, "--check-exists", photos); err != nil {
			t.Fatalf("command failed: %v, output: %s", err, out)
		}
		if got := testutils.ReadLines(t, all); len(got) != 3 {
			t.Errorf("all = %v, want 3 paths", got)
		}
	})

	t.Run("Config file", func(t *testing.T) {
		outDir := t.TempDir()
		square := filepath.Join(outDir, "square.txt")
		configPath := filepath.Join(outDir, "config.yaml")
		content := "inputs: [" + photos + "]\ntargets:\n  - orientation: square\n    path: " + square + "\n"
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		if out, err := executeCommand("--config", configPath); err != nil {
			t.Fatalf("command failed: %v, output: %s", err, out)
		}
		if got := testutils.ReadLines(t, square); !reflect.DeepEqual(got, []string{filepath.Join(album, "square.jpg")}) {
			t.Errorf("square = %v", got)
		}
	})
}

func TestRootCmd_InvalidConfiguration(t *testing.T) {
	photos := t.TempDir()
	out := filepath.Join(t.TempDir(), "out.txt")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "No inputs", args: []string{"--landscape", out}, wantErr: config.ErrNoInputs},
		{name: "No targets", args: []string{photos}, wantErr: config.ErrNoTargets},
		{name: "All with others", args: []string{"--all", out, "--square", out, photos}, wantErr: config.ErrAllExclusive},
		{name: "Missing input", args: []string{"--square", out, filepath.Join(photos, "nope")}, wantErr: config.ErrInputMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
