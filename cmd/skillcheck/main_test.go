package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInitViper(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(*testing.T) string
		checkFunc func(*testing.T, string)
	}{
		{
			name: "no config file is fine",
			setupFunc: func(t *testing.T) string {
				t.Helper()
				return t.TempDir()
			},
			checkFunc: func(t *testing.T, homeDir string) {
				t.Helper()
				if used := viper.ConfigFileUsed(); used != "" {
					t.Errorf("expected no config file, got %s", used)
				}
				if viper.GetBool("strict") {
					t.Errorf("expected strict to default to false")
				}
				if _, err := os.Stat(filepath.Join(homeDir, ".skillcheck.yaml")); !os.IsNotExist(err) {
					t.Errorf("config file should not be created")
				}
			},
		},
		{
			name: "reads config file from home",
			setupFunc: func(t *testing.T) string {
				t.Helper()
				homeDir := t.TempDir()
				content := "strict: true\nworkers: 2\n"
				if err := os.WriteFile(filepath.Join(homeDir, ".skillcheck.yaml"), []byte(content), 0644); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
				return homeDir
			},
			checkFunc: func(t *testing.T, homeDir string) {
				t.Helper()
				if !viper.GetBool("strict") {
					t.Errorf("expected strict to be true")
				}
				if workers := viper.GetInt("workers"); workers != 2 {
					t.Errorf("expected workers to be 2, got %d", workers)
				}
			},
		},
		{
			name: "environment overrides config file",
			setupFunc: func(t *testing.T) string {
				t.Helper()
				homeDir := t.TempDir()
				if err := os.WriteFile(filepath.Join(homeDir, ".skillcheck.yaml"), []byte("strict: false\n"), 0644); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
				t.Setenv("SKILLCHECK_STRICT", "true")
				return homeDir
			},
			checkFunc: func(t *testing.T, homeDir string) {
				t.Helper()
				if !viper.GetBool("strict") {
					t.Errorf("expected SKILLCHECK_STRICT to override the config file")
				}
			},
		},
		{
			name: "github actions environment enables annotations",
			setupFunc: func(t *testing.T) string {
				t.Helper()
				t.Setenv("SKILLCHECK_GITHUB", "")
				t.Setenv("GITHUB_ACTIONS", "true")
				return t.TempDir()
			},
			checkFunc: func(t *testing.T, homeDir string) {
				t.Helper()
				if !viper.GetBool("github") {
					t.Errorf("expected github to be true under GITHUB_ACTIONS")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			homeDir := tt.setupFunc(t)
			t.Setenv("HOME", homeDir)

			viper.Reset()
			t.Cleanup(viper.Reset)

			initViper()

			tt.checkFunc(t, homeDir)
		})
	}
}

func TestMainPrintsHelp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("main() panicked: %v", r)
		}
	}()

	os.Args = []string{"skillcheck", "--help"}
	main()
}
