package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	t.Run("uses env vars when set", func(t *testing.T) {
		t.Setenv("COMMTOOL_CONFIG_PATH", "/custom/config.toml")
		t.Setenv("COMMTOOL_HOME", "/custom/commtool")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		if defaults["config_path"] != "/custom/config.toml" {
			t.Errorf("config_path = %q, want %q", defaults["config_path"], "/custom/config.toml")
		}
		if defaults["data_root"] != "/custom/commtool" {
			t.Errorf("data_root = %q, want %q", defaults["data_root"], "/custom/commtool")
		}
		if defaults["log_dir"] != "/custom/commtool/log" {
			t.Errorf("log_dir = %q, want %q", defaults["log_dir"], "/custom/commtool/log")
		}
	})

	t.Run("falls back to home dir defaults", func(t *testing.T) {
		t.Setenv("COMMTOOL_CONFIG_PATH", "")
		t.Setenv("COMMTOOL_HOME", "")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		homeDir, _ := os.UserHomeDir()

		wantConfig := filepath.Join(homeDir, ".config", "commtool.toml")
		if defaults["config_path"] != wantConfig {
			t.Errorf("config_path = %q, want %q", defaults["config_path"], wantConfig)
		}

		wantRoot := filepath.Join(homeDir, "Documents", "CommTool")
		if defaults["data_root"] != wantRoot {
			t.Errorf("data_root = %q, want %q", defaults["data_root"], wantRoot)
		}

		wantLog := filepath.Join(wantRoot, "log")
		if defaults["log_dir"] != wantLog {
			t.Errorf("log_dir = %q, want %q", defaults["log_dir"], wantLog)
		}
	})
}
