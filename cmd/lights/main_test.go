package main

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/.lights/lights.log", filepath.Join(home, ".lights", "lights.log")},
		{"/var/log/lights.log", "/var/log/lights.log"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23235":         "23235",
		"127.0.0.1:2222": "2222",
		"localhost":      "localhost",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestConfigInitPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := configInitPath(nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".lights", "configs", "lights.yaml"); got != want {
		t.Errorf("default path = %q, want %q", got, want)
	}
	got, _ = configInitPath([]string{"~/custom.yaml"})
	if want := filepath.Join(home, "custom.yaml"); got != want {
		t.Errorf("arg path = %q, want %q", got, want)
	}
}

func TestConfigCommandRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"config", "init"})
	if err != nil || cmd != configInitCmd {
		t.Fatalf("config init not registered: %v", err)
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("config init should have --force")
	}
}
