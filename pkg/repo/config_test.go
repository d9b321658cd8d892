package repo

import (
	"os"
	"testing"
)

func TestReadConfigMissingFileUsesDefaults(t *testing.T) {
	r := initTestRepo(t)
	cfg, err := r.ReadConfig()
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		t.Errorf("defaults not filled: %+v", cfg.User)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	r := initTestRepo(t)
	want := &Config{User: UserConfig{Name: "Someone", Email: "someone@example.com"}}
	if err := r.WriteConfig(want); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	got, err := r.ReadConfig()
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if got.User != want.User {
		t.Errorf("config: got %+v, want %+v", got.User, want.User)
	}
}

func TestReadConfigPartialFallsBackPerField(t *testing.T) {
	r := initTestRepo(t)
	if err := os.WriteFile(r.configPath(), []byte("[user]\nname = \"Only Name\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := r.ReadConfig()
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.User.Name != "Only Name" {
		t.Errorf("Name: got %q", cfg.User.Name)
	}
	if cfg.User.Email == "" {
		t.Error("Email default not applied")
	}
}

func TestReadConfigMalformed(t *testing.T) {
	r := initTestRepo(t)
	if err := os.WriteFile(r.configPath(), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.ReadConfig(); err == nil {
		t.Error("malformed config should fail")
	}
}
