package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const fullConfig = `smtp_server: smtp.example.com
smtp_port: 587
email_address: checker@example.com
email_password: hunter2
recipients:
  - ops@example.com
  - oncall@example.com
downloads:
  - name: installer
    url: https://downloads.example.com/installer.iso
  - name: checksums
    url: https://downloads.example.com/SHA256SUMS
timeout: 10
user_agent: custom-agent/1.0
`

func TestLoad_FullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, fullConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SMTPServer != "smtp.example.com" || cfg.SMTPPort != 587 {
		t.Fatalf("smtp fields wrong: %+v", cfg)
	}
	if len(cfg.Recipients) != 2 || cfg.Recipients[0] != "ops@example.com" {
		t.Fatalf("recipients wrong: %+v", cfg.Recipients)
	}
	if len(cfg.Downloads) != 2 || cfg.Downloads[1].Name != "checksums" {
		t.Fatalf("downloads wrong: %+v", cfg.Downloads)
	}
	if cfg.Timeout != 10 || cfg.UserAgent != "custom-agent/1.0" {
		t.Fatalf("optional fields wrong: %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_EmptyFileParsesToZeroConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SMTPServer != "" || cfg.Downloads != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "downloads: [broken")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDefaultPath_UnderHome(t *testing.T) {
	t.Setenv("HOME", "/home/checker")
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	want := filepath.Join("/home/checker", ".config", "url_checker", "config.yml")
	if p != want {
		t.Fatalf("want %s, got %s", want, p)
	}
}

func TestApplyDefaults_FillsTimeoutAndUserAgent(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg, zap.NewNop())
	if cfg.Timeout != 5 {
		t.Fatalf("want default timeout 5, got %d", cfg.Timeout)
	}
	if !strings.HasSuffix(cfg.UserAgent, "'s URL availability checker") {
		t.Fatalf("unexpected user agent: %q", cfg.UserAgent)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Timeout: 30, UserAgent: "custom-agent/1.0"}
	ApplyDefaults(cfg, zap.NewNop())
	if cfg.Timeout != 30 || cfg.UserAgent != "custom-agent/1.0" {
		t.Fatalf("explicit values were overwritten: %+v", cfg)
	}
}
