package main

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleRules = `
limit: 40
parameters:
  - name: password
    mode: all
  - name: token
    mode: fixed-length
    length: 5
    case-insensitive: true
headers:
  - name: Authorization
    mode: fixed-value
    value: "<masked>"
`

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write the rule file: %v", err)
	}
	return path
}

func TestLoadRules(t *testing.T) {
	rules, err := loadRules(writeRules(t, sampleRules))
	if err != nil {
		t.Fatalf("Failed to load the rules: %v", err)
	}

	paramObfuscator, err := rules.paramObfuscator()
	if err != nil {
		t.Fatalf("Failed to build the parameter obfuscator: %v", err)
	}
	masked, err := paramObfuscator.ObfuscateString("user=alice&password=hunter2&TOKEN=4f9ac1")
	if err != nil {
		t.Fatalf("Failed to obfuscate: %v", err)
	}
	if expected := "user=alice&password=*******&TOKEN=*****"; masked != expected {
		t.Errorf("Expected %q, but received %q", expected, masked)
	}

	headerObfuscator, err := rules.headerObfuscator()
	if err != nil {
		t.Fatalf("Failed to build the header obfuscator: %v", err)
	}
	if masked := headerObfuscator.ObfuscateHeader("authorization", "Bearer abc"); masked != "<masked>" {
		t.Errorf("Expected %q, but received %q", "<masked>", masked)
	}
}

func TestLoadRulesUnknownMode(t *testing.T) {
	rules, err := loadRules(writeRules(t, "parameters:\n  - name: a\n    mode: rot13\n"))
	if err != nil {
		t.Fatalf("Failed to load the rules: %v", err)
	}
	if _, err := rules.paramObfuscator(); err == nil {
		t.Error("Expected an error for an unknown mode, but received 'nil'")
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := loadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file, but received 'nil'")
	}
}

func TestMaskHeaderLine(t *testing.T) {
	rules, err := loadRules(writeRules(t, sampleRules))
	if err != nil {
		t.Fatalf("Failed to load the rules: %v", err)
	}
	obfuscator, err := rules.headerObfuscator()
	if err != nil {
		t.Fatalf("Failed to build the header obfuscator: %v", err)
	}

	if masked := maskHeaderLine(obfuscator, "Authorization: Bearer abc"); masked != "Authorization: <masked>" {
		t.Errorf("Expected %q, but received %q", "Authorization: <masked>", masked)
	}
	if masked := maskHeaderLine(obfuscator, "not a header"); masked != "not a header" {
		t.Errorf("Expected the line to pass through, but received %q", masked)
	}
}
