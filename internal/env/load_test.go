package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	in := `# comment
FOG_CONFIG=config/dev.yaml
export FOG_TELEMETRY_ADDR="127.0.0.1:9000"
QUOTED='single'
=novalue
broken line
`
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[string]string{
		"FOG_CONFIG":         "config/dev.yaml",
		"FOG_TELEMETRY_ADDR": "127.0.0.1:9000",
		"QUOTED":             "single",
	}
	if len(got) != len(want) {
		t.Fatalf("Parse() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestLoadKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FOG_TEST_A=file\nFOG_TEST_B=file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOG_TEST_A", "process")
	t.Setenv("FOG_TEST_B", "")
	os.Unsetenv("FOG_TEST_B")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("FOG_TEST_A"); got != "process" {
		t.Errorf("FOG_TEST_A = %q, want process", got)
	}
	if got := os.Getenv("FOG_TEST_B"); got != "file" {
		t.Errorf("FOG_TEST_B = %q, want file", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("Load(missing) = %v, want nil", err)
	}
}

func TestString(t *testing.T) {
	t.Setenv("FOG_TEST_STRING", "")
	if got := String("FOG_TEST_STRING", "fallback"); got != "fallback" {
		t.Errorf("String(empty) = %q", got)
	}
	t.Setenv("FOG_TEST_STRING", "set")
	if got := String("FOG_TEST_STRING", "fallback"); got != "set" {
		t.Errorf("String(set) = %q", got)
	}
}
