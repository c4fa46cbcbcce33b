package scan

import (
	"flag"
	"strings"
	"testing"

	"github.com/5dollarhigh/grocerytrace/internal/config"
	"github.com/5dollarhigh/grocerytrace/internal/testutil"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	if cmd == nil {
		t.Error("NewCommand() returned nil")
	}
}

func TestDescription(t *testing.T) {
	cmd := NewCommand()
	desc := cmd.Description()
	if desc != "Scan a receipt image and store the extracted receipt" {
		t.Errorf("Description() = %v, want %v", desc, "Scan a receipt image and store the extracted receipt")
	}
}

func TestSetFlags(t *testing.T) {
	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)

	if fs.Lookup("f") == nil {
		t.Error("File flag not registered")
	}
}

func TestRunRequiresFile(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse([]string{}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	err := cmd.Run(&config.Config{OCRLang: "eng"}, db, testutil.TestLogger(t))
	if err == nil {
		t.Fatal("Expected error when -f flag is missing")
	}
	if !strings.Contains(err.Error(), "-f flag is required") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse([]string{"-f", "does-not-exist.jpg"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	err := cmd.Run(&config.Config{OCRLang: "eng"}, db, testutil.TestLogger(t))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
