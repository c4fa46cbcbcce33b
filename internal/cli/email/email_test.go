package email

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/5dollarhigh/grocerytrace/internal/config"
	receiptDB "github.com/5dollarhigh/grocerytrace/internal/db"
	"github.com/5dollarhigh/grocerytrace/internal/receipt"
	"github.com/5dollarhigh/grocerytrace/internal/testutil"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	if cmd == nil {
		t.Error("NewCommand() returned nil")
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

func TestRun(t *testing.T) {
	db := testutil.SetupTestDB(t)

	eml := "From: orders@instacart.com\r\n" +
		"Subject: Your Instacart order receipt\r\n" +
		"Date: Mon, 15 Jan 2024 10:30:00 -0500\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"2 x Organic Bananas @ $0.99 = $1.98\r\n" +
		"Order Total $1.98\r\n"

	emlPath := filepath.Join(t.TempDir(), "order.eml")
	if err := os.WriteFile(emlPath, []byte(eml), 0600); err != nil {
		t.Fatalf("Failed to write eml file: %v", err)
	}

	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse([]string{"-f", emlPath}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if err := cmd.Run(&config.Config{}, db, testutil.TestLogger(t)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	receipts, total, err := receiptDB.GetReceipts(db, receiptDB.Filters{})
	if err != nil {
		t.Fatalf("Failed to fetch receipts: %v", err)
	}
	if total != 1 {
		t.Fatalf("Expected 1 stored receipt, got %d", total)
	}

	stored := receipts[0]
	if stored.StoreName != "Instacart" {
		t.Errorf("Expected store Instacart, got %q", stored.StoreName)
	}
	if stored.Source != receipt.SourceEmail {
		t.Errorf("Expected email source, got %q", stored.Source)
	}
	if len(stored.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(stored.Items))
	}
	if stored.Items[0].Name != "Organic Bananas" {
		t.Errorf("Expected item Organic Bananas, got %q", stored.Items[0].Name)
	}
}

func TestRunRejectsNonEML(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse([]string{"-f", "order.txt"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if err := cmd.Run(&config.Config{}, db, testutil.TestLogger(t)); err == nil {
		t.Fatal("Expected error for non-eml file")
	}
}
