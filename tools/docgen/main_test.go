package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestGenerate(t *testing.T) {
	root := &cobra.Command{Use: "mrctl", Short: "client"}
	root.AddCommand(&cobra.Command{Use: "session", Short: "show session", Run: func(*cobra.Command, []string) {}})

	dir := t.TempDir()
	if err := generate(dir, map[string]*cobra.Command{"mrctl": root}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, name := range []string{"mrctl.md", "mrctl_session.md"} {
		data, err := os.ReadFile(filepath.Join(dir, "mrctl", name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if !strings.HasPrefix(string(data), header) {
			t.Errorf("%s missing generated header", name)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "mrctl", "mrctl.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "(./mrctl_session.md)") {
		t.Errorf("expected relative link to subcommand, got:\n%s", data)
	}
}
