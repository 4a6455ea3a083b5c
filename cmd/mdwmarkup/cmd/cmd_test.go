package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	mdwlog "github.com/msto63/mdwmarkup/foundation/core/log"
	"github.com/msto63/mdwmarkup/foundation/markup"
)

// execute runs the root command with args and returns stdout and stderr
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores flag defaults between runs of the shared command tree
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDemoCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "demo", "--no-color")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	expected := "start and end tag are not equal. Start tag: div, end tag: other\n"
	if stdout != expected {
		t.Errorf("Expected %q, got %q", expected, stdout)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr bool
		check   func(t *testing.T, stdout string, err error)
	}{
		{
			name: "inline markup",
			args: []string{"parse", "--input", `<p class='a'>Hallo</p>`, "--format", "markup"},
			check: func(t *testing.T, stdout string, err error) {
				if stdout != "<p class='a'>Hallo</p>\n" {
					t.Errorf("Expected canonical markup, got %q", stdout)
				}
			},
		},
		{
			name: "remainder is shown",
			args: []string{"parse", "-i", "<a></a> tail", "-f", "markup"},
			check: func(t *testing.T, stdout string, err error) {
				if !strings.Contains(stdout, `Rest: " tail"`) {
					t.Errorf("Expected remainder in output, got %q", stdout)
				}
			},
		},
		{
			name:  "stdin",
			stdin: `<ul><li>a</li></ul>`,
			args:  []string{"parse", "-", "--format", "json"},
			check: func(t *testing.T, stdout string, err error) {
				var doc struct {
					Root struct {
						Name     string `json:"name"`
						Children []struct {
							Name string `json:"name"`
						} `json:"children"`
					} `json:"root"`
				}
				if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
					t.Fatalf("Expected JSON output, got %q: %v", stdout, err)
				}
				if doc.Root.Name != "ul" || len(doc.Root.Children) != 1 || doc.Root.Children[0].Name != "li" {
					t.Errorf("Unexpected document: %+v", doc)
				}
			},
		},
		{
			name: "plain tree",
			args: []string{"parse", "-i", `<div><br/></div>`, "-f", "tree", "--no-color"},
			check: func(t *testing.T, stdout string, err error) {
				if stdout != "<div>\n└─ <br/>\n" {
					t.Errorf("Expected plain tree, got %q", stdout)
				}
			},
		},
		{
			name: "mismatch is not checked",
			args: []string{"parse", "-i", `<a></b>`, "-f", "markup"},
			check: func(t *testing.T, stdout string, err error) {
				if !strings.HasPrefix(stdout, "<a>") {
					t.Errorf("Expected tree despite mismatch, got %q", stdout)
				}
			},
		},
		{
			name:    "syntax error",
			args:    []string{"parse", "-i", `<a x=1></a>`},
			wantErr: true,
			check: func(t *testing.T, stdout string, err error) {
				if !mdwerror.HasCode(err, mdwerror.CodeMarkupSyntax) {
					t.Errorf("Expected MARKUP_SYNTAX, got %v", err)
				}
			},
		},
		{
			name:    "depth limit",
			args:    []string{"parse", "-i", `<a><a><a></a></a></a>`, "--max-depth", "2"},
			wantErr: true,
			check: func(t *testing.T, stdout string, err error) {
				if !mdwerror.HasCode(err, mdwerror.CodeMarkupDepth) {
					t.Errorf("Expected MARKUP_DEPTH, got %v", err)
				}
			},
		},
		{
			name:    "unknown format",
			args:    []string{"parse", "-i", `<a></a>`, "-f", "pdf"},
			wantErr: true,
		},
		{
			name:    "input and file",
			args:    []string{"parse", "-i", `<a></a>`, "doc.mdw"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if tt.check != nil {
				tt.check(t, stdout, err)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.mdw", `<div><P>x</p></div>`)
	invalid := writeFile(t, dir, "invalid.mdw", `<div><p>x</q></div>`)
	trailing := writeFile(t, dir, "trailing.mdw", `<div></div>junk`)

	t.Run("valid file", func(t *testing.T) {
		stdout, _, err := execute(t, "", "check", valid)
		if err != nil {
			t.Fatalf("Expected success, got %v", err)
		}
		if !strings.HasPrefix(stdout, "✓ "+valid+" (19 B, 2 Elemente, Tiefe 2,") {
			t.Errorf("Unexpected verdict: %q", stdout)
		}
	})

	t.Run("one invalid file", func(t *testing.T) {
		stdout, _, err := execute(t, "", "check", valid, invalid)
		if err == nil || err.Error() != "1 von 2 Dateien ungueltig" {
			t.Fatalf("Expected failure summary, got %v", err)
		}
		if !strings.Contains(stdout, "✗ "+invalid) {
			t.Errorf("Expected failure line, got %q", stdout)
		}
		if !strings.Contains(stdout, "Start tag: p, end tag: q") {
			t.Errorf("Expected mismatch message, got %q", stdout)
		}
	})

	t.Run("quiet", func(t *testing.T) {
		stdout, _, err := execute(t, "", "check", "-q", valid)
		if err != nil || stdout != "" {
			t.Errorf("Expected silent success, got %q / %v", stdout, err)
		}
	})

	t.Run("trailing input", func(t *testing.T) {
		stdout, _, err := execute(t, "", "check", trailing)
		if err != nil {
			t.Fatalf("Expected success without --require-complete, got %v", err)
		}
		if !strings.Contains(stdout, `Rest nach dem Wurzelelement: "junk"`) {
			t.Errorf("Expected remainder note, got %q", stdout)
		}

		_, _, err = execute(t, "", "check", "--require-complete", trailing)
		if err == nil {
			t.Errorf("Expected --require-complete to reject trailing input")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, stderr, err := execute(t, "", "check", filepath.Join(dir, "missing.mdw"))
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
		if !strings.HasPrefix(stderr, "Fehler: ") {
			t.Errorf("Expected error line on stderr, got %q", stderr)
		}
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		stdout, _, err := execute(t, "", "config")
		if err != nil {
			t.Fatalf("config failed: %v", err)
		}
		for _, want := range []string{"log_level: warn", "max_depth: 256", "output_format: debug", "watch_interval: 1s", "source: defaults"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("Expected %q in output:\n%s", want, stdout)
			}
		}
	})

	t.Run("file and environment", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "mdwmarkup.toml", `
[parser]
max_depth = 32
require_complete = true

[output]
format = "tree"
`)
		t.Setenv("MDWMARKUP_OUTPUT_COLOR", "false")

		stdout, _, err := execute(t, "", "config", "--config", path)
		if err != nil {
			t.Fatalf("config failed: %v", err)
		}
		for _, want := range []string{"max_depth: 32", "require_complete: true", "output_format: tree", "color: false"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("Expected %q in output:\n%s", want, stdout)
			}
		}
	})

	t.Run("verbose", func(t *testing.T) {
		stdout, _, err := execute(t, "", "config", "-v", "--log-format", "json")
		if err != nil {
			t.Fatalf("config failed: %v", err)
		}
		if !strings.Contains(stdout, "log_level: debug") || !strings.Contains(stdout, "log_format: json") {
			t.Errorf("Expected flag overrides, got:\n%s", stdout)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "", "config", "--config", filepath.Join(t.TempDir(), "none.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Expected NOT_FOUND, got %v", err)
		}
	})
}

func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("MDWMARKUP_LOG_LEVEL", "loud")
	_, _, err := execute(t, "", "parse", "-i", "<a></a>")
	if err == nil || !strings.Contains(err.Error(), "ungueltiges Log-Level") {
		t.Errorf("Expected log level error, got %v", err)
	}
}

func TestExitCode(t *testing.T) {
	dir := t.TempDir()
	invalid := writeFile(t, dir, "invalid.mdw", `<div><p>x</q></div>`)
	missing := filepath.Join(dir, "missing.mdw")

	tests := []struct {
		name string
		env  string
		args []string
		want int
	}{
		{"valid document", "", []string{"parse", "-i", "<a></a>"}, 0},
		{"syntax error", "", []string{"parse", "-i", "<div>"}, 1},
		{"tag mismatch", "", []string{"check", invalid}, 1},
		{"missing file", "", []string{"check", missing}, 2},
		{"missing file wins over mismatch", "", []string{"check", invalid, missing}, 2},
		{"missing parse argument", "", []string{"parse", missing}, 2},
		{"bad log level", "loud", []string{"parse", "-i", "<a></a>"}, 2},
		{"unknown flag", "", []string{"parse", "--bogus"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("MDWMARKUP_LOG_LEVEL", tt.env)
			}
			_, _, err := execute(t, "", tt.args...)
			if got := ExitCode(err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", err, got, tt.want)
			}
		})
	}
}

func TestExecuteVerboseDetails(t *testing.T) {
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"-v", "parse", "-i", "<div>"})

	if err := Execute(); err == nil {
		t.Fatal("Expected syntax error")
	}
	for _, want := range []string{"Code: MARKUP_SYNTAX", "Severity: low", "Operation: markup.Parse"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("Expected %q in verbose output, got %q", want, stderr.String())
		}
	}

	resetFlags(rootCmd)
	stderr.Reset()
	rootCmd.SetArgs([]string{"parse", "-i", "<div>"})
	_ = Execute()
	if strings.Contains(stderr.String(), "Code: ") {
		t.Errorf("Expected no details without --verbose, got %q", stderr.String())
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version", "--components")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "mdwmarkup v") {
		t.Errorf("Expected version line, got %q", stdout)
	}
	if !strings.Contains(stdout, "parser:") || !strings.Contains(stdout, "viewer:") {
		t.Errorf("Expected component versions, got %q", stdout)
	}
}

func TestWatchFile(t *testing.T) {
	var logs bytes.Buffer
	engine, err := markup.NewEngine(markup.Options{
		Logger: mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelInfo, Format: mdwlog.FormatText, Output: &logs}),
	})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	path := writeFile(t, t.TempDir(), "doc.mdw", `<a>1</a>`)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	if err := watchFile(ctx, &out, engine, path, 20*time.Millisecond); err != nil {
		t.Fatalf("watchFile failed: %v", err)
	}

	// an unchanged file is checked once
	if n := strings.Count(out.String(), "✓ "+path); n != 1 {
		t.Errorf("Expected one verdict, got %d in %q", n, out.String())
	}
	if n := strings.Count(logs.String(), "Watched file changed"); n != 1 {
		t.Errorf("Expected one change log entry, got %d in %q", n, logs.String())
	}
}
