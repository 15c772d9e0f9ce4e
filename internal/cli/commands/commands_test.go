package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/pkg/config"
	"github.com/ccollicutt/flightcheck/pkg/output"
)

// testEnv returns an environment whose store and default input live in a
// temporary directory.
func testEnv(t *testing.T) *Env {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.StorePath = filepath.Join(dir, "latestValues.txt")
	cfg.DefaultInput = filepath.Join(dir, "data.txt")
	return &Env{Config: cfg}
}

// execute runs cmd with args and stdin and returns everything it printed.
func execute(t *testing.T, cmd *cobra.Command, env *Env, stdin string, args ...string) (string, error) {
	t.Helper()
	ExitCode = ExitOK

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(WithEnv(context.Background(), env))
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestNewAnalyzeCommand(t *testing.T) {
	cmd := NewAnalyzeCommand()

	if cmd.Use != "analyze [file|glob...]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	flags := []string{"output", "export", "max-errors", "quiet", "strict", "webhook-url", "webhook-token", "webhook-trigger"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	for _, flag := range []string{"save", "strict"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
	if cmd.Flags().ShorthandLookup("s") == nil {
		t.Error("Missing -s shorthand for --save")
	}
}

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	if cmd.Use != "validate <config-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	if !strings.Contains(cmd.Long, "Validate") {
		t.Error("Missing description in Long")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, NewVersionCommand(), testEnv(t), "")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "flightcheck "+Version+"\n" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestCheck_Valid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"separate args", []string{"09:25:30", "ABC123", "XYZ"}},
		{"single arg", []string{"09:25:30 ABC123 XYZ"}},
		{"commas", []string{"092530,ABC123,XYZ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewCheckCommand(), testEnv(t), "", tt.args...)
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			if ExitCode != ExitOK {
				t.Errorf("ExitCode = %d, want %d", ExitCode, ExitOK)
			}
			for _, want := range []string{"Valid record:", "Time: 09:25:30", "Flight: ABC123", "Computer: XYZ"} {
				if !strings.Contains(out, want) {
					t.Errorf("Output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCheck_Invalid(t *testing.T) {
	tests := []struct {
		line   string
		reason string
	}{
		{"25:00:00 ABC123 XYZ", "time out of range"},
		{"09:25:30 1ABC XYZ", "flight id must start with a letter"},
		{"09:25:30 ABC123 XIO", "avoid letter I or O in last two spots"},
		{"09:25:30 ABC123", "expected 3 pieces: time flight computer"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, err := execute(t, NewCheckCommand(), testEnv(t), "", tt.line)
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			if ExitCode != ExitInvalid {
				t.Errorf("ExitCode = %d, want %d", ExitCode, ExitInvalid)
			}
			if !strings.Contains(out, "Invalid: "+tt.reason) {
				t.Errorf("Output missing reason %q:\n%s", tt.reason, out)
			}
			if !strings.Contains(out, "Quick rules and examples:") {
				t.Errorf("Output missing rules:\n%s", out)
			}
		})
	}
}

func TestCheck_Stdin(t *testing.T) {
	out, err := execute(t, NewCheckCommand(), testEnv(t), "092530,ABC123,XY1\n")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "Record > ") || !strings.Contains(out, "Computer: XY1") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}

func TestCheck_StdinLongLine(t *testing.T) {
	out, err := execute(t, NewCheckCommand(), testEnv(t), strings.Repeat("x", 2<<20)+"\n")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if ExitCode != ExitInvalid {
		t.Errorf("ExitCode = %d, want %d", ExitCode, ExitInvalid)
	}
	if !strings.Contains(out, "Invalid: ") {
		t.Errorf("long line not reported as invalid")
	}
}

func TestCheck_Strict(t *testing.T) {
	env := testEnv(t)

	if _, err := execute(t, NewCheckCommand(), env, "", "09:25:30 ABC123 XYZ extra"); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if ExitCode != ExitOK {
		t.Errorf("lenient check: ExitCode = %d, want %d", ExitCode, ExitOK)
	}

	out, err := execute(t, NewCheckCommand(), env, "", "--strict", "09:25:30 ABC123 XYZ extra")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if ExitCode != ExitInvalid {
		t.Errorf("strict check: ExitCode = %d, want %d", ExitCode, ExitInvalid)
	}
	if !strings.Contains(out, "too many pieces") {
		t.Errorf("Output missing strict reason:\n%s", out)
	}
}

func TestCheck_Save(t *testing.T) {
	env := testEnv(t)

	out, err := execute(t, NewCheckCommand(), env, "", "--save", "092530", "ABC123", "XYZ")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "Saved to "+env.Config.StorePath) {
		t.Errorf("Output missing save notice:\n%s", out)
	}
	if got := readFile(t, env.Config.StorePath); got != "09:25:30 ABC123 XYZ\n" {
		t.Errorf("Store content = %q", got)
	}
}

func TestCheck_SaveInvalidDoesNotWrite(t *testing.T) {
	env := testEnv(t)

	if _, err := execute(t, NewCheckCommand(), env, "", "--save", "99:99:99 ABC123 XYZ"); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if _, err := os.Stat(env.Config.StorePath); !os.IsNotExist(err) {
		t.Errorf("Store should not exist after invalid save, stat err = %v", err)
	}
}

func TestGuide(t *testing.T) {
	env := testEnv(t)

	out, err := execute(t, NewGuideCommand(), env, "9\n25\n30\n1AB\nABC123\nXYZ\n")
	if err != nil {
		t.Fatalf("guide failed: %v", err)
	}
	for _, want := range []string{
		"Try again: flight id must start with a letter",
		"Nice! Record is ready.",
		"It looks like: 09:25:30 ABC123 XYZ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if got := readFile(t, env.Config.StorePath); got != "09:25:30 ABC123 XYZ\n" {
		t.Errorf("Store content = %q", got)
	}
}

func TestGuide_Cancel(t *testing.T) {
	env := testEnv(t)

	out, err := execute(t, NewGuideCommand(), env, "12\nq\n")
	if err != nil {
		t.Fatalf("guide failed: %v", err)
	}
	if !strings.Contains(out, "Canceled guided entry.") {
		t.Errorf("Output missing cancel notice:\n%s", out)
	}
	if _, err := os.Stat(env.Config.StorePath); !os.IsNotExist(err) {
		t.Error("Canceled guide should not write the store")
	}
}

func TestStored(t *testing.T) {
	env := testEnv(t)

	out, err := execute(t, NewStoredCommand(), env, "")
	if err != nil {
		t.Fatalf("stored failed: %v", err)
	}
	if !strings.Contains(out, "No saved answers yet") {
		t.Errorf("Expected no-entries notice:\n%s", out)
	}

	writeFile(t, env.Config.StorePath, "09:25:30 ABC123 XYZ\n10:00:00 DEF456 AB1\n")
	out, err = execute(t, NewStoredCommand(), env, "")
	if err != nil {
		t.Fatalf("stored failed: %v", err)
	}
	for _, want := range []string{"1) 09:25:30 ABC123 XYZ", "2) 10:00:00 DEF456 AB1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestView(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, "one\ntwo\nthree\n")

	out, err := execute(t, NewViewCommand(), env, "", "-n", "2")
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if !strings.Contains(out, "one\ntwo\n") || strings.Contains(out, "three") {
		t.Errorf("Unexpected content:\n%s", out)
	}
	if !strings.Contains(out, "only first 2 lines shown") {
		t.Errorf("Missing truncation notice:\n%s", out)
	}
}

func TestView_MissingFile(t *testing.T) {
	env := testEnv(t)

	if _, err := execute(t, NewViewCommand(), env, "", filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

const mixedInput = "09:25:30 ABC123 XYZ\n\n25:00:00 ABC123 XYZ\n092530,DEF456,AB1\n"

func TestAnalyze_TextAndExport(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, mixedInput)

	out, err := execute(t, NewAnalyzeCommand(), env, "", "--export")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if ExitCode != ExitInvalid {
		t.Errorf("ExitCode = %d, want %d", ExitCode, ExitInvalid)
	}

	for _, want := range []string{
		"OK: 2",
		"Invalid: 2",
		`Line 2: empty line -- ""`,
		`Line 3: time out of range -- "25:00:00 ABC123 XYZ"`,
		"Wrote 2 records to",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}

	csvPath := output.ExportPath(env.Config.DefaultInput, env.Config.ExportSuffix)
	want := "time,flight,computer\n09:25:30,ABC123,XYZ\n09:25:30,DEF456,AB1\n"
	if got := readFile(t, csvPath); got != want {
		t.Errorf("CSV = %q, want %q", got, want)
	}
}

func TestAnalyze_AllValid(t *testing.T) {
	env := testEnv(t)
	path := filepath.Join(t.TempDir(), "good.txt")
	writeFile(t, path, "09:25:30 ABC123 XYZ\n")

	out, err := execute(t, NewAnalyzeCommand(), env, "", "-q", path)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if ExitCode != ExitOK {
		t.Errorf("ExitCode = %d, want %d", ExitCode, ExitOK)
	}
	if out != path+": 1 OK, 0 invalid\n" {
		t.Errorf("Unexpected quiet output: %q", out)
	}
}

func TestAnalyze_JSON(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, mixedInput)

	out, err := execute(t, NewAnalyzeCommand(), env, "", "-o", "json")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	var report output.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("Output is not a JSON report: %v\n%s", err, out)
	}
	if report.Summary.TotalLines != 4 || report.Summary.OK != 2 || report.Summary.Invalid != 2 {
		t.Errorf("Unexpected summary: %+v", report.Summary)
	}
	if len(report.ValidRecords) != 2 || report.ValidRecords[1].Flight() != "DEF456" {
		t.Errorf("Unexpected records: %v", report.ValidRecords)
	}
	if report.ID == "" {
		t.Error("Report ID should be set")
	}
}

func TestAnalyze_MissingFile(t *testing.T) {
	env := testEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	out, err := execute(t, NewAnalyzeCommand(), env, "", missing)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(out, "File not found: "+missing) {
		t.Errorf("Output missing not-found notice:\n%s", out)
	}
	if strings.Contains(out, "OK: 0") {
		t.Errorf("Missing file must not be reported as an empty analysis:\n%s", out)
	}
}

func TestAnalyze_ContinuesAfterMissingFile(t *testing.T) {
	env := testEnv(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	writeFile(t, good, "09:25:30 ABC123 XYZ\n")

	out, err := execute(t, NewAnalyzeCommand(), env, "", "-q", filepath.Join(dir, "missing.txt"), good)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(out, good+": 1 OK, 0 invalid") {
		t.Errorf("Readable file should still be analyzed:\n%s", out)
	}
}

func TestAnalyze_UnknownFormat(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, mixedInput)

	if _, err := execute(t, NewAnalyzeCommand(), env, "", "-o", "xml"); err == nil {
		t.Error("Expected error for unknown output format")
	}
}

func TestAnalyze_InvalidWebhookURL(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, mixedInput)

	_, err := execute(t, NewAnalyzeCommand(), env, "", "--webhook-url", "ftp://example.com")
	if err == nil || !strings.Contains(err.Error(), "--webhook-url") {
		t.Errorf("Expected webhook url error, got %v", err)
	}
}

func TestAnalyze_Webhook(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, mixedInput)

	var (
		got       output.Report
		auth      string
		reportHdr string
		calls     int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		auth = r.Header.Get("Authorization")
		reportHdr = r.Header.Get("X-Flightcheck-Report")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Webhook body is not a report: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := execute(t, NewAnalyzeCommand(), env, "", "-q",
		"--webhook-url", srv.URL,
		"--webhook-token", "secret",
		"--webhook-trigger", "always")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if calls != 1 {
		t.Fatalf("Webhook called %d times, want 1", calls)
	}
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q", auth)
	}
	if reportHdr == "" || reportHdr != got.ID {
		t.Errorf("X-Flightcheck-Report = %q, report ID = %q", reportHdr, got.ID)
	}
	if got.Summary.Invalid != 2 {
		t.Errorf("Webhook summary = %+v", got.Summary)
	}
}

func TestAnalyze_WebhookNotFiredWhenClean(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, "09:25:30 ABC123 XYZ\n")

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	if _, err := execute(t, NewAnalyzeCommand(), env, "", "-q", "--webhook-url", srv.URL); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("on_issues webhook fired for a clean file")
	}
}

func TestFormats(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, "09:25:30 A B\n092530 A B\n10:00:00 C D\n\nnoon A B\n")

	out, err := execute(t, NewFormatsCommand(), env, "")
	if err != nil {
		t.Fatalf("formats failed: %v", err)
	}
	for _, want := range []string{
		"colon    09:25:30",
		"compact  092530",
		"(5 lines):",
		"colon         2",
		"compact       1",
		"unrecognized  2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestRules(t *testing.T) {
	env := testEnv(t)

	out, err := execute(t, NewRulesCommand(), env, "")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}
	if !strings.Contains(out, "Sample line: 09:25:30 ABC123 XYZ") {
		t.Errorf("Unexpected output:\n%s", out)
	}
	if !strings.Contains(out, env.Config.StorePath) {
		t.Errorf("Output should name the store:\n%s", out)
	}
}

func TestMenu_QuickCheckAndStored(t *testing.T) {
	env := testEnv(t)
	input := strings.Join([]string{
		"1", "09:25:30 ABC123 XYZ", "",
		"3", "",
		"7",
	}, "\n") + "\n"

	out, err := execute(t, NewMenuCommand(), env, input)
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	for _, want := range []string{
		"FLIGHT CHECKER KID FRIENDLY MODE",
		"Record valid.",
		"Last record this session:",
		"Time: 09:25:30",
		"1) 09:25:30 ABC123 XYZ",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[2J") {
		t.Error("Screen should not be cleared when output is not a terminal")
	}
}

func TestMenu_GuidedThenExit(t *testing.T) {
	env := testEnv(t)
	input := "2\n9\n5\n0\nAB1\nX2Z\n\n7\n"

	out, err := execute(t, NewMenuCommand(), env, input)
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out, "It looks like: 09:05:00 AB1 X2Z") {
		t.Errorf("Wizard did not finish:\n%s", out)
	}
	if got := readFile(t, env.Config.StorePath); got != "09:05:00 AB1 X2Z\n" {
		t.Errorf("Store content = %q", got)
	}
}

func TestMenu_AnalyzeExport(t *testing.T) {
	env := testEnv(t)
	writeFile(t, env.Config.DefaultInput, mixedInput)

	out, err := execute(t, NewMenuCommand(), env, "5\n\ny\n\n7\n")
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out, "Export valid records to CSV? (y/N)") {
		t.Errorf("Missing export prompt:\n%s", out)
	}
	if !strings.Contains(out, "Wrote 2 records to") {
		t.Errorf("Missing export notice:\n%s", out)
	}
	csvPath := output.ExportPath(env.Config.DefaultInput, env.Config.ExportSuffix)
	if _, err := os.Stat(csvPath); err != nil {
		t.Errorf("Export not written: %v", err)
	}
}

func TestMenu_SaveFailureReturnsToMenu(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"quick check", "1\n09:25:30 ABC123 XYZ\n\n6\n\n7\n"},
		{"guided", "2\n9\n5\n0\nAB1\nX2Z\n\n6\n\n7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnv(t)
			env.Config.StorePath = filepath.Join(t.TempDir(), "missing", "latestValues.txt")

			out, err := execute(t, NewMenuCommand(), env, tt.input)
			if err != nil {
				t.Fatalf("menu failed: %v", err)
			}
			for _, want := range []string{
				"Could not open " + env.Config.StorePath + " to save the entry.",
				"Quick rules and examples:",
				"Goodbye!",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("Output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCheck_SaveFailureIsAnError(t *testing.T) {
	env := testEnv(t)
	env.Config.StorePath = filepath.Join(t.TempDir(), "missing", "latestValues.txt")

	out, err := execute(t, NewCheckCommand(), env, "", "--save", "09:25:30 ABC123 XYZ")
	if err == nil {
		t.Fatal("Expected error when the store cannot be written")
	}
	if !strings.Contains(out, "Could not open") {
		t.Errorf("Output missing save failure notice:\n%s", out)
	}
}

func TestMenu_UnknownOptionAndEOF(t *testing.T) {
	env := testEnv(t)

	out, err := execute(t, NewMenuCommand(), env, "9\n\n")
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out, "Unknown option.") {
		t.Errorf("Missing unknown option notice:\n%s", out)
	}
}

func TestRunValidate_Success(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	dataPath := filepath.Join(tmpDir, "data.txt")
	writeFile(t, dataPath, "09:25:30 ABC123 XYZ\n")

	cfg := `store_path: saved.txt
default_input: ` + dataPath + `
strict_tokens: true
webhooks:
  - name: ops
    url: https://example.com/hook
    trigger: always
`
	writeFile(t, configPath, cfg)

	out, err := execute(t, NewValidateCommand(), testEnv(t), "", configPath)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	for _, want := range []string{"Configuration valid!", "Strict tokens: true", "1. [always] ops"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warning") {
		t.Errorf("Unexpected warning:\n%s", out)
	}
}

func TestRunValidate_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, "log:\n  level: loud\n")

	if _, err := execute(t, NewValidateCommand(), testEnv(t), "", configPath); err == nil {
		t.Error("Expected validation error")
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if ColorEnabled(&buf, false) {
		t.Error("A buffer is not a terminal")
	}
	if ColorEnabled(os.Stdout, true) {
		t.Error("Disabled colors must stay disabled")
	}
}

func TestEnvFromFallsBackToDefaults(t *testing.T) {
	env, err := envFrom(context.Background())
	if err != nil {
		t.Fatalf("envFrom failed: %v", err)
	}
	if env.Config.ExportSuffix != config.DefaultExportSuffix {
		t.Errorf("ExportSuffix = %q", env.Config.ExportSuffix)
	}
}
