package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raphi011/pomdot/internal/config"
	"github.com/raphi011/pomdot/internal/countdown"
	"github.com/raphi011/pomdot/internal/countdown/countdowntest"
	"github.com/raphi011/pomdot/internal/parse"
	"github.com/raphi011/pomdot/internal/settings"
)

var start = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

// result captures one pomdot invocation.
type result struct {
	stdout string
	stderr string
	err    error
}

func (r result) code() int { return exitCode(r.err) }

// execute runs pomdot with args against a fake clock.
func execute(t *testing.T, ctx context.Context, clock countdown.Clock, args ...string) result {
	t.Helper()

	if clock == nil {
		clock = countdowntest.New(start)
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(clock)
	cmd.SetContext(ctx)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// configPath returns a config path in a fresh temp dir, optionally
// writing content to it.
func configPath(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRun_ShortSession(t *testing.T) {
	t.Parallel()

	clock := countdowntest.New(start)
	r := execute(t, context.Background(), clock, "--time", "1s,1s,0", "--no-bell", "--config", configPath(t, ""))
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}

	got := r.stdout
	if !strings.HasPrefix(got, "Pomdot ") {
		t.Errorf("output should start with the banner, got %q", got)
	}
	for _, want := range []string{
		"Stage:     Focus 1/1\n",
		"Stage:     Rest 1/1\n",
		"Stage: Focus 1/1 | Remaining: 00:00:01 [" + strings.Repeat("#", 30) + "]",
		"Stage: Rest 1/1 | Remaining: 00:00:00 [" + strings.Repeat("-", 30) + "]",
		countdown.HideCursorSeq,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%q", want, got)
		}
	}
	if strings.Contains(got, countdown.Bell) {
		t.Error("--no-bell run should not ring")
	}
	if !strings.Contains(got, countdown.ShowCursorSeq+"\nDone!\n") {
		t.Error("cursor should be restored before the completion notice")
	}
	if clock.Sleeps() != 2 {
		t.Errorf("sleeps = %d, want 2", clock.Sleeps())
	}
}

func TestRun_ThreeTimeTokens(t *testing.T) {
	t.Parallel()

	r := execute(t, context.Background(), nil, "-t", "1s", "2s", "1", "--compact", "--config", configPath(t, ""))
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}
	for _, label := range []string{"Focus 1/2", "Rest 1/2", "Focus 2/2", "Rest 2/2"} {
		if !strings.Contains(r.stdout, "Stage: "+label+" |") {
			t.Errorf("output missing stage %q", label)
		}
	}
	if strings.Contains(r.stdout, "Start:") {
		t.Error("--compact output should have no stage headers")
	}
}

func TestRun_Bells(t *testing.T) {
	t.Parallel()

	r := execute(t, context.Background(), nil, "-t", "1s,1s,1", "--config", configPath(t, ""))
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}
	// three transitions plus completion
	if n := strings.Count(r.stdout, countdown.Bell); n != 4 {
		t.Errorf("bell count = %d, want 4", n)
	}
	if !strings.HasSuffix(r.stdout, "\nDone!"+countdown.Bell+"\n") {
		t.Errorf("output should end with the ringing completion notice, got %q", r.stdout)
	}
}

func TestRun_ConfigValues(t *testing.T) {
	t.Parallel()

	path := configPath(t, "time = [\"2s\", \"1s\", \"0\"]\ncompact = true\nno_bell = true\nbar_width = 10\n")
	r := execute(t, context.Background(), nil, "--config", path)
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}
	if !strings.Contains(r.stdout, "Stage: Focus 1/1 | Remaining: 00:00:02 [##########]") {
		t.Errorf("config values not applied:\n%q", r.stdout)
	}
	if strings.Contains(r.stdout, "Start:") || strings.Contains(r.stdout, countdown.Bell) {
		t.Errorf("compact and no_bell from config not applied:\n%q", r.stdout)
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := countdowntest.New(start)
	clock.OnSleep = func(n int) {
		if n == 3 {
			cancel()
		}
	}

	r := execute(t, ctx, clock, "-t", "25m,5m,0", "--config", configPath(t, ""))
	if !errors.Is(r.err, errCancelled) {
		t.Fatalf("execute() error = %v, want errCancelled", r.err)
	}
	if r.code() != exitCancelled {
		t.Errorf("exit code = %d, want %d", r.code(), exitCancelled)
	}
	if !strings.HasSuffix(r.stdout, "\nCancelled.\n"+countdown.ShowCursorSeq) {
		t.Errorf("output should end with the cancel notice and cursor restore, got %q", r.stdout)
	}
	if strings.Contains(r.stdout, "Done!") || strings.Contains(r.stdout, "Rest 1/1") {
		t.Errorf("cancelled run should stop immediately:\n%q", r.stdout)
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	path := configPath(t, "bar_width = 15\nno_bell = true\n")
	r := execute(t, context.Background(), nil, "--status", "--config", path, "--time", "25m", "5m", "0", "--bell")
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}

	want := banner() + "\n" +
		"config_path = " + path + "\n" +
		`time = ["25m", "5m", "0"] (source: cli)` + "\n" +
		"compact = false (source: default)\n" +
		"no_bell = false (source: cli)\n" +
		"bar_width = 15 (source: config)\n"
	if r.stdout != want {
		t.Errorf("status output =\n%s\nwant\n%s", r.stdout, want)
	}
}

func TestStatus_ToggleLastWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"compact then no-compact", []string{"--compact", "--no-compact"}, "compact = false (source: cli)"},
		{"no-compact then compact", []string{"--no-compact", "--compact"}, "compact = true (source: cli)"},
		{"no-bell then bell", []string{"--no-bell", "--bell"}, "no_bell = false (source: cli)"},
		{"bell then no-bell", []string{"--bell", "--no-bell"}, "no_bell = true (source: cli)"},
		{"neither", nil, "no_bell = false (source: default)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"--status", "--config", configPath(t, "")}, tt.args...)
			r := execute(t, context.Background(), nil, args...)
			if r.err != nil {
				t.Fatalf("execute() error: %v", r.err)
			}
			if !strings.Contains(r.stdout, tt.want+"\n") {
				t.Errorf("status output missing %q:\n%s", tt.want, r.stdout)
			}
		})
	}
}

func TestStatus_Verbose(t *testing.T) {
	t.Parallel()

	r := execute(t, context.Background(), nil, "-v", "--status", "--config", configPath(t, ""))
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}
	for _, want := range []string{"resolved setting", "key=bar_width", "source=default"} {
		if !strings.Contains(r.stderr, want) {
			t.Errorf("verbose log missing %q:\n%s", want, r.stderr)
		}
	}

	r = execute(t, context.Background(), nil, "--status", "--config", configPath(t, "# empty\n"))
	if r.stderr != "" {
		t.Errorf("non-verbose run wrote diagnostics: %q", r.stderr)
	}
}

func TestMissingConfigNotice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantNotice bool
	}{
		{"status", []string{"--status"}, true},
		{"quiet", []string{"--status", "-q"}, false},
		{"save creates the file", []string{"--save-config"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := configPath(t, "")
			r := execute(t, context.Background(), nil, append(tt.args, "--config", path)...)
			if r.err != nil {
				t.Fatalf("execute() error: %v", r.err)
			}
			got := strings.Contains(r.stderr, "config file "+path+" not found, using defaults")
			if got != tt.wantNotice {
				t.Errorf("notice printed = %v, want %v (stderr %q)", got, tt.wantNotice, r.stderr)
			}
		})
	}
}

func TestRun_FlagsAroundTime(t *testing.T) {
	t.Parallel()

	r := execute(t, context.Background(), nil, "--compact", "-t", "1s", "1s", "0", "--no-bell", "--config", configPath(t, ""))
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}
	if !strings.Contains(r.stdout, "Stage: Rest 1/1 |") || strings.Contains(r.stdout, countdown.Bell) {
		t.Errorf("unexpected output:\n%q", r.stdout)
	}
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", config.FileName)

	r := execute(t, context.Background(), nil, "--write-config", "--config", path)
	if r.err != nil {
		t.Fatalf("first write error: %v", r.err)
	}
	if r.stdout != "Wrote config: "+path+"\n" {
		t.Errorf("stdout = %q", r.stdout)
	}
	if got := readFile(t, path); got != config.Render(config.Defaults()) {
		t.Errorf("written config is not the default template:\n%s", got)
	}

	r = execute(t, context.Background(), nil, "--write-config", "--config", path)
	if !errors.Is(r.err, config.ErrAlreadyExists) {
		t.Fatalf("second write error = %v, want ErrAlreadyExists", r.err)
	}
	if r.code() != exitUsage {
		t.Errorf("exit code = %d, want %d", r.code(), exitUsage)
	}

	if err := os.WriteFile(path, []byte("bar_width = 99\n"), 0644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	r = execute(t, context.Background(), nil, "--write-config", "--force", "--config", path)
	if r.err != nil {
		t.Fatalf("forced write error: %v", r.err)
	}
	if got := readFile(t, path); got != config.Render(config.Defaults()) {
		t.Errorf("forced write did not restore defaults:\n%s", got)
	}
}

func TestWriteConfig_IgnoresBrokenConfig(t *testing.T) {
	t.Parallel()

	path := configPath(t, "time = [\n")
	r := execute(t, context.Background(), nil, "--write-config", "--force", "--config", path)
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}
}

func TestSaveConfig(t *testing.T) {
	t.Parallel()

	path := configPath(t, "time = [\"50\", \"10\", \"2\"]\nbar_width = 15\nno_bell = true\n")
	r := execute(t, context.Background(), nil, "--save-config", "--compact", "--config", path)
	if r.err != nil {
		t.Fatalf("execute() error: %v", r.err)
	}

	wantOut := "Saved config: " + path + "\n" +
		`time = ["30", "5", "0"]` + "\n" +
		"compact = true\n" +
		"no_bell = false\n" +
		"bar_width = 30\n"
	if r.stdout != wantOut {
		t.Errorf("stdout =\n%s\nwant\n%s", r.stdout, wantOut)
	}

	raw, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() after save: %v", err)
	}
	// existing file values are not carried over
	if *raw.Time != [3]string{"30", "5", "0"} || !*raw.Compact || *raw.NoBell || *raw.BarWidth != config.DefaultBarWidth {
		t.Errorf("saved config = %+v", raw)
	}
}

func TestSaveConfig_Invalid(t *testing.T) {
	t.Parallel()

	path := configPath(t, "")
	r := execute(t, context.Background(), nil, "--save-config", "-t", "0,5,0", "--config", path)
	if !errors.Is(r.err, parse.ErrNonPositive) {
		t.Fatalf("execute() error = %v, want ErrNonPositive", r.err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid settings should not be saved")
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  string
		args    []string
		want    error
		wantMsg string
	}{
		{"force alone", "", []string{"--force"}, settings.ErrConflictingFlags, "--force"},
		{"write and save", "", []string{"--write-config", "--save-config"}, settings.ErrConflictingFlags, ""},
		{"status and write", "", []string{"--status", "--write-config"}, settings.ErrConflictingFlags, ""},
		{"status and save", "", []string{"--status", "--save-config"}, settings.ErrConflictingFlags, ""},
		{"write with time", "", []string{"--write-config", "-t", "10m", "2m", "1"}, settings.ErrConflictingFlags, "timer options"},
		{"write with bell", "", []string{"--write-config", "--bell"}, settings.ErrConflictingFlags, ""},
		{"two time tokens", "", []string{"-t", "25", "5"}, settings.ErrInvalidTimeArgs, ""},
		{"value before time", "", []string{"1", "-t", "25", "5"}, settings.ErrInvalidTimeArgs, "directly follow"},
		{"flag between time values", "", []string{"-t", "25", "--compact", "5", "0"}, settings.ErrInvalidTimeArgs, "directly follow"},
		{"huge repeat", "", []string{"-t", "25,5,9223372036854775807"}, parse.ErrInvalidFormat, "out of range"},
		{"bad focus", "", []string{"-t", "abc,5,0"}, parse.ErrInvalidFormat, "invalid time"},
		{"zero rest", "", []string{"-t", "25,0s,0"}, parse.ErrNonPositive, ""},
		{"fractional repeat", "", []string{"-t", "25,5,1.5"}, parse.ErrInvalidFormat, "repeat"},
		{"narrow bar", "", []string{"--bar-width", "9"}, parse.ErrBelowMinimum, ""},
		{"bar width text", "", []string{"--bar-width", "wide"}, parse.ErrInvalidFormat, ""},
		{"malformed config", "time = [", nil, config.ErrMalformedConfig, "invalid TOML"},
		{"unknown config key", "bell = true\n", nil, config.ErrUnknownKey, "no_bell"},
		{"bad config time", "time = [\"25\", \"x\", \"0\"]\n", nil, parse.ErrInvalidFormat, ""},
		{"bad config bool", "compact = \"yes\"\n", nil, config.ErrInvalidBoolType, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"--config", configPath(t, tt.config)}, tt.args...)
			r := execute(t, context.Background(), nil, args...)
			if !errors.Is(r.err, tt.want) {
				t.Fatalf("execute(%q) error = %v, want %v", tt.args, r.err, tt.want)
			}
			if r.code() != exitUsage {
				t.Errorf("exit code = %d, want %d", r.code(), exitUsage)
			}
			if !strings.Contains(r.err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", r.err, tt.wantMsg)
			}
			if strings.Contains(r.stdout, "Stage") {
				t.Error("timer should not start after an error")
			}
		})
	}
}

func TestStrayArguments(t *testing.T) {
	t.Parallel()

	r := execute(t, context.Background(), nil, "--config", configPath(t, ""), "25m")
	if r.err == nil {
		t.Fatal("positional arguments without --time should fail")
	}
	if r.code() != exitUsage {
		t.Errorf("exit code = %d, want %d", r.code(), exitUsage)
	}
}

func TestUnknownFlag(t *testing.T) {
	t.Parallel()

	r := execute(t, context.Background(), nil, "--minutes", "5")
	if r.code() != exitUsage {
		t.Errorf("exit code = %d, want %d (err: %v)", r.code(), exitUsage, r.err)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"cancelled", errCancelled, exitCancelled},
		{"usage", usage(errors.New("bad")), exitUsage},
		{"other", errors.New("disk full"), exitFailure},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%s) = %d, want %d", tt.name, got, tt.want)
		}
	}
	if usage(nil) != nil {
		t.Error("usage(nil) should be nil")
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	if got := formatTime([3]string{"25m", "5", "0"}); got != `["25m", "5", "0"]` {
		t.Errorf("formatTime() = %s", got)
	}
}

func TestStatusRows_MatchSources(t *testing.T) {
	t.Parallel()

	s := settings.Settings{Time: [3]string{"25m", "5m", "1"}, NoBell: true, BarWidth: 12}
	r := settings.Resolved{
		Time:     settings.Field[[3]string]{Source: settings.SourceCLI},
		Compact:  settings.Field[bool]{Source: settings.SourceDefault},
		NoBell:   settings.Field[bool]{Source: settings.SourceConfig},
		BarWidth: settings.Field[int]{Source: settings.SourceCLI},
	}

	rows := statusRows(s, r)
	values := settingValues(s)
	for i, ks := range r.Sources() {
		if rows[i].Key != ks.Key || values[i].key != ks.Key {
			t.Errorf("row %d key = %q / %q, want %q", i, rows[i].Key, values[i].key, ks.Key)
		}
		if rows[i].Source != string(ks.Source) {
			t.Errorf("row %d source = %q, want %q", i, rows[i].Source, ks.Source)
		}
		if rows[i].Value != values[i].value {
			t.Errorf("row %d value = %q, want %q", i, rows[i].Value, values[i].value)
		}
	}
	if values[2].value != "true" || values[3].value != "12" {
		t.Errorf("settingValues() = %+v", values)
	}
}
