package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// UpdateGoldenEnv names the environment variable that makes Golden rewrite
// files instead of comparing.
const UpdateGoldenEnv = "GOLDEN_UPDATE"

// GoldenPath returns the path of the golden file for name.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// Golden compares got against testdata/<name>.golden and reports the first
// line that differs.
func Golden(t testing.TB, name string, got string) {
	t.Helper()

	path := GoldenPath(name)
	if os.Getenv(UpdateGoldenEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden file %s: %v\ngot:\n%s", path, err, got)
	}
	if diff := firstDiff(string(want), got); diff != "" {
		t.Errorf("%s: %s\nwant:\n%s\ngot:\n%s", path, diff, want, got)
	}
}

func firstDiff(want, got string) string {
	if want == got {
		return ""
	}
	wl := strings.Split(want, "\n")
	gl := strings.Split(got, "\n")
	for i := 0; i < len(wl) || i < len(gl); i++ {
		var w, g string
		if i < len(wl) {
			w = wl[i]
		}
		if i < len(gl) {
			g = gl[i]
		}
		if w != g || i >= len(wl) || i >= len(gl) {
			return fmt.Sprintf("line %d: want %q, got %q", i+1, w, g)
		}
	}
	return "outputs differ"
}

// Transcript records shell input lines alongside what each one printed.
type Transcript struct {
	b strings.Builder
}

// Record appends one step. A non-zero code is noted after the output.
func (tr *Transcript) Record(input, stdout, stderr string, code int) {
	fmt.Fprintf(&tr.b, "$ %s\n", input)
	tr.b.WriteString(stdout)
	tr.b.WriteString(stderr)
	if code != 0 {
		fmt.Fprintf(&tr.b, "[exit %d]\n", code)
	}
}

func (tr *Transcript) String() string {
	return tr.b.String()
}
