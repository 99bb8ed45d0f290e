package phparray

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestGolden renders every input under testdata/cases with the default
// options and compares it with testdata/golden/<name>.want.
func TestGolden(t *testing.T) {
	casesDir := filepath.Join("testdata", "cases")
	goldenDir := filepath.Join("testdata", "golden")

	entries, err := os.ReadDir(casesDir)
	if err != nil {
		t.Fatalf("failed to read cases dir: %v", err)
	}

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		name := strings.TrimSuffix(entry.Name(), ext)

		t.Run(name, func(t *testing.T) {
			casePath := filepath.Join(casesDir, entry.Name())
			wantPath := filepath.Join(goldenDir, name+".want")

			var v *Value
			var err error
			switch ext {
			case ".json":
				data, err := os.ReadFile(casePath)
				if err != nil {
					t.Fatalf("failed to read case: %v", err)
				}
				v, err = FromJSON(data)
				if err != nil {
					t.Fatalf("FromJSON failed: %v", err)
				}
			case ".lua":
				v, err = EvalLuaFile(casePath)
				if err != nil {
					t.Fatalf("EvalLuaFile failed: %v", err)
				}
			default:
				t.Skipf("unknown case type %q", ext)
			}

			wantBytes, err := os.ReadFile(wantPath)
			if err != nil {
				t.Fatalf("failed to read expected output: %v", err)
			}
			expected := strings.TrimSpace(string(wantBytes))

			got := Render(v)
			if got != expected {
				t.Errorf("output mismatch\n  got:\n%s\n  expected:\n%s", got, expected)
			}
		})
	}
}
