package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames guards the attribute keys; renaming one breaks log queries.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name string
		key  string
		attr slog.Attr
	}{
		{"BuildID", KeyBuildID, BuildID("b1")},
		{"Stage", KeyStage, Stage("build_navigation")},
		{"Group", KeyGroup, Group("vueuse")},
		{"Bucket", KeyBucket, Bucket("easy")},
		{"Mode", KeyMode, Mode("detailed")},
		{"Path", KeyPath, Path("/tmp/docs")},
		{"File", KeyFile, File("1-useToggle.md")},
		{"Link", KeyLink, Link("/vueuse/1-useToggle")},
		{"Format", KeyFormat, Format("json")},
		{"Event", KeyEvent, Event("CREATE")},
		{"Commit", KeyCommit, Commit("0a1b2c")},
	}
	for _, tc := range cases {
		if tc.attr.Key != tc.key {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.key, tc.attr.Key)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if v := Count(3); v.Key != KeyCount || v.Value.Int64() != 3 {
		t.Fatalf("Count mismatch: %v", v)
	}
	if v := DurationMS(1.5); v.Key != KeyDurationMS || v.Value.Float64() != 1.5 {
		t.Fatalf("DurationMS mismatch: %v", v)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Key != KeyError || a.Value.String() != "" {
		t.Fatalf("nil error attr mismatch: %v", a)
	}
	if a := Error(errors.New("boom")); a.Value.String() != "boom" {
		t.Fatalf("error attr mismatch: %v", a)
	}
}
