package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCodeFor(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", stderrors.New("x"), 1},
		{"validation", ValidationError("x").Build(), 2},
		{"config", NewError(CategoryConfig, "x").Build(), 7},
		{"frontmatter", NewError(CategoryFrontmatter, "x").Build(), 9},
		{"internal", NewError(CategoryInternal, "x").Build(), 10},
		{"filesystem", WrapError(stderrors.New("x"), CategoryFileSystem, "x").Build(), 11},
		{"build", NewError(CategoryBuild, "x").Build(), 11},
		{"runtime", NewError(CategoryRuntime, "x").Build(), 12},
		{"unknown", NewError(ErrorCategory("docs"), "x").Build(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, a.ExitCodeFor(tt.err))
		})
	}
}

func TestFormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	loud := NewCLIErrorAdapter(true, nil)
	err := NewError(CategoryConfig, "missing docs root").WithContext("path", "./docs").Build()

	require.Equal(t, "", quiet.FormatError(nil))
	require.Equal(t, "Error: boom", quiet.FormatError(stderrors.New("boom")))
	require.Equal(t, "Error: [config] missing docs root", quiet.FormatError(err))
	require.Contains(t, loud.FormatError(err), "path:./docs")
}

func TestHandleError_LogsPrintsAndExits(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	a := NewCLIErrorAdapter(false, logger)
	a.out = &out
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(NewError(CategoryFileSystem, "read root").Fatal().Build())

	require.Equal(t, 11, code)
	require.Contains(t, out.String(), "[filesystem] read root")
	require.Contains(t, logs.String(), "category=filesystem")
	require.Contains(t, logs.String(), "severity=fatal")

	code = -1
	a.HandleError(nil)
	require.Equal(t, -1, code)
}
