package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_SetsFields(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := WrapError(cause, CategoryFileSystem, "read group directory").
		Fatal().
		WithContext("group", "vueuse").
		Build()

	require.Equal(t, CategoryFileSystem, err.Category())
	require.Equal(t, SeverityFatal, err.Severity())
	require.True(t, err.IsFatal())
	require.Equal(t, "read group directory", err.Message())
	require.ErrorIs(t, err, cause)

	group, ok := err.Context().GetString("group")
	require.True(t, ok)
	require.Equal(t, "vueuse", group)
	require.Equal(t, "[filesystem] read group directory: permission denied", err.Error())
}

func TestBuilder_DefaultsToErrorSeverity(t *testing.T) {
	err := NewError(CategoryBuild, "empty group").Build()
	require.Equal(t, SeverityError, err.Severity())
	require.False(t, err.IsFatal())
	require.Equal(t, "[build] empty group", err.Error())
}

func TestWithContext_DoesNotMutateOriginal(t *testing.T) {
	base := NewError(CategoryConfig, "bad config").WithContext("file", "a.yaml").Build()
	derived := base.WithContext("line", 3)

	_, ok := base.Context().Get("line")
	require.False(t, ok)
	v, ok := derived.Context().Get("line")
	require.True(t, ok)
	require.Equal(t, 3, v)
	f, _ := derived.Context().GetString("file")
	require.Equal(t, "a.yaml", f)
}

func TestAsClassified_FindsWrapped(t *testing.T) {
	inner := NewError(CategoryFrontmatter, "malformed block").Build()
	wrapped := fmt.Errorf("scan drafts: %w", inner)

	ce, ok := AsClassified(wrapped)
	require.True(t, ok)
	require.Same(t, inner, ce)
	require.True(t, HasCategory(wrapped, CategoryFrontmatter))
	require.Equal(t, CategoryFrontmatter, GetCategory(wrapped))
	require.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
}

func TestIs_MatchesCategoryAndMessage(t *testing.T) {
	a := NewError(CategoryBuild, "stage failed").Build()
	b := NewError(CategoryBuild, "stage failed").WithContext("stage", "x").Build()
	c := NewError(CategoryBuild, "other").Build()

	require.ErrorIs(t, a, b)
	require.NotErrorIs(t, a, c)
}

func TestErrorContext_Merge(t *testing.T) {
	var empty ErrorContext
	other := ErrorContext{"a": 1}
	require.Equal(t, other, empty.Merge(other))

	left := ErrorContext{"a": 1, "b": 2}
	merged := left.Merge(ErrorContext{"b": 3})
	require.Equal(t, ErrorContext{"a": 1, "b": 3}, merged)
	require.Equal(t, 2, left["b"])
}
