package build

import (
	"context"
	"errors"

	"git.home.luguber.info/inful/docnav/internal/drafts"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// ClassifyError maps a stage failure onto a ClassifiedError so the CLI
// can pick an exit code. Already classified errors pass through.
func ClassifyError(stage StageName, err error) error {
	if _, ok := ferrors.AsClassified(err); ok {
		return err
	}

	var b *ferrors.ErrorBuilder
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		b = ferrors.WrapError(err, ferrors.CategoryRuntime, "build canceled")
	case errors.Is(err, nav.ErrRootNotFound):
		b = ferrors.WrapError(err, ferrors.CategoryFileSystem, "documentation root not readable")
	case errors.Is(err, nav.ErrGroupRead):
		b = ferrors.WrapError(err, ferrors.CategoryFileSystem, "group directory not readable")
	case errors.Is(err, drafts.ErrMalformedFrontmatter):
		b = ferrors.WrapError(err, ferrors.CategoryFrontmatter, "malformed frontmatter")
	case errors.Is(err, drafts.ErrDraftsDirNotFound):
		b = ferrors.WrapError(err, ferrors.CategoryFileSystem, "drafts directory not readable")
	case stage == StageWriteOutputs:
		b = ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write outputs")
	default:
		b = ferrors.WrapError(err, ferrors.CategoryBuild, "stage failed")
	}
	return b.Fatal().WithContext("stage", string(stage)).Build()
}
