package build

import (
	"context"
	"errors"

	"git.home.luguber.info/inful/docnav/internal/drafts"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

func stageDiscoverGroups(ctx context.Context, st *State) error {
	groups, err := st.Builder.Groups(ctx, st.DocsFS)
	if err != nil {
		return err
	}
	st.Groups = groups
	st.Report.Groups = len(groups)
	st.Recorder.SetGroups(len(groups))
	st.Logger.Info("Discovered groups", logfields.Count(len(groups)), logfields.Path(st.Config.Docs.Root))
	return nil
}

func stageBuildNavigation(_ context.Context, st *State) error {
	st.Navigation = st.Builder.Render(st.Groups)

	counts := st.Navigation.BucketCounts()
	total := 0
	for bucket, n := range counts {
		st.Recorder.SetBucketEntries(bucket, n)
		total += n
	}
	st.Report.Buckets = counts
	st.Report.Entries = total
	return nil
}

func stageScanFrontmatter(ctx context.Context, st *State) error {
	opts, err := drafts.OptionsFromConfig(st.Config)
	if err != nil {
		return err
	}
	scanner := drafts.NewScanner(st.DraftsFS, opts).WithLogger(st.Logger)
	if st.Dates != nil {
		scanner = scanner.WithDates(st.Dates)
	}
	records, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}
	st.Records = records
	st.Summary = drafts.Summarize(records)
	st.Report.Records = len(records)
	st.Recorder.SetFrontmatterRecords(len(records))
	st.Logger.Info("Scanned frontmatter", logfields.Count(len(records)), logfields.Path(st.Config.Frontmatter.Dir))
	return nil
}

// Output file base names.
const (
	OutputSidebar            = "sidebar"
	OutputNavbar             = "navbar"
	OutputTheme              = "theme"
	OutputFrontmatter        = "frontmatter"
	OutputFrontmatterSummary = "frontmatter-summary"
)

type output struct {
	name string
	v    any
}

// stageWriteOutputs writes whatever earlier stages produced: the navigation
// files when navigation was built, the frontmatter files when a scan ran.
func stageWriteOutputs(_ context.Context, st *State) error {
	w := Writer{Dir: st.Config.Output.Directory, Format: st.Config.Output.Format}

	var files []output
	if st.Navigation != nil {
		files = append(files,
			output{OutputSidebar, st.Navigation.Sidebar},
			output{OutputNavbar, st.Navigation.Navbar},
			output{OutputTheme, NewTheme(st.Navigation, st.Config.Site)},
		)
	}
	if st.Config.Frontmatter.Enabled && st.Records != nil {
		files = append(files,
			output{OutputFrontmatter, st.Records},
			output{OutputFrontmatterSummary, st.Summary},
		)
	}
	if len(files) == 0 {
		return errors.New("nothing to write")
	}

	for _, f := range files {
		path, err := w.Write(f.name, f.v)
		if err != nil {
			return err
		}
		st.Report.Outputs = append(st.Report.Outputs, path)
		st.Logger.Debug("Wrote output", logfields.File(path), logfields.Format(string(w.Format)))
	}
	return nil
}
