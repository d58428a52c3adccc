package build

import "context"

// StageName identifies a pipeline stage in logs, metrics and reports.
type StageName string

const (
	StageDiscoverGroups  StageName = "discover_groups"
	StageBuildNavigation StageName = "build_navigation"
	StageScanFrontmatter StageName = "scan_frontmatter"
	StageWriteOutputs    StageName = "write_outputs"
)

// Stage executes one step against the shared run state.
type Stage func(ctx context.Context, st *State) error

// StageDef pairs a stage name with its function. Enabled reports whether the
// stage runs for the current configuration; nil means always.
type StageDef struct {
	Name    StageName
	Fn      Stage
	Enabled func(st *State) bool
}

// DefaultStages returns the pipeline in execution order.
func DefaultStages() []StageDef {
	return []StageDef{
		{Name: StageDiscoverGroups, Fn: stageDiscoverGroups},
		{Name: StageBuildNavigation, Fn: stageBuildNavigation},
		{Name: StageScanFrontmatter, Fn: stageScanFrontmatter, Enabled: func(st *State) bool { return st.Config.Frontmatter.Enabled }},
		{Name: StageWriteOutputs, Fn: stageWriteOutputs},
	}
}

// FrontmatterStages scans the drafts directory and writes only the
// frontmatter outputs.
func FrontmatterStages() []StageDef {
	return []StageDef{
		{Name: StageScanFrontmatter, Fn: stageScanFrontmatter},
		{Name: StageWriteOutputs, Fn: stageWriteOutputs},
	}
}
