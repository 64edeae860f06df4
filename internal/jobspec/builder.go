package jobspec

import (
	"fmt"
	"path/filepath"

	"photoflow/internal/bracket"
	"photoflow/internal/scan"
)

const hdrSuffix = "_HDR"

// BatchEditJob edits one photo through the exposure/lens/color pipeline.
type BatchEditJob struct {
	input      scan.InputItem
	outputPath string
	toggles    Toggles
	format     Format
	quality    int
}

func (j *BatchEditJob) Kind() Kind         { return KindBatchEdit }
func (j *BatchEditJob) ID() string         { return j.input.Name }
func (j *BatchEditJob) OutputPath() string { return j.outputPath }

// Quality returns the (already clamped) JPEG quality.
func (j *BatchEditJob) Quality() int { return j.quality }

func (j *BatchEditJob) Params() map[string]any {
	return map[string]any{
		"inputFiles":    []string{j.input.Path},
		"outputDir":     filepath.Dir(j.outputPath),
		"applyExposure": j.toggles.Exposure,
		"applyLens":     j.toggles.Lens,
		"applyColor":    j.toggles.Color,
		"saveFormat":    string(j.format),
		"jpegQuality":   j.quality,
	}
}

// HDRMergeJob merges one bracket set into a single HDR image.
type HDRMergeJob struct {
	set          bracket.Set
	outputPath   string
	removeGhosts bool
	output32Bit  bool
}

func (j *HDRMergeJob) Kind() Kind         { return KindHDRMerge }
func (j *HDRMergeJob) ID() string         { return j.set.ID }
func (j *HDRMergeJob) OutputPath() string { return j.outputPath }

func (j *HDRMergeJob) Params() map[string]any {
	inputs := make([]string, 0, len(j.set.Items))
	for _, item := range j.set.Items {
		inputs = append(inputs, item.Path)
	}
	return map[string]any{
		"inputFiles":   inputs,
		"outputFile":   j.outputPath,
		"removeGhosts": j.removeGhosts,
		"bit32":        j.output32Bit,
	}
}

// BatchOptions carries user settings for batch edit job construction.
type BatchOptions struct {
	OutputDir string
	Toggles   Toggles
	Format    Format
	Quality   int
}

// BuildBatchJobs produces one job per input item in input order. The returned
// notes describe normalizations the caller should surface to the user, such
// as JPEG quality clamping.
func BuildBatchJobs(items []scan.InputItem, opts BatchOptions) ([]Job, []string) {
	var notes []string
	quality := opts.Quality
	if opts.Format == FormatJPEG {
		if clamped := clampQuality(quality); clamped != quality {
			notes = append(notes, fmt.Sprintf("jpeg quality %d out of range; clamped to %d", quality, clamped))
			quality = clamped
		}
	}

	jobs := make([]Job, 0, len(items))
	for _, item := range items {
		jobs = append(jobs, &BatchEditJob{
			input:      item,
			outputPath: batchOutputPath(opts.OutputDir, item, opts.Format),
			toggles:    opts.Toggles,
			format:     opts.Format,
			quality:    quality,
		})
	}
	return jobs, notes
}

// HDROptions carries user settings for HDR merge job construction.
type HDROptions struct {
	OutputDir    string
	RemoveGhosts bool
	Output32Bit  bool
}

// BuildHDRJobs produces one job per bracket set in input order. The output
// file name derives from the set's first exposure plus the HDR suffix.
func BuildHDRJobs(sets []bracket.Set, opts HDROptions) []Job {
	jobs := make([]Job, 0, len(sets))
	for _, set := range sets {
		jobs = append(jobs, &HDRMergeJob{
			set:          set,
			outputPath:   filepath.Join(opts.OutputDir, set.ID+hdrSuffix+FormatTIFF.Extension()),
			removeGhosts: opts.RemoveGhosts,
			output32Bit:  opts.Output32Bit,
		})
	}
	return jobs
}

func batchOutputPath(outputDir string, item scan.InputItem, format Format) string {
	name := item.Name
	if ext := filepath.Ext(name); !format.matches(ext) {
		name = item.Stem() + format.Extension()
	}
	return filepath.Join(outputDir, name)
}

func clampQuality(quality int) int {
	if quality < 0 {
		return 0
	}
	if quality > 100 {
		return 100
	}
	return quality
}
