package domain

import "fmt"

// Config holds the run parameters. It is built once at startup and never
// mutated afterwards.
type Config struct {
	InputDir  string
	OutputDir string
	Scale     float64
	MinWidth  int
	MinHeight int
	SizeRatio float64
	Force     bool
	Verbose   bool
}

// Validate reports the first setup error in the configuration. Validation
// failures are fatal, the run must not start with a broken config.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%w: %g", ErrScaleOutOfRange, c.Scale)
	}
	if c.SizeRatio <= 0 {
		return fmt.Errorf("%w: %g", ErrSizeRatioOutOfRange, c.SizeRatio)
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return ErrNegativeThreshold
	}
	return nil
}

type Dimensions struct {
	Width  int
	Height int
}

// HighRes reports whether the dimensions exceed either threshold.
func (d Dimensions) HighRes(minWidth, minHeight int) bool {
	return d.Width > minWidth || d.Height > minHeight
}

// ImageTask describes one source file on its way through the pipeline.
// Dimensions and HasAlpha are filled in as the stages learn them.
type ImageTask struct {
	SourcePath string
	RelPath    string
	SourceSize int64
	Dimensions Dimensions
	HasAlpha   bool
}

type Outcome string

const (
	Converted         Outcome = "converted"
	SkippedLowRes     Outcome = "skipped_low_res"
	SkippedNotSmaller Outcome = "skipped_not_smaller"
	Failed            Outcome = "failed"
)

// ConversionResult is the terminal state of one task. Every task ends in
// exactly one outcome within a single run.
type ConversionResult struct {
	Task       ImageTask
	Outcome    Outcome
	OutputPath string
	InputSize  int64
	OutputSize int64
	Err        error
}

// Summary aggregates the per-file outcomes of a run.
type Summary struct {
	Converted         int
	SkippedLowRes     int
	SkippedNotSmaller int
	Failed            int
	BytesIn           int64
	BytesOut          int64
}

// Add counts a result into the summary. Byte totals only cover converted
// files.
func (s *Summary) Add(result ConversionResult) {
	switch result.Outcome {
	case Converted:
		s.Converted++
		s.BytesIn += result.InputSize
		s.BytesOut += result.OutputSize
	case SkippedLowRes:
		s.SkippedLowRes++
	case SkippedNotSmaller:
		s.SkippedNotSmaller++
	case Failed:
		s.Failed++
	}
}

// Total returns the number of files that reached a terminal outcome.
func (s Summary) Total() int {
	return s.Converted + s.SkippedLowRes + s.SkippedNotSmaller + s.Failed
}
