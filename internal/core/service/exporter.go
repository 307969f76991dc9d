package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pngexport/internal/core/domain"
	"pngexport/internal/core/port"
)

// Exporter runs the conversion pipeline: walk, filter, decode, scale, encode,
// write. Files are processed strictly one at a time, each image buffer goes
// out of scope before the next file is touched.
type Exporter struct {
	source    port.ImageSource
	decoder   port.ImageDecoder
	converter port.ImageConverter
	encoder   port.ImageEncoder
	sink      port.ImageSink
	cfg       domain.Config
}

func NewExporter(source port.ImageSource, decoder port.ImageDecoder, converter port.ImageConverter,
	encoder port.ImageEncoder, sink port.ImageSink, cfg domain.Config) *Exporter {
	return &Exporter{source: source, decoder: decoder, converter: converter, encoder: encoder,
		sink: sink, cfg: cfg}
}

// Run processes every image under the input root and returns the run
// summary. Per-file failures are logged, counted and do not stop the run; a
// walk-level error aborts it.
func (e *Exporter) Run(ctx context.Context) (domain.Summary, error) {
	var summary domain.Summary

	for task, err := range e.source.Images(ctx) {
		if err != nil {
			return summary, fmt.Errorf("walking input tree: %w", err)
		}

		summary.Add(e.processOne(task))
	}

	return summary, nil
}

func (e *Exporter) processOne(task domain.ImageTask) domain.ConversionResult {
	l := log.With().Str("path", task.SourcePath).Logger()

	dims, err := e.decoder.Probe(task.SourcePath)
	if err != nil {
		l.Warn().Err(err).Msg("failed reading image header")
		return domain.ConversionResult{Task: task, Outcome: domain.Failed, Err: err}
	}

	task.Dimensions = dims

	if !dims.HighRes(e.cfg.MinWidth, e.cfg.MinHeight) {
		l.Debug().
			Int("width", dims.Width).
			Int("height", dims.Height).
			Msg("skipping low-resolution image")
		return domain.ConversionResult{Task: task, Outcome: domain.SkippedLowRes}
	}

	img, err := e.decoder.Decode(task.SourcePath)
	if err != nil {
		l.Warn().Err(err).Msg("failed decoding image")
		return domain.ConversionResult{Task: task, Outcome: domain.Failed, Err: err}
	}

	task.HasAlpha = e.encoder.HasAlpha(img)

	scaled := e.converter.Scale(img, e.cfg.Scale)

	data, err := e.encoder.Encode(scaled)
	if err != nil {
		l.Warn().Err(err).Msg("failed encoding image")
		return domain.ConversionResult{Task: task, Outcome: domain.Failed, Err: err}
	}

	if !e.cfg.Force && int64(len(data)) >= int64(float64(task.SourceSize)*e.cfg.SizeRatio) {
		l.Debug().
			Int64("sourceSize", task.SourceSize).
			Int("outputSize", len(data)).
			Msg("skipping, output would not be smaller")
		return domain.ConversionResult{Task: task, Outcome: domain.SkippedNotSmaller}
	}

	out, err := e.sink.Write(task, data)
	if err != nil {
		l.Warn().Err(err).Msg("failed writing output file")
		return domain.ConversionResult{Task: task, Outcome: domain.Failed, Err: err}
	}

	bounds := scaled.Bounds()
	l.Debug().
		Str("output", out).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Bool("alpha", task.HasAlpha).
		Msg("converted image")

	return domain.ConversionResult{
		Task:       task,
		Outcome:    domain.Converted,
		OutputPath: out,
		InputSize:  task.SourceSize,
		OutputSize: int64(len(data)),
	}
}
