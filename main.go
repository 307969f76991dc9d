package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"pngexport/internal/adapters/converter"
	"pngexport/internal/adapters/decoder"
	"pngexport/internal/adapters/encoder"
	"pngexport/internal/adapters/scanner"
	"pngexport/internal/adapters/sink"
	"pngexport/internal/core/domain"
	"pngexport/internal/core/service"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	pflag.Float64("scale", 0.5, "scale factor applied to both dimensions")
	pflag.Int("min-width", 1600, "width above which an image counts as high-resolution")
	pflag.Int("min-height", 1200, "height above which an image counts as high-resolution")
	pflag.Float64("size-ratio", 1.0, "keep output only when smaller than source size times this ratio")
	pflag.Bool("force", false, "write output even when it is not smaller than the source")
	pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Usage = usage
	pflag.Parse()

	viper.SetEnvPrefix("pngexport")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("could not bind flags")
	}

	args := pflag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}

	cfg := domain.Config{
		InputDir:  args[0],
		OutputDir: args[1],
		Scale:     viper.GetFloat64("scale"),
		MinWidth:  viper.GetInt("min-width"),
		MinHeight: viper.GetInt("min-height"),
		SizeRatio: viper.GetFloat64("size-ratio"),
		Force:     viper.GetBool("force"),
		Verbose:   viper.GetBool("verbose"),
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	info, err := os.Stat(cfg.InputDir)
	if err != nil || !info.IsDir() {
		log.Fatal().Str("path", cfg.InputDir).Msg("input directory does not exist")
	}

	source := scanner.NewDirScanner(cfg.InputDir)
	if err := source.Verify(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.InputDir).Msg("input directory is not readable")
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("path", cfg.OutputDir).Msg("could not create output directory")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	exporter := service.NewExporter(
		source,
		decoder.NewExifDecoder(),
		converter.NewLanczosConverter(),
		encoder.NewPNGEncoder(),
		sink.NewDiskSink(cfg.OutputDir),
		cfg,
	)

	summary, err := exporter.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("run aborted")
		os.Exit(1)
	}

	log.Info().
		Int("converted", summary.Converted).
		Int("skippedLowRes", summary.SkippedLowRes).
		Int("skippedNotSmaller", summary.SkippedNotSmaller).
		Int("failed", summary.Failed).
		Str("bytesIn", humanize.Bytes(uint64(summary.BytesIn))).
		Str("bytesOut", humanize.Bytes(uint64(summary.BytesOut))).
		Msg("finished")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: pngexport [flags] <input_directory> <output_directory>\n\n")
	pflag.PrintDefaults()
}
