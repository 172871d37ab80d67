// SPDX-License-Identifier: EPL-2.0

// Command loudcut keeps the parts of an audio file at or above a volume
// threshold and writes them, joined, to a WAV file.
//
// Usage:
//
//	loudcut --path=talk.mp3 --volume-min=-18 --output-path=loud.wav
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/ik5/loudcut"
	"github.com/ik5/loudcut/internal/cli"
	"github.com/ik5/loudcut/internal/logger"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Path       string        `short:"p" help:"Audio file to read (wav, mp3, ogg, aiff)." placeholder:"FILE"`
	VolumeMin  float64       `name:"volume-min" short:"m" help:"Keep slices at or above this level, in dBFS." default:"0"`
	OutputPath string        `name:"output-path" short:"o" help:"WAV file to write." default:"output.wav" placeholder:"FILE"`
	Unit       time.Duration `help:"Width of one measured slice." default:"1ms"`
	SampleRate int           `name:"sample-rate" help:"Resample the output to this rate in Hz, 0 keeps the input rate." default:"0"`
	LogLevel   string        `name:"log-level" help:"Log level." enum:"debug,info,warn,error" default:"warn"`
	LogFile    string        `name:"log-file" help:"Also write JSON logs to this file, rotated by size." type:"path"`
	Version    bool          `short:"v" help:"Show version information."`
}

func main() {
	args := &CLI{}
	ctx := kong.Parse(args,
		kong.Name("loudcut"),
		kong.Description("Cut the loudest parts of an audio file into one clip"),
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if args.Version {
		cli.PrintVersion(os.Stdout, version)
		os.Exit(0)
	}

	if args.Path == "" {
		cli.PrintError(os.Stderr, "No input file specified")
		_ = ctx.PrintUsage(false)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      logger.LogLevel(args.LogLevel),
		OutputPath: args.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	})
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(args, os.Stdout, log); err != nil {
		cli.PrintError(os.Stderr, describe(args, err))
		_ = log.Sync()
		os.Exit(1)
	}
}

// describe turns a run error into the message shown to the user.
func describe(args *CLI, err error) string {
	if errors.Is(err, loudcut.ErrInvalidInput) {
		return "Invalid file path: " + args.Path
	}
	return err.Error()
}

func run(args *CLI, out io.Writer, log *zap.Logger) error {
	start := time.Now()

	cli.PrintStep(out, "Loading file: %s", args.Path)
	track, err := loudcut.Load(loudcut.DefaultRegistry(), args.Path, args.Unit)
	if err != nil {
		log.Error("loading input", zap.String("path", args.Path), zap.Error(err))
		return err
	}
	log.Info("input decoded",
		zap.String("path", args.Path),
		zap.Int("sample_rate", track.SampleRate()),
		zap.Duration("duration", track.Duration()),
		zap.Int("slices", track.Len()),
	)

	cli.PrintStep(out, "Finding audio samples with volume greater than or equal to %s dBFS", formatDB(args.VolumeMin))
	res, err := loudcut.Extract(track, args.VolumeMin)
	if err != nil {
		log.Error("extracting segments", zap.Error(err))
		return err
	}

	if len(res.Ranges) == 0 {
		cli.PrintStep(out, "No samples found with volume of %s dBFS", formatDB(args.VolumeMin))
		cli.PrintStep(out, "Max volume in this clip is %s dBFS", formatDB(res.MaxVolume))
		cli.PrintStep(out, "Exiting...")
		log.Warn("no segment reached the threshold",
			zap.Float64("threshold", args.VolumeMin),
			zap.Float64("max_volume", res.MaxVolume),
		)
		return nil
	}

	cli.PrintStep(out, "Combining %d samples...", len(res.Ranges))
	log.Debug("segments found", zap.Stringers("ranges", res.Ranges))

	cli.PrintStep(out, "Saving to file: %s", args.OutputPath)
	if err := loudcut.Save(args.OutputPath, res.Clip, args.SampleRate); err != nil {
		log.Error("saving output", zap.String("path", args.OutputPath), zap.Error(err))
		return err
	}

	cli.PrintKV(out, "Output", args.OutputPath)
	cli.PrintKV(out, "Length", res.Clip.Duration().String())
	log.Info("done",
		zap.String("output", args.OutputPath),
		zap.Int("segments", len(res.Ranges)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// formatDB prints a level the way a user would type it back as a flag.
func formatDB(db float64) string {
	return fmt.Sprintf("%.2f", db)
}
