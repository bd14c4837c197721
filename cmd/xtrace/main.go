// Command xtrace renders one of a few demonstration scenes to a PNG
// file by tracing a ray per pixel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strings"
	"time"

	"deedles.dev/xtrace"
)

type options struct {
	Scene   string
	Width   int
	Height  int
	Workers int
	AA      int
	Out     string
	Normals bool
	Verbose bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fset := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fset.StringVar(&opts.Scene, "scene", "csg3", "scene to render: "+strings.Join(sceneNames(), ", "))
	fset.IntVar(&opts.Width, "width", 640, "image width in pixels")
	fset.IntVar(&opts.Height, "height", 480, "image height in pixels")
	fset.IntVar(&opts.Workers, "workers", 0, "number of render goroutines, or 0 for one per CPU")
	fset.IntVar(&opts.AA, "aa", 1, "render at this many times the size and scale down")
	fset.StringVar(&opts.Out, "out", "xtrace.png", "output file")
	fset.BoolVar(&opts.Normals, "normals", false, "color 3D surfaces by their normals instead of lighting them")
	fset.BoolVar(&opts.Verbose, "v", false, "log debug messages")
	err := fset.Parse(args[1:])
	if err != nil {
		return opts, err
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("invalid image size %vx%v", opts.Width, opts.Height)
	}
	if opts.Workers < 0 {
		return opts, fmt.Errorf("invalid worker count %v", opts.Workers)
	}
	if opts.AA < 1 {
		return opts, fmt.Errorf("invalid supersampling factor %v", opts.AA)
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}
	if !slices.Contains(sceneNames(), opts.Scene) {
		return opts, fmt.Errorf("unknown scene %q", opts.Scene)
	}

	return opts, nil
}

func save(path string, img image.Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		cerr := file.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	err = png.Encode(file, img)
	if err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

func run(ctx context.Context, opts options) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	xtrace.SetLogger(logger)

	large := opts
	large.Width *= opts.AA
	large.Height *= opts.AA
	pixel := scenes[opts.Scene](large)

	start := time.Now()
	img, err := render(ctx, large.Width, large.Height, opts.Workers, pixel)
	if err != nil {
		return fmt.Errorf("render %v: %w", opts.Scene, err)
	}
	slog.Info("rendered", "scene", opts.Scene, "size", img.Rect.Size(), "workers", opts.Workers, "time", time.Since(start))

	err = save(opts.Out, downsample(img, opts.AA))
	if err != nil {
		return err
	}
	slog.Info("saved", "path", opts.Out)
	return nil
}

func main() {
	opts, err := parseFlags(os.Args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, opts)
	if err != nil {
		slog.Error("failed", "err", err)
		os.Exit(1)
	}
}
