// Command shapeframe masks an image into a shape, adds an optional title and
// description and saves the framed result as shaped-image.jpg.
//
// Usage:
//
//	shapeframe -in photo.png -shape star -title "Hello" -desc "A longer text" -out ./out
//
// With -watch the frame is rebuilt every time the input file is written.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"

	"github.com/gogpu/shapeframe"
	"github.com/gogpu/shapeframe/internal/app"
	"github.com/gogpu/shapeframe/internal/config"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	in      string
	shape   string
	title   string
	desc    string
	out     string
	config  string
	watch   bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("shapeframe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.in, "in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&f.shape, "shape", "circle", "mask shape: "+shapeNames())
	fs.StringVar(&f.title, "title", "", "title drawn below the image")
	fs.StringVar(&f.desc, "desc", "", "description drawn below the title")
	fs.StringVar(&f.out, "out", ".", "output directory")
	fs.StringVar(&f.config, "config", "", "TOML frame configuration")
	fs.BoolVar(&f.watch, "watch", false, "rebuild the frame whenever the input changes")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if fs.NArg() > 0 {
		return flags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return f, nil
}

func shapeNames() string {
	names := make([]string, 0, len(shapeframe.Shapes()))
	for _, s := range shapeframe.Shapes() {
		names = append(names, s.Name())
	}
	return strings.Join(names, ", ")
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	shapeframe.SetLogger(logger)
	defer shapeframe.SetLogger(nil)

	term := termenv.NewOutput(stdout)
	fail := func(err error) int {
		fmt.Fprintln(stdout, term.String("error: "+err.Error()).Foreground(term.Color("1")).String())
		return exitError
	}

	shape, err := shapeframe.ParseShape(f.shape)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	cfg := config.Default()
	if f.config != "" {
		if cfg, err = config.Load(f.config); err != nil {
			return fail(err)
		}
	}
	comp, err := shapeframe.New(cfg.Options()...)
	if err != nil {
		return fail(err)
	}

	outDir, err := homedir.Expand(f.out)
	if err != nil {
		return fail(err)
	}
	notify := app.NotifierFunc(func(msg string) {
		fmt.Fprintln(stdout, term.String(msg).Foreground(term.Color("3")).Bold().String())
	})
	ctrl := app.New(comp, notify, dirDeliverer(outDir))
	defer func() { _ = ctrl.Close() }()

	ctrl.SetShape(shape)
	ctrl.SetTitle(f.title)
	ctrl.SetDescription(f.desc)

	var input string
	if f.in != "" {
		if input, err = homedir.Expand(f.in); err != nil {
			return fail(err)
		}
		if err := loadFile(ctrl, input); err != nil {
			return fail(err)
		}
	}

	if err := ctrl.Save(); err != nil {
		if app.IsNoImage(err) {
			return exitError
		}
		return fail(err)
	}
	fmt.Fprintln(stdout, term.String("saved "+filepath.Join(outDir, shapeframe.ExportName)).Foreground(term.Color("2")).String())

	if f.watch {
		logger.Info("watching input", slog.String("path", input))
		if err := watch(ctx, input, func() error { return rebuild(ctrl, input) }, logger); err != nil {
			return fail(err)
		}
	}
	return exitOK
}

func loadFile(ctrl *app.Controller, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ctrl.Load(file)
}

func rebuild(ctrl *app.Controller, path string) error {
	if err := loadFile(ctrl, path); err != nil {
		return err
	}
	return ctrl.Save()
}

// dirDeliverer writes downloads into a directory, creating it if needed.
type dirDeliverer string

func (d dirDeliverer) Deliver(dl *shapeframe.Download) error {
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(string(d), dl.Name), dl.Data, 0o644)
}

// watch calls onChange after every write to path until ctx is done.
// The parent directory is watched so editors that replace the file by
// renaming are followed.
func watch(ctx context.Context, path string, onChange func() error, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("input changed", slog.String("op", event.Op.String()))
			if err := onChange(); err != nil {
				// A half-written file fails to decode; the next write retries.
				logger.Warn("rebuild failed", slog.String("error", err.Error()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}
