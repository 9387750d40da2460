// Package main is the entry point for the nucleus editor: a minimal
// terminal frontend over the editing core, exercising the frontend
// contract (dimension updates, key normalization, read-only rendering,
// honoring should-quit).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/ar-go/nucleus/internal/buffer"
	"github.com/ar-go/nucleus/internal/config"
	"github.com/ar-go/nucleus/internal/editor"
	"github.com/ar-go/nucleus/internal/session"
	"github.com/ar-go/nucleus/internal/watch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	files      []string
	debugLog   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := newLogger(opts.debugLog)
	logger.Info("starting nucleus",
		"version", version,
		"commit", commit,
		"run_id", uuid.NewString())

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nucleus: %v\n", err)
		return 1
	}

	ed := editor.New(
		editor.WithKillRingCapacity(cfg.KillRingCapacity),
		editor.WithBufferOptions(
			buffer.WithMarkRingCapacity(cfg.MarkRingCapacity),
			buffer.WithUndoMaxEntries(cfg.UndoMaxEntries),
		),
	)

	sess := session.Open(cfg.SessionFile)
	ed.Minibuffer().SeedHistory(sess.History("minibuffer"))

	for _, path := range opts.files {
		openInitialFile(ed, path, logger)
	}

	watcher, err := watch.New()
	if err != nil {
		logger.Warn("file watching disabled", "error", err)
	} else {
		defer watcher.Close()
	}

	term, err := newTerminal(cfg.TabWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nucleus: failed to open terminal: %v\n", err)
		return 1
	}
	defer term.shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.interrupt()
	}()

	term.loop(ed, watcher, logger)

	saveSession(ed, sess, logger)
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to nucleus.toml (defaults apply if absent)")
	flag.StringVar(&opts.debugLog, "debug-log", "", "append structured diagnostics to this file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: nucleus [flags] [file ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	opts.files = flag.Args()
	return opts
}

// newLogger writes structured diagnostics to the given file, or
// discards them: a fullscreen terminal program cannot log to stderr.
func newLogger(path string) *slog.Logger {
	if path == "" {
		return slog.New(slog.DiscardHandler)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, nil))
}

func openInitialFile(ed *editor.State, path string, logger *slog.Logger) {
	b, err := buffer.Load(ed.Buffers().NextID(), path)
	if err != nil {
		if os.IsNotExist(err) {
			id := ed.Buffers().NewBuffer(path, buffer.WithFilePath(path))
			ed.Buffers().SetCurrent(id)
			ed.Windows().SetCurrentBuffer(id)
			return
		}
		logger.Warn("could not open file", "path", path, "error", err)
		return
	}
	ed.Buffers().Add(b)
	ed.Buffers().SetCurrent(b.ID())
	ed.Windows().SetCurrentBuffer(b.ID())
}

func saveSession(ed *editor.State, sess *session.Store, logger *slog.Logger) {
	for _, b := range ed.Buffers().All() {
		if p := b.FilePath(); p != "" {
			sess.TouchFile(p)
		}
	}
	for _, entry := range ed.Minibuffer().History() {
		sess.AppendHistory("minibuffer", entry)
	}
	if err := sess.Save(); err != nil {
		logger.Warn("could not save session", "error", err)
	}
}
