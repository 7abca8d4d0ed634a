// Command epubfreq prints word-frequency statistics for the chapters of an
// ePub book.
//
// Usage:
//
//	epubfreq [flags] [book.epub]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/simp-lee/epubfreq/internal/config"
	"github.com/simp-lee/epubfreq/internal/extract"
	"github.com/simp-lee/epubfreq/internal/freq"
	"github.com/simp-lee/epubfreq/internal/report"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("epubfreq", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.StringP("config", "c", "", "path to a YAML config file")
	flags.Int("top", report.DefaultTop, "number of most common words to list")
	flags.Int("chapter-top", 0, "also list this many common words per chapter")
	flags.String("pattern", "", "regular expression selecting chapter items by name (replaces the prefix rule)")
	flags.String("log-level", "info", "log level for diagnostics on stderr")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: epubfreq [flags] [path]\n\nPrint the most common words in the chapters of an ePub book.\n\nflags:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 1 {
		fmt.Fprintf(stderr, "epubfreq: expected one path, got %d\n", flags.NArg())
		flags.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "epubfreq: %v\n", err)
		return exitUsage
	}
	if flags.NArg() == 1 {
		cfg.Book = flags.Arg(0)
	}

	logger := newLogger(stderr, cfg.Log)

	matcher, err := cfg.Chapters.Matcher()
	if err != nil {
		logger.WithError(err).Error("invalid chapter matcher")
		return exitUsage
	}

	out := report.New(stdout,
		report.WithTop(cfg.Report.Top),
		report.WithChapterTop(cfg.Report.ChapterTop),
	)
	if err := analyze(cfg.Book, matcher, logger, out); err != nil {
		logger.WithError(err).Error("failed to write report")
		return exitError
	}
	return exitOK
}

// analyze runs the pipeline for path. Only report write failures are
// returned; unreadable or empty books end in the no-data line.
func analyze(path string, matcher extract.Matcher, logger *logrus.Logger, out *report.Writer) error {
	ex := extract.New(extract.WithMatcher(matcher), extract.WithLogger(logger))

	book, err := ex.Extract(path)
	if err != nil {
		logExtractError(logger, err)
		return out.NoData(false)
	}

	analysis, err := freq.Analyze(book)
	if errors.Is(err, freq.ErrNoContent) {
		logger.WithField("path", path).Warn("no chapter items matched")
		return out.NoData(true)
	}
	if err != nil {
		return err
	}
	if !analysis.Consistent() {
		logger.Warn("book-wide counts disagree with per-chapter counts")
	}
	return out.Analysis(analysis)
}

func logExtractError(logger *logrus.Logger, err error) {
	var nf *extract.NotFoundError
	var ee *extract.ExtractionError
	switch {
	case errors.As(err, &nf):
		logger.WithField("path", nf.Path).Error("EPUB file not found")
	case errors.As(err, &ee):
		logger.WithFields(logrus.Fields{"path": ee.Path, "item": ee.Item}).WithError(ee.Err).Error("error processing EPUB file")
	default:
		logger.WithError(err).Error("error processing EPUB file")
	}
}

func newLogger(w io.Writer, cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.ParsedLevel())
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	return logger
}
