package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/japaniel/vocab/pkg/dictionary"
	"github.com/japaniel/vocab/pkg/entry"
)

// maxLineSize bounds a single vocabulary line. Example and note fields can
// get long, the default scanner limit of 64 KiB is too small.
const maxLineSize = 1 << 20

// WorkerPoolInterface abstracts the worker pool so tests can inject failing implementations.
type WorkerPoolInterface interface {
	Start(ctx context.Context)
	Submit(Job) error
	// SubmitCtx attempts to enqueue a job but returns promptly if ctx is canceled.
	SubmitCtx(ctx context.Context, job Job) error
	Close()
}

// LineError reports a line that could not be parsed into an entry.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// Report summarizes a load.
type Report struct {
	Files int
	// Lines counts the entry lines read, blank and heading lines excluded.
	Lines int
	// Entries is the number of distinct entries in the result.
	Entries int
	// Merged counts lines folded into an entry seen before.
	Merged int
	// Skipped counts malformed lines dropped in non-strict mode.
	Skipped int
	// Problems holds the dropped lines in file order.
	Problems []*LineError
}

// Loader reads vocabulary files into a Dictionary.
type Loader struct {
	// Separator between the fields of a line. Empty means tab.
	Separator string
	// Strict aborts the load on the first malformed line. Otherwise the
	// line is logged and skipped.
	Strict bool
	// Logger is used for skipped lines. nil means no logging.
	Logger *slog.Logger
	// OnProgress is called after each file is merged with the number of merged files and total files.
	OnProgress func(current, total int)

	// Concurrency settings
	Workers int

	// PoolFactory allows tests to inject custom worker pool implementations.
	PoolFactory func(workers, queue int) WorkerPoolInterface
}

// NewLoader creates a Loader with default settings.
func NewLoader() *Loader {
	return &Loader{
		Separator: entry.DefaultSeparator,
		Workers:   4, // Default worker count
	}
}

// parsedFile holds the result of parsing one file before it is merged.
type parsedFile struct {
	Index    int
	Path     string
	Entries  []*entry.Entry
	Lines    int
	Problems []*LineError
	Error    error
}

// Load parses the files concurrently and merges them into one dictionary.
// Files are parsed in parallel but merged in the order given, so the value
// order of merged entries does not depend on scheduling.
func (l *Loader) Load(ctx context.Context, lang string, paths []string) (*dictionary.Dictionary, Report, error) {
	language, err := entry.ParseLanguage(lang)
	if err != nil {
		return nil, Report{}, err
	}
	dict := dictionary.New(language)
	report := Report{Files: len(paths)}
	if len(paths) == 0 {
		return dict, report, nil
	}

	workers := l.Workers
	if workers <= 0 {
		workers = 1
	}

	// 1. Setup concurrency components
	var wp WorkerPoolInterface
	if l.PoolFactory != nil {
		wp = l.PoolFactory(workers, workers*2)
	} else {
		wp = NewWorkerPool(workers, workers*2)
	}
	resultCh := make(chan parsedFile, workers*2)
	doneCh := make(chan error, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wp.Start(ctx)

	// 2. Consumer: merge files in index order
	go func() {
		defer close(doneCh)
		buffer := make(map[int]parsedFile)
		nextIdx := 0

		merge := func(f parsedFile) error {
			if f.Error != nil {
				return f.Error
			}
			report.Lines += f.Lines
			for _, p := range f.Problems {
				report.Skipped++
				report.Problems = append(report.Problems, p)
				if l.Logger != nil {
					l.Logger.Warn("skipping line", "path", p.Path, "line", p.Line, "error", p.Err)
				}
			}
			for _, e := range f.Entries {
				merged, err := dict.Add(e)
				if err != nil {
					return fmt.Errorf("%s: %w", f.Path, err)
				}
				if merged {
					report.Merged++
				}
			}
			if l.OnProgress != nil {
				l.OnProgress(f.Index+1, len(paths))
			}
			return nil
		}

		for {
			select {
			case <-ctx.Done():
				doneCh <- ctx.Err()
				return
			case res, ok := <-resultCh:
				if !ok {
					if nextIdx < len(paths) {
						doneCh <- fmt.Errorf("load stopped after %d of %d files", nextIdx, len(paths))
					}
					return
				}
				buffer[res.Index] = res

				// Merge contiguous finished files
				for {
					item, ok := buffer[nextIdx]
					if !ok {
						break
					}
					delete(buffer, nextIdx)
					if err := merge(item); err != nil {
						// Signal producers to stop to prevent them from blocking on resultCh.
						cancel()
						doneCh <- err
						return
					}
					nextIdx++
				}
			}
		}
	}()

	// 3. Producer loop: one parse job per file
	var submitErr error
Loop:
	for i, path := range paths {
		idx, path := i, path
		job := func(ctx context.Context) error {
			res := l.parseFile(ctx, language, idx, path)
			select {
			case resultCh <- res:
			case <-ctx.Done():
			}
			return nil
		}

		// Submit job to the worker pool but remain responsive to context cancellation.
		if err := wp.SubmitCtx(ctx, job); err != nil {
			if errors.Is(err, ctx.Err()) || errors.Is(err, ErrPoolClosed) {
				break Loop
			}
			submitErr = err
			cancel()
			break Loop
		}
	}

	// No worker sends after Close returns, so closing resultCh is safe.
	wp.Close()
	close(resultCh)

	consumerErr := <-doneCh
	if submitErr != nil {
		return nil, report, submitErr
	}
	if consumerErr != nil {
		return nil, report, consumerErr
	}
	if err := ctx.Err(); err != nil {
		return nil, report, err
	}
	report.Entries = dict.Len()
	return dict, report, nil
}

// parseFile reads one file. In strict mode the first bad line ends the
// parse with an error.
func (l *Loader) parseFile(ctx context.Context, lang entry.Language, index int, path string) parsedFile {
	res := parsedFile{Index: index, Path: path}

	f, err := os.Open(path)
	if err != nil {
		res.Error = fmt.Errorf("open source: %w", err)
		return res
	}
	defer f.Close()

	res.Error = l.parse(ctx, lang, f, &res)
	return res
}

func (l *Loader) parse(ctx context.Context, lang entry.Language, r io.Reader, res *parsedFile) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo%1024 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		line := sc.Text()
		if skipLine(line) {
			continue
		}
		res.Lines++

		e, err := entry.ParseLine(string(lang), line, l.Separator)
		if err != nil {
			lerr := &LineError{Path: res.Path, Line: lineNo, Err: err}
			if l.Strict {
				return lerr
			}
			res.Problems = append(res.Problems, lerr)
			continue
		}
		res.Entries = append(res.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", res.Path, err)
	}
	return nil
}

// skipLine reports whether a line carries no entry: blank lines and the
// group headings written by dictionary.Write. Any other line starting with
// "#" is parsed, so headwords such as "#1 fan" survive a round trip.
func skipLine(line string) bool {
	return strings.TrimSpace(line) == "" || dictionary.IsHeading(line)
}
