package ingest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/vocab/pkg/entry"
)

// parseJob parses lines the way Load does for one file and reports the
// result on out.
func parseJob(idx int, lines []string, out chan<- parsedFile) Job {
	return func(ctx context.Context) error {
		res := parsedFile{Index: idx, Path: fmt.Sprintf("list-%d.txt", idx)}
		res.Error = NewLoader().parse(ctx, entry.German, strings.NewReader(strings.Join(lines, "\n")), &res)
		select {
		case out <- res:
		case <-ctx.Done():
		}
		return nil
	}
}

func TestWorkerPool_ParsesEveryFile(t *testing.T) {
	const files = 40
	p := NewWorkerPool(4, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	out := make(chan parsedFile, files)
	for i := 0; i < files; i++ {
		lines := []string{
			fmt.Sprintf("Wort%d\tword %d\t\t\tn.nt", i, i),
			"laufen\tto run\t\t\tv",
		}
		require.NoError(t, p.Submit(parseJob(i, lines, out)))
	}
	p.Close()
	close(out)

	seen := make(map[int]bool)
	for res := range out {
		require.NoError(t, res.Error)
		assert.Equal(t, 2, res.Lines, res.Path)
		require.Len(t, res.Entries, 2)
		assert.Equal(t, fmt.Sprintf("Wort%d", res.Index), res.Entries[0].Headword())
		seen[res.Index] = true
	}
	assert.Len(t, seen, files)
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	p := NewWorkerPool(1, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Close()

	out := make(chan parsedFile, 1)
	err := p.Submit(parseJob(0, []string{"Haus\thouse\t\t\tn.nt"}, out))
	require.ErrorIs(t, err, ErrPoolClosed)
	assert.Empty(t, out)
}

func TestWorkerPool_CloseReleasesBlockedSubmit(t *testing.T) {
	// Without workers the queue of one fills up and the next Submit blocks.
	p := NewWorkerPool(1, 1)
	out := make(chan parsedFile, 2)
	require.NoError(t, p.Submit(parseJob(0, nil, out)))

	blocked := make(chan error, 1)
	go func() {
		blocked <- p.Submit(parseJob(1, nil, out))
	}()
	p.Close()

	select {
	case err := <-blocked:
		require.ErrorIs(t, err, ErrPoolClosed)
	case <-time.After(time.Second):
		t.Fatal("Submit stayed blocked after Close")
	}
}

func TestWorkerPool_CanceledContextStopsWorkers(t *testing.T) {
	p := NewWorkerPool(2, 16)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	closed := make(chan struct{})
	go func() {
		p.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close blocked after the context was canceled")
	}
}

func TestWorkerPool_JobStopsReportingOnCancel(t *testing.T) {
	p := NewWorkerPool(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	// Nobody reads the results, so the job can only finish through ctx.
	out := make(chan parsedFile)
	require.NoError(t, p.Submit(parseJob(0, []string{"Haus\thouse\t\t\tn.nt"}, out)))
	cancel()

	closed := make(chan struct{})
	go func() {
		p.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("job kept the pool busy after cancellation")
	}
}

func TestWorkerPool_SubmitCtxGivesUp(t *testing.T) {
	p := NewWorkerPool(1, 1)
	defer p.Close()
	out := make(chan parsedFile, 1)
	require.NoError(t, p.Submit(parseJob(0, nil, out)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := p.SubmitCtx(ctx, parseJob(1, nil, out))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
