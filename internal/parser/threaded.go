package parser

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ritamzico/goobo/internal/ast"
	"github.com/ritamzico/goobo/internal/cache"
	"github.com/ritamzico/goobo/internal/lex"
)

// dispatcherState tracks the threaded parser's dispatcher goroutine
// through the lifecycle the reference implementation's threaded reader
// names explicitly: Idle before any frame has been read, Started while
// splitting frame text off the buffer, AtEof once the underlying
// reader is exhausted, Waiting once every worker has exited and the
// results channel is about to close, and Finished once every result has
// been delivered.
type dispatcherState int32

const (
	stateIdle dispatcherState = iota
	stateStarted
	stateAtEof
	stateWaiting
	stateFinished
)

type job struct {
	index    int
	marker   lex.FrameMarker
	text     string
	lineBase int
	byteBase int
}

type consumerResult struct {
	index int
	frame ast.EntityFrame
	err   error
}

// ThreadedParser fans frame text out to a fixed worker pool (a
// Consumer per goroutine) instead of parsing frames on the caller's
// goroutine, trading latency for throughput on large documents. With
// Ordered set it reassembles results in document order before handing
// them back, buffering any results that arrive ahead of the next
// expected index in a holding map exactly as the reference
// implementation's threaded::Handle does.
type ThreadedParser struct {
	r       io.Reader
	cache   *cache.Cache
	Workers int
	Ordered bool

	state dispatcherState
}

// NewThreadedParser returns a parser that will read from r once
// ParseDocument is called. workers <= 0 defaults to
// runtime.GOMAXPROCS(0), matching the worker-pool sizing the Monte
// Carlo inference engine uses elsewhere in this module's history.
func NewThreadedParser(r io.Reader, c *cache.Cache, workers int, ordered bool) *ThreadedParser {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &ThreadedParser{r: r, cache: c, Workers: workers, Ordered: ordered}
}

// state32 exposes the dispatcher's lifecycle state as an *int32 for the
// sync/atomic calls that read and write it.
func (t *ThreadedParser) state32() *int32 { return (*int32)(&t.state) }

func (t *ThreadedParser) setState(s dispatcherState) {
	atomic.StoreInt32(t.state32(), int32(s))
}

// ParseDocument reads the header synchronously (it must exist before
// any frame can be fanned out, and is always small), then streams
// every entity frame through the worker pool, assembling the results
// into one *ast.OboDoc.
func (t *ThreadedParser) ParseDocument() (*ast.OboDoc, error) {
	buf := NewBuffer(t.r)
	for {
		if _, _, found := lex.FindFrameMarker(buf.Bytes(), 0); found || buf.EOF() {
			break
		}
		if err := buf.Grow(); err != nil {
			return nil, err
		}
	}
	var headerText string
	if offset, _, found := lex.FindFrameMarker(buf.Bytes(), 0); found {
		headerText = string(buf.Bytes()[:offset])
	} else {
		headerText = string(buf.Bytes())
	}
	header, err := ParseHeaderText(headerText, t.cache)
	if err != nil {
		return nil, err
	}
	buf.Discard(len(headerText))
	doc := ast.NewOboDoc(header)

	jobs := make(chan job)
	results := make(chan consumerResult)
	dispatchErrCh := make(chan error, 1)

	t.setState(stateStarted)
	go func() {
		var dispatchErr error
		lineBase, byteBase, index := countNewlines(headerText), len(headerText), 0
		for {
			data := buf.Bytes()
			if len(data) == 0 {
				if buf.EOF() {
					break
				}
				if err := buf.Grow(); err != nil {
					dispatchErr = err
					break
				}
				continue
			}
			if _, _, found := lex.FindFrameMarker(data, 1); !found && !buf.EOF() {
				if err := buf.Grow(); err != nil {
					dispatchErr = err
					break
				}
				continue
			}
			_, marker, ok := lex.FindFrameMarker(data, 0)
			if !ok {
				break
			}
			var text string
			if offset, _, found := lex.FindFrameMarker(data, 1); found {
				text = string(data[:offset])
			} else {
				text = string(data)
			}
			jobs <- job{index: index, marker: marker, text: text, lineBase: lineBase, byteBase: byteBase}
			buf.Discard(len(text))
			lineBase += countNewlines(text)
			byteBase += len(text)
			index++
		}
		t.setState(stateAtEof)
		close(jobs)
		dispatchErrCh <- dispatchErr
	}()

	var wg sync.WaitGroup
	for i := 0; i < t.Workers; i++ {
		wg.Add(1)
		go consumer(jobs, results, t.cache, &wg)
	}
	go func() {
		wg.Wait()
		t.setState(stateWaiting)
		close(results)
	}()

	holding := map[int]consumerResult{}
	next := 0
	var firstErr error
	for res := range results {
		if res.err != nil && firstErr == nil {
			firstErr = res.err
		}
		if !t.Ordered {
			if res.err == nil {
				doc.Append(res.frame)
			}
			continue
		}
		holding[res.index] = res
		for {
			r, ok := holding[next]
			if !ok {
				break
			}
			delete(holding, next)
			if r.err == nil {
				doc.Append(r.frame)
			}
			next++
		}
	}
	t.setState(stateFinished)

	dispatchErr := <-dispatchErrCh
	if len(holding) > 0 {
		return doc, lex.DisconnectedChannel(fmt.Sprintf("%d ordered results never arrived", len(holding)))
	}
	if dispatchErr != nil {
		return doc, dispatchErr
	}
	return doc, firstErr
}

func consumer(jobs <-chan job, results chan<- consumerResult, c *cache.Cache, wg *sync.WaitGroup) {
	defer wg.Done()
	for j := range jobs {
		results <- runConsumerJob(j, c)
	}
}

// runConsumerJob parses one frame's text, recovering from a panic in
// the grammar layer as a disconnected-worker condition rather than
// crashing the whole pool.
func runConsumerJob(j job, c *cache.Cache) (res consumerResult) {
	res.index = j.index
	defer func() {
		if r := recover(); r != nil {
			res.err = lex.DisconnectedChannel(fmt.Sprintf("worker panicked on frame %d: %v", j.index, r))
		}
	}()
	frame, err := ParseEntityText(j.marker, j.text, c)
	if err != nil {
		if se, ok := err.(*lex.SyntaxError); ok {
			err = se.WithOffsets(j.lineBase, j.byteBase)
		}
		res.err = err
		return res
	}
	res.frame = frame
	return res
}

func countNewlines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
