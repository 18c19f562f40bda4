// Package process converts batches of quiz pages.
// It coordinates reading, parsing, writing, library storage, and disposal of
// source pages, parsing pages concurrently.
package process

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/quizdoc"
	"github.com/fwojciec/quizdoc/bloom"
	"github.com/fwojciec/quizdoc/fs"
	"golang.org/x/sync/errgroup"
)

// CombinedName is the base file name of a combined quiz.
const CombinedName = "combined_quiz"

const (
	defaultConcurrency  = 4
	storedFalsePositive = 0.01
)

// Output writes a quiz under a base name in several formats.
type Output interface {
	Write(quiz *quizdoc.Quiz, base string, formats []quizdoc.Format) ([]string, error)
}

// Processor converts quiz pages to output files.
type Processor struct {
	Parser  quizdoc.QuizParser
	Output  Output
	Formats []quizdoc.Format

	// Library, if set, receives a record for every converted quiz. Pages
	// already stored in it are not converted again.
	Library quizdoc.QuizService

	// Disposition is applied to each source page after it was converted.
	Disposition fs.Disposition
	ParsedDir   string

	Concurrency int
	Logger      *slog.Logger
}

// Result holds the outcome of a batch.
type Result struct {
	Converted  int
	Failed     int
	Duplicates int
	// Partial counts converted pages with questions that could not be parsed.
	Partial int
	// Unsaved counts converted quizzes the library failed to store.
	Unsaved   int
	Questions int
	Paths     []string
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of loading a single page.
type pageResult struct {
	position int
	path     string
	hash     string
	quiz     *quizdoc.Quiz
	// partial holds fragment failures of a page that still produced a quiz.
	partial error
	err     error
}

// loadFunc loads one file into a quiz.
type loadFunc func(ctx context.Context, position int, path string) pageResult

// ConvertAll parses every page in files and writes each quiz under its
// title. Pages with identical content are converted once, and with a Library
// set, pages whose content is already stored are skipped as duplicates. A
// page that fails is counted and skipped; it never aborts the batch.
func (p *Processor) ConvertAll(ctx context.Context, files []string, progress ProgressFunc) (*Result, error) {
	stored := p.storedHashes(ctx)
	results := p.loadAll(ctx, files, p.parsePage, progress)

	var result Result
	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		if _, ok := seen[r.hash]; ok {
			p.logger().Info("skipping duplicate page", "path", r.path)
			result.Duplicates++
			p.dispose(r)
			continue
		}
		seen[r.hash] = struct{}{}
		if p.inLibrary(ctx, stored, r.hash) {
			p.logger().Info("skipping page already in library", "path", r.path)
			result.Duplicates++
			p.dispose(r)
			continue
		}

		paths, err := p.Output.Write(r.quiz, fs.SafeName(r.quiz.Title), p.Formats)
		if err != nil {
			p.logger().Error("failed to write quiz", "path", r.path, "error", err)
			result.Failed++
			continue
		}
		p.dispose(r)

		result.Converted++
		result.Questions += r.quiz.Len()
		result.Paths = append(result.Paths, paths...)
		if r.partial != nil {
			result.Partial++
		}
		if err := p.save(ctx, r); err != nil {
			p.logger().Error("failed to save quiz", "path", r.path, "error", err)
			result.Unsaved++
		}
	}

	p.finish(progress, len(files))
	return &result, ctx.Err()
}

// CombineAll parses every page in files and writes a single quiz holding the
// union of their questions, folded in input order.
func (p *Processor) CombineAll(ctx context.Context, files []string, progress ProgressFunc) (*Result, error) {
	results := p.loadAll(ctx, files, p.parsePage, progress)

	var result Result
	var combined *quizdoc.Quiz
	var converted []pageResult
	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		if _, ok := seen[r.hash]; ok {
			result.Duplicates++
			converted = append(converted, r)
			continue
		}
		seen[r.hash] = struct{}{}
		if combined == nil {
			combined = r.quiz
		} else {
			combined = combined.Combine(r.quiz)
		}
		if r.partial != nil {
			result.Partial++
		}
		converted = append(converted, r)
	}

	if combined == nil {
		p.finish(progress, len(files))
		return &result, ctx.Err()
	}

	paths, err := p.Output.Write(combined, CombinedName, p.Formats)
	if err != nil {
		p.finish(progress, len(files))
		return &result, fmt.Errorf("write combined quiz: %w", err)
	}
	for _, r := range converted {
		p.dispose(r)
	}

	result.Converted = len(converted) - result.Duplicates
	result.Questions = combined.Len()
	result.Paths = paths

	combinedHash := ""
	for _, r := range converted {
		combinedHash += r.hash
	}
	err = p.save(ctx, pageResult{
		path: CombinedName,
		hash: computeHash(combinedHash),
		quiz: combined,
	})
	if err != nil {
		p.logger().Error("failed to save quiz", "path", CombinedName, "error", err)
		result.Unsaved++
	}

	p.finish(progress, len(files))
	return &result, ctx.Err()
}

// LoadAll reads quizzes previously written as JSON and writes them again in
// the configured formats. Source files are left in place.
func (p *Processor) LoadAll(ctx context.Context, files []string, reader quizdoc.QuizReader, progress ProgressFunc) (*Result, error) {
	load := func(ctx context.Context, position int, path string) pageResult {
		r := pageResult{position: position, path: path}
		f, err := os.Open(path)
		if err != nil {
			r.err = err
			return r
		}
		defer f.Close()

		r.quiz, r.err = reader.ReadQuiz(f)
		return r
	}

	results := p.loadAll(ctx, files, load, progress)

	var result Result
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		paths, err := p.Output.Write(r.quiz, fs.SafeName(r.quiz.Title), p.Formats)
		if err != nil {
			p.logger().Error("failed to write quiz", "path", r.path, "error", err)
			result.Failed++
			continue
		}
		result.Converted++
		result.Questions += r.quiz.Len()
		result.Paths = append(result.Paths, paths...)
	}

	p.finish(progress, len(files))
	return &result, ctx.Err()
}

// loadAll runs load for every file concurrently and returns the results in
// input order.
func (p *Processor) loadAll(ctx context.Context, files []string, load loadFunc, progress ProgressFunc) []pageResult {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	resultCh := make(chan pageResult, len(files))

	var completed atomic.Int64
	total := len(files)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					resultCh <- pageResult{position: i, path: path, err: err}
					return nil
				}
				resultCh <- load(gctx, i, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]pageResult, len(files))
	for r := range resultCh {
		completed.Add(1)
		results[r.position] = r

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Path:      r.path,
		}
		if r.err != nil {
			event.Type = ProgressFailed
			event.Error = r.err
		}
		progress(event)
	}
	return results
}

// parsePage reads and parses a single page.
func (p *Processor) parsePage(_ context.Context, position int, path string) pageResult {
	result := pageResult{
		position: position,
		path:     path,
	}

	html, err := fs.ReadPage(path)
	if err != nil {
		result.err = err
		return result
	}
	result.hash = computeHash(html)

	quiz, err := p.Parser.ParseQuiz(html)
	if quiz == nil {
		if err == nil {
			err = quizdoc.Errorf(quizdoc.EINTERNAL, "parser returned no quiz")
		}
		result.err = err
		return result
	}
	if err != nil {
		p.logger().Warn("some questions could not be parsed", "path", path, "error", err)
		result.partial = err
	}
	result.quiz = quiz
	return result
}

// storedHashes loads the content hashes of the library into a filter. It
// returns nil without a library or when the hashes cannot be read.
func (p *Processor) storedHashes(ctx context.Context) *bloom.Filter {
	if p.Library == nil {
		return nil
	}
	hashes, err := p.Library.ContentHashes(ctx)
	if err != nil {
		p.logger().Warn("failed to load library hashes", "error", err)
		return nil
	}
	filter := bloom.NewFilter(uint(len(hashes)), storedFalsePositive)
	for _, h := range hashes {
		filter.Add(h)
	}
	return filter
}

// inLibrary reports whether a quiz with hash is already stored. Only hashes
// the filter may hold are looked up in the library.
func (p *Processor) inLibrary(ctx context.Context, stored *bloom.Filter, hash string) bool {
	if stored == nil || !stored.Test(hash) {
		return false
	}
	recs, err := p.Library.FindQuizzes(ctx, quizdoc.QuizFilter{ContentHash: &hash, Limit: 1})
	if err != nil {
		p.logger().Warn("failed to look up quiz", "hash", hash, "error", err)
		return false
	}
	return len(recs) > 0
}

// save records r's quiz in the library. A quiz already stored is not an
// error.
func (p *Processor) save(ctx context.Context, r pageResult) error {
	if p.Library == nil {
		return nil
	}
	rec := &quizdoc.QuizRecord{
		Title:       r.quiz.Title,
		SourcePath:  r.path,
		ContentHash: r.hash,
		Quiz:        r.quiz,
	}
	if err := p.Library.CreateQuiz(ctx, rec); err != nil {
		if quizdoc.ErrorCode(err) != quizdoc.ECONFLICT {
			return err
		}
		p.logger().Info("quiz already in library", "path", r.path)
	}
	return nil
}

// dispose applies the configured disposition to a converted page. Failures
// are logged; the quiz has already been written.
func (p *Processor) dispose(r pageResult) {
	title := r.quiz.Title
	if _, err := fs.Dispose(r.path, p.ParsedDir, title, p.Disposition); err != nil {
		p.logger().Warn("failed to dispose page", "path", r.path, "disposition", p.Disposition.String(), "error", err)
	}
}

func (p *Processor) finish(progress ProgressFunc, total int) {
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
