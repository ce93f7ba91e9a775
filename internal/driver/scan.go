package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"stopline/internal/breakpoint"
	"stopline/internal/diag"
	"stopline/internal/observ"
	"stopline/internal/source"
	"stopline/internal/trace"
)

// ScanOptions configures ScanFiles.
type ScanOptions struct {
	Jobs           int // <= 0 means GOMAXPROCS
	MaxDiagnostics int
	BaseDir        string
	Match          func(path string) bool // filter for files found under directories
	Sink           ProgressSink
	Timer          *observ.Timer // aggregated phase timings, may be nil
	Timings        bool          // attach a per-file OBS timing diagnostic
}

// ScanResult содержит результат обработки одного файла
type ScanResult struct {
	Path      string
	FileID    source.FileID
	File      *source.File // nil when loading failed
	Bag       *diag.Bag
	Locations []breakpoint.Location
	Err       error // load failure or resolver invariant violation
	Timing    observ.Report
}

var skipDirs = map[string]bool{"node_modules": true}

// ListFiles expands paths into a sorted, de-duplicated file list. Files named
// explicitly are always kept; files found by walking directories must satisfy match.
func ListFiles(paths []string, match func(string) bool) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
					return filepath.SkipDir
				}
				return nil
			}
			if match == nil || match(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ScanFiles resolves the breakpoint table of every file under paths in parallel.
// Results keep the order of ListFiles. The returned error is only set when ctx
// is cancelled or listing fails; per-file problems are in ScanResult.Err.
func ScanFiles(ctx context.Context, paths []string, opts ScanOptions) (*source.FileSet, []ScanResult, error) {
	tr := trace.FromContext(ctx)
	root := trace.Begin(tr, trace.ScopePhase, "scan", trace.ParentSpan(ctx))
	defer root.End("")

	files, err := ListFiles(paths, opts.Match)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(opts.BaseDir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	for _, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// FileSet не потокобезопасен: загружаем всё заранее, дальше только читаем
	results := make([]ScanResult, len(files))
	loadSpan := trace.Begin(tr, trace.ScopePhase, "load", root.ID())
	for i, path := range files {
		start := time.Now()
		fileID, err := fileSet.Load(path)
		elapsed := time.Since(start)
		if opts.Timer != nil {
			opts.Timer.Add(string(StageLoad), elapsed)
		}
		results[i] = ScanResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}
		if err != nil {
			results[i].Err = fmt.Errorf("failed to load file: %w", err)
			results[i].Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, results[i].Err.Error()))
			emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		results[i].FileID = fileID
		results[i].File = fileSet.Get(fileID)
	}
	loadSpan.WithExtra("files", strconv.Itoa(len(files))).End("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range results {
		if results[i].File == nil {
			continue
		}
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			scanOne(gctx, &results[i], opts, root.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// scanOne parses and resolves one loaded file; the slot is owned by the caller's goroutine.
func scanOne(ctx context.Context, res *ScanResult, opts ScanOptions, parent uint64) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeFile, "file:"+res.Path, parent)
	timer := observ.NewTimer()

	emit(opts.Sink, Event{File: res.Path, Stage: StageParse, Status: StatusWorking})
	idx := timer.Begin(string(StageParse))
	tree, err := parseInto(res.File, res.Bag, opts.MaxDiagnostics)
	timer.End(idx, "")
	if err != nil {
		res.Err = err
		emit(opts.Sink, Event{File: res.Path, Stage: StageParse, Status: StatusError, Err: err})
		span.End("parse failed")
		return
	}

	emit(opts.Sink, Event{File: res.Path, Stage: StageResolve, Status: StatusWorking})
	idx = timer.Begin(string(StageResolve))
	res.Locations, err = breakpoint.Table(tree)
	timer.End(idx, strconv.Itoa(len(res.Locations))+" locations")
	if err != nil {
		res.Err = err
		var inv *breakpoint.InvariantError
		if errors.As(err, &inv) {
			res.Bag.Add(diag.NewError(diag.BrkInvariant, source.Span{File: res.FileID}, inv.Error()))
		}
		trace.Point(tr, trace.ScopeFile, "invariant", err.Error(), span.ID())
	}

	res.Timing = timer.Report()
	if opts.Timer != nil {
		for _, p := range res.Timing.Phases {
			opts.Timer.Add(p.Name, time.Duration(p.DurationMS*float64(time.Millisecond)))
		}
	}
	if opts.Timings {
		appendTimingDiagnostic(res.Bag, timingPayload{Kind: "file", Path: res.Path, TotalMS: res.Timing.TotalMS, Phases: res.Timing.Phases})
	}

	status := StatusDone
	if res.Err != nil || res.Bag.HasErrors() {
		status = StatusError
	}
	emit(opts.Sink, Event{File: res.Path, Stage: StageResolve, Status: status, Err: res.Err, Elapsed: time.Duration(res.Timing.TotalMS * float64(time.Millisecond))})
	span.WithExtra("locations", strconv.Itoa(len(res.Locations))).End(string(status))
}
