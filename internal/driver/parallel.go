package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"logsim/internal/source"
	"logsim/internal/trace"
)

// DefinitionExt is the extension of circuit definition files.
const DefinitionExt = ".def"

// DirResult holds the check result of one file of a batch.
type DirResult struct {
	Path   string
	Result *Result
}

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string
	Result *TokenizeResult
	Err    error // ошибка загрузки
}

// ListDefinitionFiles возвращает отсортированный список всех *.def файлов в директории
func ListDefinitionFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, DefinitionExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func workers(jobs, n int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, n))
}

// CheckPaths checks every path in parallel. Each file gets its own parse
// session; results keep the order of paths. A file that cannot be read
// yields a result carrying an I/O diagnostic instead of failing the batch.
func CheckPaths(ctx context.Context, paths []string, opts Options, jobs int) ([]DirResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeDriver, "check_paths", trace.CurrentSpan(ctx)).
		WithExtra("files", strconv.Itoa(len(paths)))
	ctx = trace.WithSpan(ctx, span)

	for _, p := range paths {
		emit(opts.Progress, Event{File: p, Stage: StageLoad, Status: StatusQueued})
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]DirResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := time.Now()
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
			f, err := source.Load(path)
			if err != nil {
				results[i] = DirResult{Path: path, Result: loadFailure(path, err)}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(start)})
				return nil
			}
			emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking})

			res := CheckFile(gctx, f, opts)
			res.Path = path
			results[i] = DirResult{Path: path, Result: res}

			status := StatusDone
			switch {
			case res.Cached:
				status = StatusCached
			case !res.OK():
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: status, Elapsed: time.Since(start)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.End("canceled")
		return nil, err
	}
	span.End("")
	return results, nil
}

// CheckDir checks all definition files under dir.
func CheckDir(ctx context.Context, dir string, opts Options, jobs int) ([]DirResult, error) {
	files, err := ListDefinitionFiles(dir)
	if err != nil {
		return nil, err
	}
	return CheckPaths(ctx, files, opts, jobs)
}

// TokenizeDir токенизирует все *.def файлы в директории параллельно
func TokenizeDir(ctx context.Context, dir string, jobs int) ([]TokenizeDirResult, error) {
	files, err := ListDefinitionFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	results := make([]TokenizeDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Tokenize(path)
			results[i] = TokenizeDirResult{Path: path, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
