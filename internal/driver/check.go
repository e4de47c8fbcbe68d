package driver

import (
	"context"
	"fmt"
	"strconv"

	"logsim/internal/devices"
	"logsim/internal/diag"
	"logsim/internal/monitors"
	"logsim/internal/names"
	"logsim/internal/network"
	"logsim/internal/parser"
	"logsim/internal/scanner"
	"logsim/internal/source"
	"logsim/internal/trace"
)

// Options configures a check session.
type Options struct {
	MaxInputs int          // gate fan-in upper bound, 0 means 16
	Cache     *DiskCache   // nil disables the result cache
	Progress  ProgressSink // optional, used by CheckPaths
}

func (o Options) maxInputs() int {
	if o.MaxInputs <= 0 {
		return devices.DefaultMaxInputs
	}
	return o.MaxInputs
}

// Stats counts what a check built.
type Stats struct {
	Devices     int
	Connections int
	Monitors    int
}

// Result is the outcome of checking one definition file.
// Names and the network model are nil when the result came from the cache.
type Result struct {
	Path   string
	File   *source.File
	Errors *diag.Errors
	Parsed bool // verdict of the parser
	Cached bool
	Stats  Stats

	Names    *names.Table
	Devices  *devices.Devices
	Network  *network.Network
	Monitors *monitors.Monitors
}

// OK reports whether the file parsed and no error-severity diagnostic was
// recorded. Lexical errors do not stop the parser but still fail the check.
func (r *Result) OK() bool {
	return r != nil && r.Parsed && !r.Errors.HasErrors()
}

// Check loads path and runs one parse session over it.
func Check(ctx context.Context, path string, opts Options) (*Result, error) {
	f, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", path, err)
	}
	return CheckFile(ctx, f, opts), nil
}

// CheckFile runs one parse session over an already loaded file.
func CheckFile(ctx context.Context, f *source.File, opts Options) *Result {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeFile, "check", trace.CurrentSpan(ctx)).WithExtra("path", f.Path)

	key := cacheKey(f, opts.maxInputs())
	if opts.Cache != nil {
		var payload CachePayload
		if ok, err := opts.Cache.Get(key, &payload); err != nil {
			trace.Point(tr, trace.ScopeFile, "cache", "read failed: "+err.Error(), span.ID())
		} else if ok {
			if res := payload.restore(f); res != nil {
				span.End("cached")
				return res
			}
		}
	}

	nt := names.New()
	errs := diag.NewErrors()
	devs := devices.New(nt, devices.WithMaxInputs(opts.maxInputs()))
	net := network.New(devs)
	mons := monitors.New(devs)

	p := parser.New(scanner.New(f, nt, errs), nt, errs, parser.Options{
		Devices:    devs,
		Network:    net,
		Monitors:   mons,
		MaxInputs:  opts.maxInputs(),
		Tracer:     tr,
		ParentSpan: span.ID(),
	})
	parsed := p.ParseNetwork()

	res := &Result{
		Path:   f.Path,
		File:   f,
		Errors: errs,
		Parsed: parsed,
		Stats: Stats{
			Devices:     devs.Len(),
			Connections: net.Len(),
			Monitors:    mons.Len(),
		},
		Names:    nt,
		Devices:  devs,
		Network:  net,
		Monitors: mons,
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, newCachePayload(res)); err != nil {
			trace.Point(tr, trace.ScopeFile, "cache", "write failed: "+err.Error(), span.ID())
		}
	}

	verdict := "rejected"
	if res.OK() {
		verdict = "accepted"
	}
	span.WithExtra("diagnostics", strconv.Itoa(errs.Len())).End(verdict)
	return res
}

// loadFailure builds the result reported for a file that could not be read.
func loadFailure(path string, err error) *Result {
	errs := diag.NewErrors()
	errs.Add(diag.New(diag.IOLoadFileError, err.Error()), false, false)
	return &Result{Path: path, Errors: errs}
}
