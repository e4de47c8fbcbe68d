// Package trace records what the logsim front end is doing.
//
// Events are grouped into spans (begin/end pairs) and points. Every event
// carries a Scope; the tracer Level decides which scopes are written:
//
//   - ScopeDriver: command and file-set boundaries
//   - ScopeFile: one source file going through scan and parse
//   - ScopeBlock: DEVICES, CONNECTIONS and MONITORS blocks
//   - ScopeStatement: single statements and error recovery
//
// Enable tracing from the command line:
//
//	logsim check --trace=- --trace-level=detail circuit.def
//
// A tracer travels through the pipeline inside a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "parse", 0)
//	defer span.End("")
package trace
