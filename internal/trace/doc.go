// Package trace records what the stopline pipeline is doing: driver commands,
// per-file phases (load, lex, parse, resolve) and, at the debug level,
// individual breakpoint queries.
//
// Enable it from the command line:
//
//	stopline scan --trace=- --trace-level=detail src/
//
// A Tracer travels through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", 0)
//	defer span.End("")
//
// Stream tracers write every event as it happens; ring tracers keep the last
// events in memory so they can be dumped when resolution hits a broken tree.
package trace
