// Package cli holds the command wiring shared by the benchmark programs:
// a cobra root command taking one variant selector, common kernel and
// cache-simulation flags, the slog logger, and the host cache-line lookup
// behind --threshold 0.
//
// Programs supply only their file flags and a Run function; cli resolves
// everything else into an Env before Run is called.
package cli
