// Package logging provides the unified logging interface for the numfmt
// tool. It abstracts the underlying implementation so components log the
// same way whether the backend is zerolog or the standard library.
package logging
