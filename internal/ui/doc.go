// Package ui provides theme and color support for the numfmt tool's
// terminal output. It defines color schemes and ANSI escape code
// accessors so the CLI and the locale explorer style their output
// consistently, and so NO_COLOR disables everything in one place.
//
// This package is a shared dependency for presentation layers only; the
// formatting library itself never colors its output.
package ui
