package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the tool version, overridable at build time:
//
//	go build -ldflags "-X github.com/anacrolix/num-format/internal/app.Version=1.2.3"
var Version = "dev"

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "numfmt %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// HasVersionFlag reports whether args ask for the version. Checked
// before flag parsing so --version works regardless of other flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}
