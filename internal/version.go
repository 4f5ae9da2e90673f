package internal

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/baalimago/rat/internal/utils"
)

// Set with buildflag if built in pipeline and not using go install
var (
	BuildVersion  = ""
	BuildChecksum = ""
)

func printVersion(out io.Writer) error {
	hasPrintedVersion := false
	if BuildVersion != "" {
		hasPrintedVersion = true
		fmt.Fprintln(out, "version: "+BuildVersion)
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("failed to read build info")
	}
	if !hasPrintedVersion {
		fmt.Fprintln(out, "version: "+bi.Main.Version)
	}
	for _, dep := range bi.Deps {
		fmt.Fprintf(out, "%s %s\n", dep.Path, dep.Version)
	}
	return utils.ErrUserInitiatedExit
}
