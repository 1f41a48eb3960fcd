package version

import (
	"runtime"
	"runtime/debug"
)

// Unknown represents an unknown version.
const Unknown = "unknown"

var (
	// Software represents the txpool parser's version and should be set
	// by the linker.
	Software = "0.0.0-unset"

	// Toolchain is the version of the Go compiler/standard library.
	Toolchain = runtime.Version()
)

// GetGoEthereumVersion returns the version of the go-ethereum dependency or
// unknown if it can't be obtained.
func GetGoEthereumVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Unknown
	}

	for _, dep := range bi.Deps {
		if dep.Path == "github.com/ethereum/go-ethereum" {
			return dep.Version
		}
	}
	return Unknown
}
