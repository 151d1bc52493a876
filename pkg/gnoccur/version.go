// Package gnoccur defines the application-level contracts implemented
// by the internal/io* packages.
package gnoccur

// Version and Build are set during compilation via ldflags.
var (
	Version = "v0.1.0+dev"
	Build   = "n/a"
)
