package depprobe

import "fmt"

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string used for description document probes
func UserAgent() string {
	return fmt.Sprintf("depprobe/%s", version)
}
