// Package version provides information about the build version of the client.
package version

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'folio/internal/core/version.version=v0.1.0'
	// -X 'folio/internal/core/version.commit=abcd' -X 'folio/internal/core/version.date=2026-10-18'"
	return BuildInfo{
		Name:    "folio",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// UserAgent is the default User-Agent sent to the backend
func UserAgent() string {
	bi := Info()
	return bi.Name + "/" + bi.Version
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
