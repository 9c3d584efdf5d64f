package bumblebee

// Version information. Override at build time with ldflags:
//
//	go build -ldflags "-X github.com/arshaad-deriv/bumble-bee.Version=1.0.0"
const (
	// Name is the application name.
	Name = "bumble-bee"

	// Description is a short description of the application.
	Description = "AI-powered localization pipeline for Webflow content"
)

// Build-time information, typically set via ldflags.
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
