package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/hyprkit/hyprkit/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/hyprkit/hyprkit/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/hyprkit/hyprkit/internal/version.Date={{.Date}}
)
