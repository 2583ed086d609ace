package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the ember CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var segmentColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored renders the dotted version with each numeric segment in its own
// color. A pre-release suffix ("-dev", "-rc.1") is left unstyled.
func Colored() string {
	numbers, suffix := Version, ""
	if i := strings.IndexByte(Version, '-'); i >= 0 {
		numbers, suffix = Version[:i], Version[i:]
	}
	parts := strings.Split(numbers, ".")
	for i, part := range parts {
		parts[i] = segmentColors[i%len(segmentColors)].Sprint(part)
	}
	return strings.Join(parts, ".") + suffix
}

// Info is the trimmed build metadata rendered by the version command.
type Info struct {
	Version    string
	GitCommit  string
	GitMessage string
	BuildDate  string
}

// Describe returns the build metadata with whitespace trimmed, falling back
// to "dev" when no version was stamped.
func Describe() Info {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	return Info{
		Version:    v,
		GitCommit:  strings.TrimSpace(GitCommit),
		GitMessage: strings.TrimSpace(GitMessage),
		BuildDate:  strings.TrimSpace(BuildDate),
	}
}
