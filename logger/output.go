package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: generated files, errors, final status
//	1 (-v)      - + skipped runs, error hints, watch events
//	2 (-vv)     - + effective settings, model summary, timing

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Written artifacts, check results
	OutputErrors                        // The one-line error

	// Level 1 (-v) - Informational
	OutputHints    // Hints attached to configuration errors
	OutputProgress // Skipped (up to date) runs, watch events

	// Level 2 (-vv) - Detailed
	OutputSettings // Effective generator settings
	OutputModel    // Module and flag counts
	OutputTiming   // Generation timing
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:  VerbosityUser,
	OutputErrors:   VerbosityUser,
	OutputHints:    VerbosityInfo,
	OutputProgress: VerbosityInfo,
	OutputSettings: VerbosityDebug,
	OutputModel:    VerbosityDebug,
	OutputTiming:   VerbosityDebug,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityDebug
	}
	return verbosity >= minLevel
}
