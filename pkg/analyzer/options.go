package analyzer

// Option is a functional option for customizing an analysis.
type Option func(*analyzeOptions)

// analyzeOptions holds optional configuration for one analysis call.
type analyzeOptions struct {
	source        string
	includeDjango bool
	disabledRules []string
}

// defaultOptions returns the option set used when no options are given:
// all rules active, source labelled as ad-hoc input.
func defaultOptions() *analyzeOptions {
	return &analyzeOptions{
		source:        DefaultSource,
		includeDjango: true,
	}
}

// WithSource sets the source identifier recorded on the result, typically
// the path of the analyzed migration file.
//
// Example:
//
//	result := analyzer.Analyze(sql, analyzer.WithSource("migrations/0042.sql"))
func WithSource(source string) Option {
	return func(opts *analyzeOptions) {
		opts.source = source
	}
}

// WithoutDjangoRules disables the Django-migration rules (IDs MS1xx).
//
// Use this when analyzing plain SQL migrations that are not generated by
// Django, where a RunPython-shaped string could only be a false positive.
func WithoutDjangoRules() Option {
	return func(opts *analyzeOptions) {
		opts.includeDjango = false
	}
}

// WithDisabledRules excludes the named rule IDs from the analysis.
//
// Unknown IDs are ignored. This is the programmatic equivalent of the
// disabled_rules list in a rules configuration file.
func WithDisabledRules(ids ...string) Option {
	return func(opts *analyzeOptions) {
		opts.disabledRules = append(opts.disabledRules, ids...)
	}
}
