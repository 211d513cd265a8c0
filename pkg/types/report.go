package types

// Severity grades a diagnostic message.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// Reporter is the diagnostics sink threaded through scan, plan and execute.
// Core packages never touch a global logger; the caller decides where
// messages go.
type Reporter interface {
	Report(sev Severity, format string, args ...any)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(sev Severity, format string, args ...any)

// Report implements Reporter.
func (f ReporterFunc) Report(sev Severity, format string, args ...any) {
	f(sev, format, args...)
}

// NopReporter discards all diagnostics.
var NopReporter Reporter = ReporterFunc(func(Severity, string, ...any) {})
