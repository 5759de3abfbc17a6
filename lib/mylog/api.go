package mylog

import "context"

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New is set at init time to the logger implementation that fits the
// runtime environment.
var New func(name string) Logger

// Logger writes a leveled line, labeled with the donation or draft uid
// being handled so related lines can be correlated.
type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}
