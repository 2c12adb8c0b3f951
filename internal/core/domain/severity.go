package domain

// Severity is the enforcement level of a rule.
type Severity string

const (
	// SeverityOff disables a rule.
	SeverityOff Severity = "off"
	// SeverityWarn reports a rule violation as a warning.
	SeverityWarn Severity = "warn"
	// SeverityError reports a rule violation as an error.
	SeverityError Severity = "error"
)

var severityOrdinals = map[Severity]int{
	SeverityOff:   0,
	SeverityWarn:  1,
	SeverityError: 2,
}

// ParseSeverity reports whether v is one of the symbolic severities.
// Both Severity and plain string values are accepted.
func ParseSeverity(v any) (Severity, bool) {
	var s Severity
	switch t := v.(type) {
	case Severity:
		s = t
	case string:
		s = Severity(t)
	default:
		return "", false
	}
	if _, ok := severityOrdinals[s]; !ok {
		return "", false
	}
	return s, true
}

// Ordinal returns the numeric form of the severity (off=0, warn=1, error=2).
// Unknown severities return -1.
func (s Severity) Ordinal() int {
	if o, ok := severityOrdinals[s]; ok {
		return o
	}
	return -1
}
