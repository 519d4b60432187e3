package application

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// inferEducationStart estimates when a program began from its end date
// and the degree name. Four years by default, two for a master's, five
// for a doctorate.
func inferEducationStart(end time.Time, degree string) time.Time {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "phd") || strings.Contains(d, "doctorate"):
		return end.AddDate(-5, 0, 0)
	case strings.Contains(d, "master") || strings.Contains(d, "m.s") || strings.Contains(d, "m.a"):
		return end.AddDate(-2, 0, 0)
	default:
		return end.AddDate(-4, 0, 0)
	}
}

// inferExperienceStart estimates when a role began from its end date.
// Internships run about four months, everything else about six.
func inferExperienceStart(end time.Time, employmentType string) time.Time {
	if strings.Contains(strings.ToLower(employmentType), "intern") {
		return end.AddDate(0, -4, 0)
	}
	return end.AddDate(0, -6, 0)
}

// inferProjectStart estimates when a project began from its end date.
func inferProjectStart(end time.Time) time.Time {
	return end.AddDate(0, -3, 0)
}

// resolveDates applies the start-date inference policy shared by all
// dated entry types. It returns ok=false when neither date parses, which
// callers treat as "skip this entry". The infer callback is only
// consulted when the start is missing but the end is known.
func resolveDates(startRaw, endRaw string, infer func(end time.Time) time.Time) (start time.Time, end *time.Time, ok bool) {
	s, hasStart := parseDate(startRaw)
	e, hasEnd := parseDate(endRaw)

	switch {
	case hasStart && hasEnd:
		return s, &e, true
	case hasStart:
		return s, nil, true
	case hasEnd:
		return infer(e), &e, true
	default:
		return time.Time{}, nil, false
	}
}
