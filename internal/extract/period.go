package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/paisa-ai/paisa/internal/model"
)

var (
	lastWeekRe  = regexp.MustCompile(`last\s+week`)
	thisMonthRe = regexp.MustCompile(`this\s+month`)
	lastMonthRe = regexp.MustCompile(`last\s+month`)
	thisYearRe  = regexp.MustCompile(`this\s+year`)
	fiscalRe    = regexp.MustCompile(`(?:financial|fiscal)\s+year`)
	quarterRe   = regexp.MustCompile(`q([1-4])`)
)

// resolvePeriod turns a relative time expression into a concrete interval
// anchored at now. Expressions it does not understand (month names, "last 3
// days") report ok=false; the caller drops the match rather than guessing.
func resolvePeriod(expr string, now time.Time) (model.Period, bool) {
	s := strings.ToLower(expr)

	switch {
	case strings.Contains(s, "today"):
		start, end := dayBounds(now)
		return model.Period{Start: start, End: end, Label: "today"}, true

	case strings.Contains(s, "yesterday"):
		start, end := dayBounds(now.AddDate(0, 0, -1))
		return model.Period{Start: start, End: end, Label: "yesterday"}, true

	case lastWeekRe.MatchString(s):
		return model.Period{Start: now.AddDate(0, 0, -7), End: now, Label: "last week"}, true

	case thisMonthRe.MatchString(s):
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return model.Period{Start: start, End: now, Label: "this month"}, true

	case lastMonthRe.MatchString(s):
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := monthStart.AddDate(0, -1, 0)
		_, end := dayBounds(monthStart.AddDate(0, 0, -1))
		return model.Period{Start: start, End: end, Label: "last month"}, true

	case thisYearRe.MatchString(s):
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return model.Period{Start: start, End: now, Label: "this year"}, true

	case fiscalRe.MatchString(s):
		// Indian financial year runs 1 April through 31 March.
		year := now.Year()
		if now.Month() < time.April {
			year--
		}
		start := time.Date(year, time.April, 1, 0, 0, 0, 0, now.Location())
		return model.Period{Start: start, End: now, Label: "financial year"}, true
	}

	if m := quarterRe.FindStringSubmatch(s); m != nil {
		quarter, _ := strconv.Atoi(m[1])
		startMonth := time.Month((quarter-1)*3 + 1)
		start := time.Date(now.Year(), startMonth, 1, 0, 0, 0, 0, now.Location())
		_, end := dayBounds(start.AddDate(0, 3, -1))
		return model.Period{Start: start, End: end, Label: "Q" + m[1]}, true
	}

	return model.Period{}, false
}

// dayBounds returns the first and last instant of the calendar day holding t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}
