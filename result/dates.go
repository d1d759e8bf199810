package result

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	// zone ids in zoned date-times
	_ "time/tzdata"
)

var (
	// ErrUnsupportedDateFormat is returned when no known layout matches a value
	ErrUnsupportedDateFormat = errors.New("unsupported date format")

	// ErrDateParse is returned when a value matches a layout but is not a valid date
	ErrDateParse = errors.New("error parsing date format")
)

// dateLayout pairs a guard pattern with the parser used once it matches
type dateLayout struct {
	name    string
	pattern *regexp.Regexp
	parse   func(string) (time.Time, error)
}

// Order matters: the first layout whose pattern matches decides the parse.
var dateLayouts = []dateLayout{
	{"yyyyMMdd", regexp.MustCompile(`^\d{8}$`), layout("20060102")},
	{"yyyy-MM-dd", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), layout("2006-01-02")},
	{"offset date", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[+-]\d{2}:\d{2}$`), layout("2006-01-02Z07:00")},
	{"utc date", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}Z$`), layout("2006-01-02Z07:00")},
	{"ordinal date", regexp.MustCompile(`^\d{4}-\d{3}$`), parseOrdinalDate},
	{"week date", regexp.MustCompile(`^\d{4}-W\d{2}-\d$`), parseWeekDate},
}

var dateTimeLayouts = []dateLayout{
	{"utc date-time", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?Z$`), layout(time.RFC3339)},
	{"offset date-time without seconds", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}[+-]\d{2}:\d{2}$`), layout("2006-01-02T15:04Z07:00")},
	{"offset date", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[+-]\d{2}:\d{2}$`), layout("2006-01-02Z07:00")},
	{"local date-time", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?$`), layout("2006-01-02T15:04:05")},
	{"local date-time with space", regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), layout("2006-01-02 15:04:05")},
	{"offset date-time", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?[+-]\d{2}:\d{2}$`), layout(time.RFC3339)},
	{"zoned date-time", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?[+-]\d{2}:\d{2}\[.+\]$`), parseZonedDateTime},
}

// ParseDate parses a date in any supported layout and returns midnight UTC
// of that day. Values carrying an offset are shifted to UTC first.
func ParseDate(value string) (time.Time, error) {
	t, err := normalize(dateLayouts, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseDateTime parses a date-time in any supported layout and returns it in
// UTC. Values without an offset are taken as UTC wall time.
func ParseDateTime(value string) (time.Time, error) {
	return normalize(dateTimeLayouts, value)
}

func normalize(layouts []dateLayout, value string) (time.Time, error) {
	for _, l := range layouts {
		if !l.pattern.MatchString(value) {
			continue
		}
		t, err := l.parse(value)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s (%s): %v", ErrDateParse, value, l.name, err)
		}
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedDateFormat, value)
}

func layout(l string) func(string) (time.Time, error) {
	return func(s string) (time.Time, error) {
		return time.Parse(l, s)
	}
}

// parseOrdinalDate parses ISO ordinal dates such as 2024-187
func parseOrdinalDate(s string) (time.Time, error) {
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return time.Time{}, err
	}
	day, err := strconv.Atoi(s[5:])
	if err != nil {
		return time.Time{}, err
	}

	days := 365
	if isLeap(year) {
		days = 366
	}
	if day < 1 || day > days {
		return time.Time{}, fmt.Errorf("day of year %d out of range 1..%d", day, days)
	}
	return time.Date(year, time.January, day, 0, 0, 0, 0, time.UTC), nil
}

// parseWeekDate parses ISO week dates such as 2024-W27-5
func parseWeekDate(s string) (time.Time, error) {
	parts := strings.SplitN(s, "-", 3)
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, err
	}
	week, err := strconv.Atoi(strings.TrimPrefix(parts[1], "W"))
	if err != nil {
		return time.Time{}, err
	}
	weekday, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, err
	}

	if weekday < 1 || weekday > 7 {
		return time.Time{}, fmt.Errorf("day of week %d out of range 1..7", weekday)
	}
	// December 28th always falls in the last ISO week of its year
	_, weeks := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	if week < 1 || week > weeks {
		return time.Time{}, fmt.Errorf("week %d out of range 1..%d", week, weeks)
	}

	// January 4th always falls in ISO week 1
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := int(jan4.Weekday())
	if offset == 0 {
		offset = 7
	}
	monday := jan4.AddDate(0, 0, 1-offset)
	return monday.AddDate(0, 0, (week-1)*7+weekday-1), nil
}

// parseZonedDateTime parses 2011-12-03T10:15:30+01:00[Europe/Paris]. The
// offset fixes the instant; the zone id must name a known zone.
func parseZonedDateTime(s string) (time.Time, error) {
	open := strings.IndexByte(s, '[')
	zone := s[open+1 : len(s)-1]
	if _, err := time.LoadLocation(zone); err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, s[:open])
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
