package normalize

import "strings"

var months = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04", "May": "05", "Jun": "06",
	"Jul": "07", "Aug": "08", "Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// MonthNumber converts a month abbreviation like "Dec" to "12". Unknown input is returned unchanged.
func MonthNumber(abbr string) string {
	if m, ok := months[abbr]; ok {
		return m
	}
	return abbr
}

// Timestamp rewrites "Mon-DD-YY HH:MM:SS" as "20YY-MM-DD HH:MM:SS".
// Date and time are the first two whitespace-separated words; anything after them is dropped.
// Nothing is validated: malformed input yields malformed output.
func Timestamp(dttm string) string {
	dttmParts := padded(strings.Fields(dttm), 2)
	date, clock := dttmParts[0], dttmParts[1]

	parts := padded(strings.Split(date, "-"), 3)
	month, day, year := parts[0], parts[1], parts[2]

	return "20" + year + "-" + MonthNumber(month) + "-" + day + " " + clock
}

// Dollar strips everything but digits and the decimal point, "$3,453.23" -> "3453.23".
// Empty input is returned as is.
func Dollar(money string) string {
	if money == "" {
		return money
	}
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, money)
}

// IsJSONFile reports whether path names a .json file with a non-empty stem
func IsJSONFile(path string) bool {
	return len(path) > 5 && strings.HasSuffix(path, ".json")
}

// padded extends parts with empty strings up to n entries
func padded(parts []string, n int) []string {
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts
}
