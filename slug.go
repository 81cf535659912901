package sharecard

import (
	"regexp"
	"strings"
)

// slugPattern matches the share slug format DD-MM-YYYY-LANG. The language
// code is matched case-insensitively; day and month are not range-checked,
// so a calendar-invalid slug like 99-99-9999-EN still parses and simply
// finds no document upstream.
var slugPattern = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})-((?i:EN|TA))$`)

// ParsedSlug is the structured form of a share slug.
type ParsedSlug struct {
	Filename string // document name in the content repository, e.g. "15-08-2024-EN.json"
	AppPath  string // canonical in-app route, e.g. "/15-08-2024-EN"
	Language string // uppercased language code, "EN" or "TA"
}

// ParseSlug validates and decodes a raw share slug. Leading and trailing
// slashes are stripped before matching. The second return value is false
// for anything that does not match the slug format, including the empty
// string; ParseSlug never fails in any other way.
func ParseSlug(raw string) (ParsedSlug, bool) {
	m := slugPattern.FindStringSubmatch(strings.Trim(raw, "/"))
	if m == nil {
		return ParsedSlug{}, false
	}
	lang := strings.ToUpper(m[2])
	key := m[1] + "-" + lang
	return ParsedSlug{
		Filename: key + ".json",
		AppPath:  "/" + key,
		Language: lang,
	}, true
}
