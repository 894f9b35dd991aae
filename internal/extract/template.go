package extract

import (
	"strconv"
	"strings"
)

// NotSpecified is returned for any field whose header cannot be resolved in
// the completion text. Callers render it directly, so it is a display string
// rather than an absent value.
const NotSpecified = "Not specified"

// Template holds the ordered header labels a completion is expected to
// follow. Field lookups are case-insensitive and always bind to the first
// occurrence of a header; a field's body ends at the first occurrence of the
// next declared header that appears strictly after it.
type Template struct {
	headers []string
}

// NewTemplate creates a Template from header labels in their declared order.
// Labels should include the trailing colon (e.g. "WIN PROBABILITY:").
func NewTemplate(headers ...string) *Template {
	return &Template{headers: headers}
}

// segment returns the raw text between a header and the next declared header
// after it. The second return value is false when the header is absent.
func (t *Template) segment(text, header string) (string, bool) {
	upperText := strings.ToUpper(text)
	upperHeader := strings.ToUpper(header)

	start := strings.Index(upperText, upperHeader)
	if start == -1 {
		return "", false
	}

	bodyStart := start + len(header)
	end := len(text)

	pos := -1
	for i, h := range t.headers {
		if strings.EqualFold(h, header) {
			pos = i
			break
		}
	}
	for i := pos + 1; i < len(t.headers); i++ {
		idx := strings.Index(upperText, strings.ToUpper(t.headers[i]))
		if idx > start {
			end = idx
			break
		}
	}

	return text[bodyStart:end], true
}

// Value extracts a scalar field: the trimmed text between the header and the
// next declared header. Returns NotSpecified when the header is absent or the
// body is empty.
func (t *Template) Value(text, header string) string {
	body, ok := t.segment(text, header)
	if !ok {
		return NotSpecified
	}
	v := strings.TrimSpace(body)
	if v == "" {
		return NotSpecified
	}
	return v
}

// Number extracts a numeric or percentage field. A trailing percent sign is
// stripped before parsing; anything after the leading numeric token is
// ignored. Returns 0 when the header is absent or the body does not begin
// with a number.
func (t *Template) Number(text, header string) float64 {
	body, ok := t.segment(text, header)
	if !ok {
		return 0
	}
	v := strings.TrimSpace(body)
	v = strings.TrimSuffix(v, "%")
	v = strings.TrimSpace(v)
	return leadingFloat(v)
}

// List extracts a bulleted section: the lines between the header and the next
// declared header that begin with "-" or a numbered-list marker ("1." etc),
// joined with newlines. Returns NotSpecified when the header is absent or no
// lines survive filtering.
func (t *Template) List(text, header string) string {
	body, ok := t.segment(text, header)
	if !ok {
		return NotSpecified
	}

	var kept []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-") || isNumberedItem(line) {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return NotSpecified
	}
	return strings.Join(kept, "\n")
}

// Unresolved reports whether none of the declared headers occur in the text.
// Callers may log this as a signal that the model ignored the format
// contract; it is not a failure.
func (t *Template) Unresolved(text string) bool {
	upperText := strings.ToUpper(text)
	for _, h := range t.headers {
		if strings.Contains(upperText, strings.ToUpper(h)) {
			return false
		}
	}
	return true
}

// leadingFloat parses the leading numeric token of s, accepting an optional
// sign and decimal point. Returns 0 when s does not begin with a number.
func leadingFloat(s string) float64 {
	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1
		case (r == '+' || r == '-') && i == 0:
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
			end = i + 1
		default:
			goto done
		}
	}
done:
	if !seenDigit {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimRight(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}

// isNumberedItem reports whether the line starts with "N." for some digits N.
func isNumberedItem(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	return i > 0 && i < len(line) && line[i] == '.'
}
