package intent

import (
	"regexp"
	"strings"
)

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`my name is (\w+)`),
	regexp.MustCompile(`i am (\w+)`),
	regexp.MustCompile(`i'm (\w+)`),
	regexp.MustCompile(`call me (\w+)`),
}

// ExtractName pulls a first name out of an introduction message. Returns an
// empty string when no pattern matches.
func ExtractName(text string) string {
	t := strings.ToLower(text)
	for _, p := range namePatterns {
		if match := p.FindStringSubmatch(t); match != nil {
			name := match[1]
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return ""
}
