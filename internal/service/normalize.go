package service

import (
	"regexp"
	"strings"
)

// sep matches anything the punctuation pass collapses to a space.
const sep = `[\s\-,.()\[\];:!?"]*`

var (
	fatFreeRe  = regexp.MustCompile(`\b(?:fat` + sep + `free|non` + sep + `fat)\b`)
	partSkimRe = regexp.MustCompile(`\bpart` + sep + `skim\b`)
	skimRe     = regexp.MustCompile(`\b(part )?skim` + sep + `(milk|buttermilk|yogurt|yoghurt|yoghourt|cheese|mozzarella|ricotta|cottage|cream` + sep + `cheese)\b`)
)

var spellingVariants = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\byogh(?:o)?urt`), "yogurt"},
	{regexp.MustCompile(`\bchillies\b`), "chilies"},
	{regexp.MustCompile(`\bchilli\b`), "chili"},
	{regexp.MustCompile(`\bflavour`), "flavor"},
	{regexp.MustCompile(`\bcolour`), "color"},
}

// Normalize canonicalizes a food or ingredient name for alias matching. The
// result is lower-case, has fat-content modifiers collapsed ("fat-free",
// "non-fat", "skim milk" all become "nonfat ..."), has spelling variants
// unified and has punctuation collapsed to single spaces. Percent annotations
// such as "2%" are kept. Normalize is idempotent.
func Normalize(s string) string {
	// modifier rules run on collapsed text so a second pass sees the same
	// word boundaries as the first
	s = collapsePunctuation(strings.ToLower(s))

	s = fatFreeRe.ReplaceAllString(s, "nonfat")
	s = partSkimRe.ReplaceAllString(s, "part skim")
	s = skimRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := skimRe.FindStringSubmatch(m)
		if sub[1] != "" {
			return m
		}
		return "nonfat " + sub[2]
	})

	for _, v := range spellingVariants {
		s = v.re.ReplaceAllString(s, v.repl)
	}

	return collapsePunctuation(s)
}

// collapsePunctuation turns parentheses, commas, periods, hyphens and similar
// marks into spaces, then collapses whitespace runs and trims. A period
// between two digits is a decimal point and is kept.
func collapsePunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '.':
			if i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
				b.WriteByte(c)
				continue
			}
			b.WriteByte(' ')
		case ',', '-', '(', ')', '[', ']', ';', ':', '!', '?', '"':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
