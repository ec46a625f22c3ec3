package source

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	rePageNo     = regexp.MustCompile(`(?i)^page\s*\d+$`)
	rePageFrac   = regexp.MustCompile(`^\d+\s*/\s*\d+$`)
	reRuleLine   = regexp.MustCompile(`^[_\-=*]{3,}$`)
)

// Normalize canonicalizes raw reader output into the line-oriented stream the
// strategies operate on: CR removed, tabs widened to spaces, line breaks kept,
// trailing whitespace trimmed, blank-line runs collapsed.
//
// Intra-line space runs survive on purpose. The table strategy and the
// two-or-more-spaces inline shape key off column gaps; widening each tab to
// three spaces keeps that signal while still producing plain-space text.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "\t", "   ")
	s = strings.ReplaceAll(s, "\f", "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// StripNoiseLines drops page-number and decorative-rule lines from PDF text.
// Bare numeric lines stay: they may be prices the multi-line strategy pairs.
func StripNoiseLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if rePageNo.MatchString(trimmed) || rePageFrac.MatchString(trimmed) || reRuleLine.MatchString(trimmed) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
