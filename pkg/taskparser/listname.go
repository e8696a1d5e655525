package taskparser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	goalHeadingRe     = regexp.MustCompile(`(?im)^\s*(?:#{1,6}\s*)?(?:[^\s\w#]+\s*)?(?:目标分析|goal analysis)\s*[:：]?\s*$`)
	taskListHeadingRe = regexp.MustCompile(`(?im)^\s*(?:#{1,6}\s*)?(?:[^\s\w#]+\s*)?(?:任务清单|task list)\s*[:：]?\s*$`)
	boldPhraseRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	nameSeparatorRe   = regexp.MustCompile(`[\s\-–—/、]+`)
	listNamePunctRe   = regexp.MustCompile(`[，。！？；：,.!?;:*#]`)
	spacesRe          = regexp.MustCompile(`\s+`)
)

// ExtractListName derives a short list name from an AI response. It prefers the
// line under a goal heading, then the first word of the first bold phrase after a
// task-list heading, and otherwise returns DefaultListName. Never empty.
func ExtractListName(text string) string {
	if line, ok := lineAfterHeading(text, goalHeadingRe); ok {
		name := listNamePunctRe.ReplaceAllString(line, "")
		name = strings.TrimSpace(spacesRe.ReplaceAllString(name, " "))
		if name != "" {
			return truncate(name, ListNameMaxLength)
		}
	}

	if loc := taskListHeadingRe.FindStringIndex(text); loc != nil {
		if m := boldPhraseRe.FindStringSubmatch(text[loc[1]:]); m != nil {
			for _, word := range nameSeparatorRe.Split(strings.TrimSpace(m[1]), -1) {
				if utf8.RuneCountInString(word) > 1 {
					return word + RelatedTasksSuffix
				}
			}
		}
	}

	return DefaultListName
}

// lineAfterHeading returns the first non-blank line following the heading, unless
// that line is itself a heading.
func lineAfterHeading(text string, heading *regexp.Regexp) (string, bool) {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	lines := strings.Split(text[loc[1]:], "\n")
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			return "", false
		}
		return line, true
	}

	return "", false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
