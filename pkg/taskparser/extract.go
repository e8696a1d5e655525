package taskparser

import (
	"regexp"
	"strings"
)

var (
	// [N[.]] **name** dash
	taskHeadRe = regexp.MustCompile(`(?:(\d+)\.?\s*)?\*\*(.+?)\*\*\s*[-–—]\s*`)

	// another numbered bold task later on the same line, or right after an empty description
	nextTaskRe = regexp.MustCompile(`(?:^|\s)\d+\.\s*\*\*.+?\*\*\s*[-–—]`)

	// description followed by an optional trailing parenthetical
	annotationRe = regexp.MustCompile(`^(.*?)\s*([(（][^()（）]*[)）])\s*$`)

	// "N." not followed by a digit, so "1.5 hours" is not an ordinal
	looseLineRe = regexp.MustCompile(`^\s*(\d+)\.(\D.*|)$`)
)

// ExtractTaskLines scans text top to bottom and returns one fragment per task line.
// Lines look like "1. **Task Name** - description (⏰ 2小时 | 🔥🔥🔥)". When no such
// line exists, every line starting with "N." becomes a loose fragment instead.
// An empty result is valid.
func ExtractTaskLines(text string) []Fragment {
	if frags := extractBoldLines(text); len(frags) > 0 {
		return frags
	}
	return extractNumberedLines(text)
}

func extractBoldLines(text string) []Fragment {
	var frags []Fragment

	lineStart := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		body := strings.TrimRight(line, "\r\n")

		pos := 0
		for pos < len(body) {
			head := taskHeadRe.FindStringSubmatchIndex(body[pos:])
			if head == nil {
				break
			}

			rest := body[pos+head[1]:]
			segEnd := len(rest)
			if next := nextTaskRe.FindStringIndex(rest); next != nil {
				segEnd = next[0]
			}

			frag := Fragment{
				Name:   strings.TrimSpace(body[pos+head[4] : pos+head[5]]),
				Raw:    strings.TrimSpace(body[pos+head[0] : pos+head[1]+segEnd]),
				Offset: lineStart + pos + head[0],
			}
			if head[2] >= 0 {
				frag.Ordinal = body[pos+head[2] : pos+head[3]]
			}
			frag.Description, frag.Annotation = splitAnnotation(rest[:segEnd])

			if frag.Name != "" && frag.Description != "" {
				frags = append(frags, frag)
			}

			pos += head[1] + segEnd
		}

		lineStart += len(line)
	}

	return frags
}

// splitAnnotation separates a trailing "(...)" from a description.
func splitAnnotation(segment string) (string, string) {
	segment = strings.TrimSpace(segment)
	if m := annotationRe.FindStringSubmatch(segment); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	return segment, ""
}

func extractNumberedLines(text string) []Fragment {
	var frags []Fragment

	lineStart := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		body := strings.TrimRight(line, "\r\n")
		if m := looseLineRe.FindStringSubmatchIndex(body); m != nil {
			content := strings.TrimSpace(body[m[4]:m[5]])
			if content != "" {
				frags = append(frags, Fragment{
					Ordinal: body[m[2]:m[3]],
					Name:    content,
					Raw:     strings.TrimSpace(body),
					Offset:  lineStart + m[2],
					Loose:   true,
				})
			}
		}
		lineStart += len(line)
	}

	return frags
}
