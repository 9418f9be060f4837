package generator

import (
	"regexp"
	"strings"
)

const (
	openDelimiter  = "{"
	closeDelimiter = "}"
)

// Extraction is the outcome of extracting a code body from model output
type Extraction struct {
	Body      string // text between the first "{" and the last "}" that follows it
	Malformed bool   // true when the output has no opening delimiter
	Raw       string // the unprocessed model output
}

// ExtractBody takes everything after the first opening brace and drops everything
// after the last closing brace. Output without an opening brace is malformed.
func ExtractBody(text string) Extraction {
	result := Extraction{Raw: text}
	start := strings.Index(text, openDelimiter)
	if start == -1 {
		result.Malformed = true
		return result
	}
	body := text[start+len(openDelimiter):]
	if end := strings.LastIndex(body, closeDelimiter); end != -1 {
		body = body[:end]
	}
	result.Body = body
	return result
}

// ExtractTail takes everything after the first opening brace
func ExtractTail(text string) Extraction {
	result := Extraction{Raw: text}
	start := strings.Index(text, openDelimiter)
	if start == -1 {
		result.Malformed = true
		return result
	}
	result.Body = text[start+len(openDelimiter):]
	return result
}

var (
	fencePattern     = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n(.*?)```")
	openFencePattern = regexp.MustCompile("(?s)```[a-zA-Z]*[ \\t]*\\n(.*)$")
)

// StripFences returns the content of the first fenced code block, or the trimmed text when unfenced.
// Truncated output whose block is never closed yields everything after the opening fence.
func StripFences(text string) string {
	if matches := fencePattern.FindStringSubmatch(text); len(matches) == 2 {
		return strings.TrimSpace(matches[1]) + "\n"
	}
	if matches := openFencePattern.FindStringSubmatch(text); len(matches) == 2 {
		return strings.TrimSpace(matches[1]) + "\n"
	}
	return strings.TrimSpace(text) + "\n"
}

// closeBlock appends a closing brace unless text already ends with one
func closeBlock(text string) string {
	if strings.HasSuffix(strings.TrimSpace(text), closeDelimiter) {
		return text
	}
	return text + "\n" + closeDelimiter
}
