package suggest

import "strings"

const contextLines = 5

// Snapshot is the completion request payload: the full document plus a
// bounded window of local context around the cursor, sized to keep prompt
// cost flat regardless of file size.
type Snapshot struct {
	FileName         string `json:"fileName"`
	Code             string `json:"code"`
	CurrentLine      string `json:"currentLine"`
	PreviousLines    string `json:"previousLines"`
	TextBeforeCursor string `json:"textBeforeCursor"`
	TextAfterCursor  string `json:"textAfterCursor"`
	NextLines        string `json:"nextLines"`
	LineNumber       int    `json:"lineNumber"`
}

// BuildSnapshot captures the editor state around cursor (a byte offset into
// code). Returns false for an empty document; there is nothing to complete.
func BuildSnapshot(fileName, code string, cursor int) (*Snapshot, bool) {
	if strings.TrimSpace(code) == "" {
		return nil, false
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(code) {
		cursor = len(code)
	}

	lines := strings.Split(code, "\n")

	// Locate the cursor's line and its offset within that line.
	lineIdx := 0
	offset := cursor
	for i, line := range lines {
		if offset <= len(line) {
			lineIdx = i
			break
		}
		offset -= len(line) + 1
		lineIdx = i
	}

	current := lines[lineIdx]
	if offset > len(current) {
		offset = len(current)
	}

	prevFrom := lineIdx - contextLines
	if prevFrom < 0 {
		prevFrom = 0
	}
	nextTo := lineIdx + 1 + contextLines
	if nextTo > len(lines) {
		nextTo = len(lines)
	}

	return &Snapshot{
		FileName:         fileName,
		Code:             code,
		CurrentLine:      current,
		PreviousLines:    strings.Join(lines[prevFrom:lineIdx], "\n"),
		TextBeforeCursor: current[:offset],
		TextAfterCursor:  current[offset:],
		NextLines:        strings.Join(lines[lineIdx+1:nextTo], "\n"),
		LineNumber:       lineIdx + 1,
	}, true
}
