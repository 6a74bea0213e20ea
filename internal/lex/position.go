package lex

import "bytes"

// Position turns a 0-based byte offset into data into a 1-based
// (line, column) pair, counting '\n' bytes the way every clause-line
// error in the sequential and threaded parsers is located.
func Position(data []byte, offset int) (line, column int) {
	if offset > len(data) {
		offset = len(data)
	}
	line = 1 + bytes.Count(data[:offset], []byte{'\n'})
	if idx := bytes.LastIndexByte(data[:offset], '\n'); idx >= 0 {
		column = offset - idx
	} else {
		column = offset + 1
	}
	return line, column
}

// FrameMarker is one of the three bracketed stanza headers that begin an
// entity frame in an OBO document.
type FrameMarker string

const (
	MarkerTerm     FrameMarker = "[Term]"
	MarkerTypedef  FrameMarker = "[Typedef]"
	MarkerInstance FrameMarker = "[Instance]"
)

var frameMarkers = []FrameMarker{MarkerTerm, MarkerTypedef, MarkerInstance}

// FindFrameMarker returns the byte offset of the next frame marker in
// data at or after start, and which marker it is. A marker only counts
// if it begins a line (offset 0, or immediately preceded by '\n'), since
// the bracket sequence may otherwise appear inside a quoted string or
// comment. It returns found=false if no marker starts a line at or after
// start.
func FindFrameMarker(data []byte, start int) (offset int, marker FrameMarker, found bool) {
	best := -1
	var bestMarker FrameMarker
	for _, m := range frameMarkers {
		search := start
		for {
			idx := bytes.Index(data[search:], []byte(m))
			if idx < 0 {
				break
			}
			abs := search + idx
			if abs == 0 || data[abs-1] == '\n' {
				if best == -1 || abs < best {
					best = abs
					bestMarker = m
				}
				break
			}
			search = abs + 1
		}
	}
	if best == -1 {
		return 0, "", false
	}
	return best, bestMarker, true
}
