package sse

import "strings"

const (
	fieldEvent   = "event:"
	fieldData    = "data:"
	commentStart = ":"
)

// Event is a parsed record.
type Event struct {
	// Name is the trimmed value of the last "event:" line, empty if none.
	Name string
	// Data holds the "data:" lines joined with "\n".
	Data string
	// Comments holds comment lines with the leading ":" removed.
	Comments []string
}

// HasName reports whether the record carried a non-empty event name.
func (e Event) HasName() bool {
	return e.Name != ""
}

// ParseRecord parses one record (without its trailing delimiter). Unknown
// fields and blank lines are ignored.
func ParseRecord(record string) Event {
	var (
		ev   Event
		data []string
	)

	for _, line := range strings.Split(record, "\n") {
		switch {
		case strings.HasPrefix(line, fieldEvent):
			ev.Name = strings.TrimSpace(line[len(fieldEvent):])
		case strings.HasPrefix(line, fieldData):
			data = append(data, strings.TrimPrefix(line[len(fieldData):], " "))
		case strings.HasPrefix(line, commentStart):
			ev.Comments = append(ev.Comments, strings.TrimSpace(line[len(commentStart):]))
		}
	}

	ev.Data = strings.Join(data, "\n")
	return ev
}
