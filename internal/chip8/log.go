package chip8

// Log is an ordered sink for the diagnostic messages produced while loading
// and stepping. The core appends plain reproducible strings; the host drains
// them between steps and forwards them to its logger or log view.
type Log struct {
	entries []string
}

// Append adds one diagnostic message.
func (l *Log) Append(msg string) {
	l.entries = append(l.entries, msg)
}

// Drain returns all buffered messages and empties the sink.
func (l *Log) Drain() []string {
	entries := l.entries
	l.entries = nil
	return entries
}

// Len returns the number of buffered messages.
func (l *Log) Len() int {
	return len(l.entries)
}
