package scoreboard

const (
	// ActionLogCapacity is the number of entries kept before the oldest is
	// overwritten.
	ActionLogCapacity = 64
	// MaxActionLogEntry is the maximum length of one entry in bytes.
	MaxActionLogEntry = 159
)

// ActionLog is a fixed-capacity ring buffer of human-readable events.
// The zero value is an empty log.
type ActionLog struct {
	entries [ActionLogCapacity]string
	head    int
	count   int
}

// Add appends a message, overwriting the oldest entry once the log is full.
// Empty messages are ignored.
func (l *ActionLog) Add(message string) {
	if message == "" {
		return
	}
	l.entries[l.head] = truncate(message, MaxActionLogEntry)
	l.head = (l.head + 1) % ActionLogCapacity
	if l.count < ActionLogCapacity {
		l.count++
	}
}

// Len returns the number of entries held.
func (l *ActionLog) Len() int {
	return l.count
}

// Entries returns the entries from oldest to newest.
func (l *ActionLog) Entries() []string {
	start := 0
	if l.count == ActionLogCapacity {
		start = l.head
	}
	entries := make([]string, 0, l.count)
	for i := 0; i < l.count; i++ {
		entries = append(entries, l.entries[(start+i)%ActionLogCapacity])
	}
	return entries
}

// CopyOut joins the entries oldest first, one per line, stopping before the
// first entry that would not fit in maxLen bytes.
func (l *ActionLog) CopyOut(maxLen int) string {
	return JoinLines(l.Entries(), maxLen)
}
