package console

// History keeps the last commands typed on the console, oldest first.
// Prev and Next walk it like the up and down keys of a shell.
type History struct {
	items   []string
	maxSize int
	pos     int // browsing position, len(items) when not browsing
}

// HistorySize is the amount of commands kept by the viewer
const HistorySize = 64

// NewHistory creates an empty history holding at most maxSize commands
func NewHistory(maxSize int) *History {
	h := &History{}
	h.maxSize = maxSize
	return h
}

// Add appends a command, dropping the oldest one when full.
// Empty commands and repeats of the last one are not stored.
func (h *History) Add(cmd string) {
	if cmd != "" && (len(h.items) == 0 || h.items[len(h.items)-1] != cmd) {
		if len(h.items) == h.maxSize {
			h.items = h.items[1:]
		}
		h.items = append(h.items, cmd)
	}
	h.pos = len(h.items)
}

// Prev returns the command before the browsing position
func (h *History) Prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.items[h.pos], true
}

// Next returns the command after the browsing position. Walking past the
// newest command returns an empty line.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.items) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.items) {
		return "", true
	}
	return h.items[h.pos], true
}

// Len returns the amount of stored commands
func (h *History) Len() int {
	return len(h.items)
}

// IsEmpty checks if no command was stored
func (h *History) IsEmpty() bool {
	return len(h.items) == 0
}
