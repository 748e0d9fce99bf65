package recorder

import "slices"

// Recorder stores messages in the order they were recorded.
// It is not safe for concurrent Record calls.
type Recorder struct {
	// messages is the append-only history.
	messages []string
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{
		messages: make([]string, 0),
	}
}

// Record appends message verbatim.
func (r *Recorder) Record(message string) {
	r.messages = append(r.messages, message)
}

// History returns a copy of all recorded messages, oldest first.
// The result is never nil.
func (r *Recorder) History() []string {
	if len(r.messages) == 0 {
		return []string{}
	}

	return slices.Clone(r.messages)
}

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	return len(r.messages)
}

// Last returns the most recent message, if any.
func (r *Recorder) Last() (string, bool) {
	if len(r.messages) == 0 {
		return "", false
	}

	return r.messages[len(r.messages)-1], true
}
