package ui

// AlertQueue collects warnings raised by the contact store during an update
// so the UI can show them as a modal once the operation returns.
type AlertQueue struct {
	pending []string
}

// NewAlertQueue creates an empty queue.
func NewAlertQueue() *AlertQueue {
	return &AlertQueue{}
}

// Warn implements contacts.Notifier.
func (q *AlertQueue) Warn(message string) {
	q.pending = append(q.pending, message)
}

// Pop removes and returns the oldest warning.
func (q *AlertQueue) Pop() (string, bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	msg := q.pending[0]
	q.pending = q.pending[1:]
	return msg, true
}

// Len returns the number of pending warnings.
func (q *AlertQueue) Len() int {
	return len(q.pending)
}
