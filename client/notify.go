package client

import "fmt"

// Notifier delivers a user-facing notification. The embedding frontend
// supplies the transport.
type Notifier interface {
	Notify(title, body string)
}

// NopNotifier drops everything; used when the embedder wires no notifier.
type NopNotifier struct{}

func (NopNotifier) Notify(title, body string) {}

// goalReachedKey dedupes the goal-reached notification to once per user per
// calendar day.
func goalReachedKey(userID, today string) string {
	return fmt.Sprintf("goalReached_%s_%s", today, userID)
}
