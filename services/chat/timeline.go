package chat

import (
	redis_models "SportHub/models/redis"
)

// Timeline is the ordered view of one chat room's messages, exactly as a
// connected client displays it. A history replay replaces the whole view;
// live messages append in delivery order. Redelivered messages are NOT
// deduplicated by id: if the transport redelivers, duplicates show up.
type Timeline struct {
	messages []redis_models.ChatMessage
}

// ReplaceAll overwrites the timeline with a full history resync, discarding
// anything accumulated before the history arrived.
func (t *Timeline) ReplaceAll(history []redis_models.ChatMessage) {
	t.messages = make([]redis_models.ChatMessage, len(history))
	copy(t.messages, history)
}

// Append adds exactly one message at the end, in receipt order.
func (t *Timeline) Append(msg redis_models.ChatMessage) {
	t.messages = append(t.messages, msg)
}

// Messages returns a copy of the current view.
func (t *Timeline) Messages() []redis_models.ChatMessage {
	out := make([]redis_models.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages in the view.
func (t *Timeline) Len() int {
	return len(t.messages)
}

// Clear empties the view. Used when the session leaves its room.
func (t *Timeline) Clear() {
	t.messages = nil
}
