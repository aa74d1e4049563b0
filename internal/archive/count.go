package archive

// Count reports how many conversations are attributable to user. For a
// list document a conversation contributes at most one: an owner match,
// else a sender match in messages, else one in chat_messages. For a
// keyed document the count is the length of the user's list, or of its
// conversations sub-list when the value is a mapping.
func (d *Document) Count(user string) int {
	if d.Shape == ShapeKeyed {
		return keyedLen(d.ByUser[user])
	}

	n := 0
	for _, c := range d.Conversations {
		conv, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if conversationMatches(conv, user) {
			n++
		}
	}
	return n
}

func conversationMatches(conv map[string]any, user string) bool {
	if owner, ok := conversationOwner(conv); ok && owner == user {
		return true
	}
	return hasSender(conv, "messages", user) || hasSender(conv, "chat_messages", user)
}

// hasSender reports whether any message in the named container was sent
// by user, stopping at the first match.
func hasSender(conv map[string]any, field, user string) bool {
	msgs, _ := conv[field].([]any)
	for _, m := range msgs {
		msg, ok := m.(map[string]any)
		if !ok {
			continue
		}
		if sender, ok := messageSender(msg); ok && sender == user {
			return true
		}
	}
	return false
}

func keyedLen(v any) int {
	switch x := v.(type) {
	case []any:
		return len(x)
	case map[string]any:
		if convs, ok := x["conversations"].([]any); ok {
			return len(convs)
		}
	}
	return 0
}
