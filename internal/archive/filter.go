package archive

import "maps"

// Filter returns the conversations attributable to user. An owner match
// includes the conversation verbatim. When the match instead comes from
// inside a message container, a shallow copy is emitted with that
// container trimmed to the user's messages; a chat_messages match also
// drops the regular messages key, since the user had nothing there. An
// empty result is not an error.
func (d *Document) Filter(user string) []any {
	if d.Shape == ShapeKeyed {
		switch v := d.ByUser[user].(type) {
		case []any:
			return v
		case map[string]any:
			return []any{v}
		}
		return nil
	}

	var out []any
	for _, c := range d.Conversations {
		conv, ok := c.(map[string]any)
		if !ok {
			continue
		}

		if owner, ok := conversationOwner(conv); ok && owner == user {
			out = append(out, conv)
			continue
		}

		if matched := senderMessages(conv, "messages", user); len(matched) > 0 {
			trimmed := maps.Clone(conv)
			trimmed["messages"] = matched
			out = append(out, trimmed)
			continue
		}

		if matched := senderMessages(conv, "chat_messages", user); len(matched) > 0 {
			trimmed := maps.Clone(conv)
			trimmed["chat_messages"] = matched
			delete(trimmed, "messages")
			out = append(out, trimmed)
		}
	}
	return out
}

// senderMessages collects the messages in the named container sent by
// user, preserving their order.
func senderMessages(conv map[string]any, field, user string) []any {
	msgs, _ := conv[field].([]any)
	var matched []any
	for _, m := range msgs {
		msg, ok := m.(map[string]any)
		if !ok {
			continue
		}
		if sender, ok := messageSender(msg); ok && sender == user {
			matched = append(matched, m)
		}
	}
	return matched
}
