package archive

import "sort"

// Users returns the sorted set of distinct user identifiers found in the
// document. For list documents this covers conversation owners and the
// senders inside both message containers; for keyed documents the top
// level keys are the users.
func (d *Document) Users() []string {
	if d.Shape == ShapeKeyed {
		users := make([]string, 0, len(d.ByUser))
		for u := range d.ByUser {
			users = append(users, u)
		}
		sort.Strings(users)
		return users
	}

	seen := make(map[string]struct{})
	for _, c := range d.Conversations {
		conv, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if owner, ok := conversationOwner(conv); ok {
			seen[owner] = struct{}{}
		}
		for _, field := range messageListFields {
			msgs, _ := conv[field].([]any)
			for _, m := range msgs {
				msg, ok := m.(map[string]any)
				if !ok {
					continue
				}
				if sender, ok := messageSender(msg); ok {
					seen[sender] = struct{}{}
				}
			}
		}
	}

	users := make([]string, 0, len(seen))
	for u := range seen {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}
