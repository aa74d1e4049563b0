package archive

import "strconv"

// Candidate owner fields, tried in order. The first present non-empty
// value wins.
var (
	conversationOwnerFields = []string{"user_id", "userId", "user", "author"}
	messageSenderFields     = []string{"user_id", "userId", "user", "author", "sender"}
	accountIDFields         = []string{"uuid", "id"}
)

// messageListFields are the containers a conversation may keep its
// messages under: "messages" for individual exports, "chat_messages"
// for Teams exports.
var messageListFields = []string{"messages", "chat_messages"}

// FirstField returns the normalized string form of the first candidate
// field present in rec with a non-empty scalar value.
func FirstField(rec map[string]any, fields []string) (string, bool) {
	for _, f := range fields {
		if s, ok := normalize(rec[f]); ok {
			return s, true
		}
	}
	return "", false
}

// normalize converts a scalar JSON value to its string form. Empty and
// zero scalars count as absent, as do non-scalar values.
func normalize(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, x != ""
	case float64:
		if x == 0 {
			return "", false
		}
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		if !x {
			return "", false
		}
		return "true", true
	}
	return "", false
}

// conversationOwner resolves the identifier a conversation is attributed
// to: the direct owner fields first, then the Teams account field, which
// may be an object carrying uuid/id or a plain scalar.
func conversationOwner(conv map[string]any) (string, bool) {
	if s, ok := FirstField(conv, conversationOwnerFields); ok {
		return s, true
	}
	switch acc := conv["account"].(type) {
	case map[string]any:
		return FirstField(acc, accountIDFields)
	default:
		return normalize(acc)
	}
}

// messageSender resolves the sender of a single message record.
func messageSender(msg map[string]any) (string, bool) {
	return FirstField(msg, messageSenderFields)
}
