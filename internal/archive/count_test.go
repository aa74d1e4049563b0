package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		src  string
		user string
		want int
	}{
		{
			name: "owner match",
			src:  `[{"user_id":"u1","messages":[{"sender":"u1","text":"hi"}]}]`,
			user: "u1",
			want: 1,
		},
		{
			name: "no match",
			src:  `[{"user_id":"u1"}]`,
			user: "u9",
			want: 0,
		},
		{
			name: "sender match without owner",
			src:  `[{"messages":[{"sender":"u3"},{"sender":"u4"}]}]`,
			user: "u3",
			want: 1,
		},
		{
			name: "chat_messages sender match",
			src:  `[{"chat_messages":[{"sender":"u2"}]}]`,
			user: "u2",
			want: 1,
		},
		{
			name: "at most one increment per conversation",
			src: `[{
				"messages":[{"sender":"u1"},{"sender":"u1"}],
				"chat_messages":[{"sender":"u1"}]
			}]`,
			user: "u1",
			want: 1,
		},
		{
			name: "chat_messages checked per conversation even after earlier matches",
			src: `[
				{"user_id":"u1"},
				{"chat_messages":[{"sender":"u1"}]}
			]`,
			user: "u1",
			want: 2,
		},
		{
			name: "keyed list value",
			src:  `{"u6":[{"a":1},{"a":2}]}`,
			user: "u6",
			want: 2,
		},
		{
			name: "keyed mapping with conversations sub-list",
			src:  `{"u7":{"conversations":[{"a":1},{"a":2},{"a":3}]}}`,
			user: "u7",
			want: 3,
		},
		{
			name: "keyed mapping without conversations",
			src:  `{"u8":{"a":1}}`,
			user: "u8",
			want: 0,
		},
		{
			name: "keyed absent user",
			src:  `{"u6":[{"a":1}]}`,
			user: "u9",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromJSON(t, tt.src)
			assert.Equal(t, tt.want, doc.Count(tt.user))
		})
	}
}
