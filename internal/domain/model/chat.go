package model

// ChatRole identifies the author of a conversation turn.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleSystem    ChatRole = "system"
)

// ChatTurn is a single message in a conversation transcript.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Session holds per-user dialogue state: the sliding window of recent turns
// and the result set of the most recent catalog search.
type Session struct {
	History   []ChatTurn
	LastBooks []BookRecord
}
