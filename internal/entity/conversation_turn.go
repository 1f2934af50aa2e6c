package entity

import "time"

// ConversationTurn is one question/answer pair, persisted per user for
// future context. Append-only.
type ConversationTurn struct {
	Question  string
	Answer    string
	CreatedAt time.Time
}
