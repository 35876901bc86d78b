// Package session tracks each user's position in the course and implements
// the navigation state machine over the knowledge index.
package session

// Session is a user's resumable position: the current topic and the index of
// the current question within it. The zero value is not meaningful; use
// Machine.Home to produce a starting position.
type Session struct {
	TopicID       string `json:"topic_id"`
	QuestionIndex int    `json:"question_index"`
}
