package session

import (
	"errors"

	"qa-mentor/knowledge"
)

// Navigation signals. These mark boundary conditions of the linear course,
// not failures: callers render them as user-facing hints.
var (
	// ErrAtStart: retreating from the very first question of the course.
	ErrAtStart = errors.New("already at the start of the course")

	// ErrFirstQuestion: stepping back within the first question of a topic.
	ErrFirstQuestion = errors.New("already at the first question of the topic")

	// ErrLastQuestion: stepping forward past the last question of a topic.
	ErrLastQuestion = errors.New("already at the last question of the topic")

	// ErrCourseComplete: advancing past the last question of the last topic.
	ErrCourseComplete = errors.New("course complete")
)

// View is a resolved session position with the boundary facts a renderer
// needs to decide which navigation controls to offer.
type View struct {
	Topic           *knowledge.Topic
	Entry           *knowledge.Entry
	QuestionIndex   int
	QuestionCount   int
	IsFirstTopic    bool
	IsLastTopic     bool
	IsFirstQuestion bool
	IsLastQuestion  bool
}

// Machine implements the navigation transitions over a fixed knowledge index.
// All operations are pure: they take a session state and return the next one,
// leaving the input untouched when they report a boundary signal.
type Machine struct {
	index *knowledge.Index
}

func NewMachine(index *knowledge.Index) *Machine {
	return &Machine{index: index}
}

// Home returns the starting position: first topic, first question.
func (m *Machine) Home() Session {
	return Session{TopicID: m.index.FirstTopic().ID, QuestionIndex: 0}
}

// Resolve maps a session to its View. Positions that no longer exist in the
// index (stale topic id, out-of-range question) are snapped back to Home.
func (m *Machine) Resolve(s Session) (Session, View) {
	topic, ok := m.index.Topic(s.TopicID)
	if !ok || s.QuestionIndex < 0 || s.QuestionIndex >= len(topic.Entries) {
		s = m.Home()
		topic, _ = m.index.Topic(s.TopicID)
	}

	pos, _ := m.index.Position(topic.ID)
	return s, View{
		Topic:           topic,
		Entry:           &topic.Entries[s.QuestionIndex],
		QuestionIndex:   s.QuestionIndex,
		QuestionCount:   len(topic.Entries),
		IsFirstTopic:    pos == 0,
		IsLastTopic:     pos == m.index.TopicCount()-1,
		IsFirstQuestion: s.QuestionIndex == 0,
		IsLastQuestion:  s.QuestionIndex == len(topic.Entries)-1,
	}
}

// NextQuestion moves one question forward within the current topic.
func (m *Machine) NextQuestion(s Session) (Session, error) {
	s, view := m.Resolve(s)
	if view.IsLastQuestion {
		return s, ErrLastQuestion
	}
	s.QuestionIndex++
	return s, nil
}

// PrevQuestion moves one question back within the current topic.
func (m *Machine) PrevQuestion(s Session) (Session, error) {
	s, view := m.Resolve(s)
	if view.IsFirstQuestion {
		return s, ErrFirstQuestion
	}
	s.QuestionIndex--
	return s, nil
}

// NextTopic jumps to the first question of the following topic.
func (m *Machine) NextTopic(s Session) (Session, error) {
	s, view := m.Resolve(s)
	if view.IsLastTopic {
		return s, ErrCourseComplete
	}
	pos, _ := m.index.Position(s.TopicID)
	s.TopicID = m.index.TopicOrder()[pos+1]
	s.QuestionIndex = 0
	return s, nil
}

// PrevTopic jumps to the last question of the preceding topic, so retreating
// across a topic boundary is the exact inverse of advancing over it.
func (m *Machine) PrevTopic(s Session) (Session, error) {
	s, view := m.Resolve(s)
	if view.IsFirstTopic {
		return s, ErrAtStart
	}
	pos, _ := m.index.Position(s.TopicID)
	prevID := m.index.TopicOrder()[pos-1]
	prev, _ := m.index.Topic(prevID)
	s.TopicID = prevID
	s.QuestionIndex = len(prev.Entries) - 1
	return s, nil
}

// Advance is the generic "continue": next question, or the next topic once
// the current one is exhausted. At the very end it reports ErrCourseComplete.
func (m *Machine) Advance(s Session) (Session, error) {
	next, err := m.NextQuestion(s)
	if errors.Is(err, ErrLastQuestion) {
		return m.NextTopic(s)
	}
	return next, err
}

// Retreat is the generic "go back": previous question, or the end of the
// previous topic. At the very start it reports ErrAtStart.
func (m *Machine) Retreat(s Session) (Session, error) {
	prev, err := m.PrevQuestion(s)
	if errors.Is(err, ErrFirstQuestion) {
		return m.PrevTopic(s)
	}
	return prev, err
}
