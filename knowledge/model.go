package knowledge

// Entry is one question/answer/keywords unit inside a topic.
type Entry struct {
	// Question and Answer hold the curated texts. Answer may contain the
	// {bot_name} placeholder, resolved by the presentation layer.
	Question string
	Answer   string

	// Keywords are unordered tags matched exactly (after normalization)
	// against query tokens during scoring.
	Keywords []string

	// IsWelcome and IsFinal adjust which navigation controls are offered.
	// They carry no meaning for retrieval.
	IsWelcome bool
	IsFinal   bool
}

// Topic is an ordered sequence of entries under a stable identifier.
type Topic struct {
	ID          string
	Name        string
	Description string
	Entries     []Entry
}

// EntryRef pairs an entry with its owning topic. The index hands these out
// in topic-order-then-entry-order, which defines tie-breaking for ranking.
type EntryRef struct {
	Topic *Topic
	Entry *Entry
}
