package format

import (
	"strings"
	"testing"
	"unicode/utf8"

	"qa-mentor/knowledge"
	"qa-mentor/session"

	"go.uber.org/zap"
)

func testRenderer(maxLength int) *Renderer {
	return NewRenderer("QA Ментор", maxLength, zap.NewNop())
}

func lessonView(topic *knowledge.Topic, idx int, first, last bool) session.View {
	return session.View{
		Topic:           topic,
		Entry:           &topic.Entries[idx],
		QuestionIndex:   idx,
		QuestionCount:   len(topic.Entries),
		IsFirstTopic:    first,
		IsLastTopic:     last,
		IsFirstQuestion: idx == 0,
		IsLastQuestion:  idx == len(topic.Entries)-1,
	}
}

func TestLessonWelcomeSubstitutesBotName(t *testing.T) {
	topic := &knowledge.Topic{
		ID:   "start",
		Name: "Начало",
		Entries: []knowledge.Entry{
			{Question: "Добро пожаловать", Answer: "Привет! Я {bot_name}.", IsWelcome: true},
			{Question: "q", Answer: "a"},
		},
	}

	msg := testRenderer(0).Lesson(lessonView(topic, 0, true, false))
	if !strings.Contains(msg.Text, "Я QA Ментор.") {
		t.Errorf("welcome text missing bot name: %q", msg.Text)
	}
	if strings.Contains(msg.Text, "{bot_name}") {
		t.Errorf("placeholder left in text: %q", msg.Text)
	}
	// The welcome screen shows no progress line.
	if strings.Contains(msg.Text, "Прогресс") {
		t.Errorf("welcome must not show progress: %q", msg.Text)
	}
}

func TestLessonProgress(t *testing.T) {
	topic := &knowledge.Topic{
		ID:   "basics",
		Name: "Основы",
		Entries: []knowledge.Entry{
			{Question: "q1", Answer: "a1"},
			{Question: "q2", Answer: "a2"},
			{Question: "q3", Answer: "a3"},
			{Question: "q4", Answer: "a4"},
		},
	}

	msg := testRenderer(0).Lesson(lessonView(topic, 1, true, false))
	if !strings.Contains(msg.Text, "📊 Прогресс по теме: 50% (2/4)") {
		t.Errorf("progress line missing or wrong: %q", msg.Text)
	}
	if !strings.Contains(msg.Text, "Основы") || !strings.Contains(msg.Text, "q2") {
		t.Errorf("lesson body incomplete: %q", msg.Text)
	}
	if msg.HTML == "" {
		t.Error("HTML rendering missing")
	}
}

func TestLessonTopicCompleteBanner(t *testing.T) {
	topic := &knowledge.Topic{
		ID:      "basics",
		Name:    "Основы",
		Entries: []knowledge.Entry{{Question: "q", Answer: "a"}},
	}

	msg := testRenderer(0).Lesson(lessonView(topic, 0, true, false))
	if !strings.Contains(msg.Text, "Тема «Основы» пройдена") {
		t.Errorf("topic-complete banner missing: %q", msg.Text)
	}

	// On the last topic the banner gives way to nothing (the final entry has
	// its own graduation text).
	msg = testRenderer(0).Lesson(lessonView(topic, 0, false, true))
	if strings.Contains(msg.Text, "пройдена!") {
		t.Errorf("last topic must not advertise a next topic: %q", msg.Text)
	}
}

func TestLessonFinalBanner(t *testing.T) {
	topic := &knowledge.Topic{
		ID:      "career",
		Name:    "Карьера",
		Entries: []knowledge.Entry{{Question: "Финал", Answer: "Вы молодец.", IsFinal: true}},
	}

	msg := testRenderer(0).Lesson(lessonView(topic, 0, false, true))
	if !strings.Contains(msg.Text, "🎓") {
		t.Errorf("graduation banner missing: %q", msg.Text)
	}
}

func TestCuratedUnverifiedCaveat(t *testing.T) {
	topic := &knowledge.Topic{ID: "basics", Name: "Основы"}
	entry := &knowledge.Entry{Question: "Что такое баг?", Answer: "Ошибка в программе."}
	r := testRenderer(0)

	verified := r.Curated(topic, entry, true)
	if strings.Contains(verified.Text, "⚠️") {
		t.Errorf("verified answer must not carry a caveat: %q", verified.Text)
	}

	unverified := r.Curated(topic, entry, false)
	if !strings.Contains(unverified.Text, "⚠️") {
		t.Errorf("unverified answer must carry a caveat: %q", unverified.Text)
	}
}

func TestGeneratedIsMarked(t *testing.T) {
	msg := testRenderer(0).Generated("Нагрузочное тестирование проверяет производительность.")
	if !strings.Contains(msg.Text, "🤖") || !strings.Contains(msg.Text, "сгенерирован автоматически") {
		t.Errorf("generated answer not marked: %q", msg.Text)
	}
}

func TestControls(t *testing.T) {
	entries := []knowledge.Entry{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
	}
	tests := []struct {
		name string
		view session.View
		want Controls
	}{
		{
			name: "course_start",
			view: session.View{
				Topic: &knowledge.Topic{Entries: entries}, Entry: &entries[0],
				QuestionCount: 2, IsFirstTopic: true, IsFirstQuestion: true,
			},
			want: Controls{Ask: true, Commands: true},
		},
		{
			name: "mid_topic",
			view: session.View{
				Topic: &knowledge.Topic{Entries: entries}, Entry: &entries[1],
				QuestionIndex: 1, QuestionCount: 2, IsLastQuestion: true,
			},
			want: Controls{NextTopic: true, PrevQuestion: true, Home: true, Ask: true},
		},
		{
			name: "topic_start_mid_course",
			view: session.View{
				Topic: &knowledge.Topic{Entries: entries}, Entry: &entries[0],
				QuestionCount: 2, IsFirstQuestion: true,
			},
			want: Controls{PrevTopic: true, Home: true, Ask: true},
		},
		{
			name: "last_topic_end",
			view: session.View{
				Topic: &knowledge.Topic{Entries: entries}, Entry: &entries[1],
				QuestionIndex: 1, QuestionCount: 2, IsLastTopic: true, IsLastQuestion: true,
			},
			want: Controls{PrevQuestion: true, Home: true, Ask: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lessonControls(tt.view); got != tt.want {
				t.Errorf("lessonControls() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTruncateAtSentenceBoundary(t *testing.T) {
	r := testRenderer(60)
	text := "One two three. Four five six. Seven eight nine and more words."

	got := r.truncate(text)
	if got == text {
		t.Fatal("truncate() left an over-limit text unchanged")
	}
	if !strings.Contains(got, "обрезано") {
		t.Errorf("truncation marker missing: %q", got)
	}
	if utf8.RuneCountInString(got) > 60 {
		t.Errorf("truncate() produced %d runes, limit 60", utf8.RuneCountInString(got))
	}
	if !strings.HasPrefix(got, "One two three.") {
		t.Errorf("truncate() lost the leading sentence: %q", got)
	}
}

func TestTruncateShortTextUntouched(t *testing.T) {
	r := testRenderer(100)
	text := "Короткий ответ."
	if got := r.truncate(text); got != text {
		t.Errorf("truncate() = %q, want unchanged", got)
	}
}

func TestTruncateDisabled(t *testing.T) {
	r := testRenderer(0)
	text := strings.Repeat("Длинный текст без ограничения. ", 100)
	if got := r.truncate(text); got != text {
		t.Error("truncate() with no limit must not modify text")
	}
}
