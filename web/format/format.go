// Package format renders pipeline decisions and lesson positions into
// user-facing messages.
package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"qa-mentor/knowledge"
	"qa-mentor/session"

	"go.uber.org/zap"
)

const truncationSuffix = "\n\n... (сообщение обрезано)"

// Controls tells the client which navigation actions make sense at the
// current position.
type Controls struct {
	NextTopic    bool `json:"next_topic"`
	PrevTopic    bool `json:"prev_topic"`
	PrevQuestion bool `json:"prev_question"`
	Home         bool `json:"home"`
	Ask          bool `json:"ask"`
	Commands     bool `json:"commands"`
}

// Message is a rendered reply: plain text, its HTML form, and the control set.
type Message struct {
	Text     string   `json:"text"`
	HTML     string   `json:"html"`
	Controls Controls `json:"controls"`
}

// Renderer builds messages. It owns the bot's presentation constants: the
// display name, the message length cap and the Russian response templates.
type Renderer struct {
	botName   string
	maxLength int
	logger    *zap.Logger
}

func NewRenderer(botName string, maxLength int, logger *zap.Logger) *Renderer {
	return &Renderer{botName: botName, maxLength: maxLength, logger: logger}
}

// Lesson renders the current course position: topic header, question, answer
// and progress, with boundary banners where the position warrants them.
func (r *Renderer) Lesson(view session.View) Message {
	var b strings.Builder

	entry := view.Entry
	if entry.IsWelcome {
		b.WriteString(strings.ReplaceAll(entry.Answer, "{bot_name}", r.botName))
	} else {
		fmt.Fprintf(&b, "📖 **%s**\n\n", view.Topic.Name)
		fmt.Fprintf(&b, "❓ %s\n\n", entry.Question)
		b.WriteString(entry.Answer)
		b.WriteString("\n\n")
		b.WriteString(r.progress(view))
	}

	switch {
	case entry.IsFinal:
		b.WriteString("\n\n🎓 Поздравляем! Вы прошли весь курс. Задавайте любые вопросы — я отвечу.")
	case view.IsLastQuestion && !view.IsLastTopic:
		fmt.Fprintf(&b, "\n\n✅ Тема «%s» пройдена! Напишите «дальше», чтобы перейти к следующей теме.", view.Topic.Name)
	}

	return r.message(b.String(), lessonControls(view))
}

// Curated renders a knowledge base match. Unverified matches carry a caveat:
// the relevance check could not confirm them.
func (r *Renderer) Curated(topic *knowledge.Topic, entry *knowledge.Entry, verified bool) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 Тема: %s\n\n", topic.Name)
	fmt.Fprintf(&b, "❓ %s\n\n", entry.Question)
	b.WriteString(entry.Answer)
	if !verified {
		b.WriteString("\n\n⚠️ Возможно, это не совсем то, что вы искали. Попробуйте переформулировать вопрос.")
	}
	return r.message(b.String(), answerControls())
}

// Generated renders an oracle answer, marked as machine-generated.
func (r *Renderer) Generated(answer string) Message {
	text := "🤖 " + answer + "\n\n💡 Ответ сгенерирован автоматически и может содержать неточности."
	return r.message(text, answerControls())
}

// NotFound renders the no-answer reply.
func (r *Renderer) NotFound() Message {
	text := "🤷 Я не нашёл ответа на ваш вопрос.\n\n" +
		"Попробуйте переформулировать его или напишите «дальше», чтобы продолжить обучение."
	return r.message(text, answerControls())
}

// AtStart renders the hint for retreating from the first question.
func (r *Renderer) AtStart(view session.View) Message {
	return r.message("⛔ Вы в самом начале курса. Напишите «дальше», чтобы начать обучение.", lessonControls(view))
}

// CourseComplete renders the hint for advancing past the last question.
func (r *Renderer) CourseComplete(view session.View) Message {
	return r.message("🎓 Курс пройден полностью! Можете повторить любую тему или задать вопрос.", lessonControls(view))
}

// FirstQuestion renders the hint for stepping back within the first question
// of a topic.
func (r *Renderer) FirstQuestion(view session.View) Message {
	return r.message(fmt.Sprintf("⛔ Это первый вопрос темы «%s».", view.Topic.Name), lessonControls(view))
}

// LastQuestion renders the hint for stepping forward past the last question
// of a topic.
func (r *Renderer) LastQuestion(view session.View) Message {
	return r.message(fmt.Sprintf("✅ Это последний вопрос темы «%s». Напишите «дальше», чтобы перейти к следующей теме.", view.Topic.Name), lessonControls(view))
}

// Help lists the commands the bot understands.
func (r *Renderer) Help(view session.View) Message {
	text := "ℹ️ Я понимаю такие команды:\n\n" +
		"• «дальше» — следующий вопрос или тема\n" +
		"• «назад» — предыдущий вопрос\n" +
		"• «домой» — в начало курса\n" +
		"• «помощь» — это сообщение\n\n" +
		"Или просто задайте вопрос о тестировании — я поищу ответ в базе знаний."
	return r.message(text, lessonControls(view))
}

// Greeting renders the reply to a salutation without moving the session.
func (r *Renderer) Greeting(view session.View) Message {
	text := fmt.Sprintf("👋 Привет! Я %s. Напишите «дальше», чтобы продолжить обучение, или задайте вопрос о тестировании.", r.botName)
	return r.message(text, lessonControls(view))
}

// Thanks renders the reply to gratitude.
func (r *Renderer) Thanks(view session.View) Message {
	return r.message("😊 Пожалуйста! Обращайтесь, если появятся вопросы.", lessonControls(view))
}

// InvalidInput renders a rejected-input explanation.
func (r *Renderer) InvalidInput(reason string) Message {
	return r.message("⚠️ "+reason, answerControls())
}

func (r *Renderer) progress(view session.View) string {
	done := view.QuestionIndex + 1
	percent := done * 100 / view.QuestionCount
	return fmt.Sprintf("📊 Прогресс по теме: %d%% (%d/%d)", percent, done, view.QuestionCount)
}

func (r *Renderer) message(text string, controls Controls) Message {
	text = r.truncate(text)
	return Message{
		Text:     text,
		HTML:     ToHTML(text),
		Controls: controls,
	}
}

func lessonControls(view session.View) Controls {
	return Controls{
		NextTopic:    (view.IsLastQuestion && !view.IsLastTopic) || view.Entry.IsWelcome,
		PrevTopic:    !view.IsFirstTopic && view.IsFirstQuestion,
		PrevQuestion: !view.IsFirstQuestion,
		Home:         !view.IsFirstTopic,
		Ask:          true,
		Commands:     view.IsFirstTopic,
	}
}

func answerControls() Controls {
	return Controls{Ask: true}
}

func (r *Renderer) truncate(text string) string {
	if r.maxLength <= 0 || utf8.RuneCountInString(text) <= r.maxLength {
		return text
	}
	limit := r.maxLength - utf8.RuneCountInString(truncationSuffix)
	return truncateAtSentenceBoundary(text, limit, r.logger) + truncationSuffix
}
