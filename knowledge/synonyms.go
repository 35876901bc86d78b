package knowledge

// Synonyms maps a canonical token to equivalent tokens. Lookup is
// one-directional per key; symmetry is provided by listing both directions
// explicitly where it matters. Expansion is a single level deep.
var Synonyms = map[string][]string{
	"тестирование": {"проверка", "тест", "qa", "контроль качества"},
	"тест":         {"тестирование", "проверка"},
	"проверка":     {"тестирование", "тест"},
	"qa":           {"тестирование", "контроль качества"},

	"баг":    {"дефект", "ошибка", "глюк", "сбой", "проблема"},
	"дефект": {"баг", "ошибка"},
	"ошибка": {"баг", "дефект", "сбой"},
	"глюк":   {"баг", "ошибка"},

	"кейс":     {"тест кейс", "сценарий"},
	"сценарий": {"кейс", "тест кейс"},
	"чеклист":  {"чек лист", "список"},

	"регрессия":    {"регрессионное"},
	"смоук":        {"smoke", "дымовое"},
	"smoke":        {"смоук", "дымовое"},
	"автотесты":    {"автоматизация"},
	"автоматизация": {"автотесты"},

	"инструмент":   {"инструменты", "утилита"},
	"джира":        {"jira", "трекер"},
	"jira":         {"джира", "трекер"},
	"постман":      {"postman"},
	"postman":      {"постман"},

	"работа":    {"карьера", "вакансия"},
	"карьера":   {"работа", "рост"},
	"новичок":   {"джуниор", "без опыта"},
	"джуниор":   {"новичок", "junior"},
}
