package knowledge

// Static course content for the QA mentor. The course is a linear sequence of
// topics, each with ordered question/answer entries. Answers may reference the
// bot through the {bot_name} placeholder.

// CourseOrder defines the linear navigation order of the course topics.
var CourseOrder = []string{
	"start",
	"basics",
	"testcases",
	"testtypes",
	"tools",
	"career",
}

// CourseTopics holds the curated curriculum.
var CourseTopics = []*Topic{
	{
		ID:   "start",
		Name: "Добро пожаловать",
		Entries: []Entry{
			{
				Question: "Привет! 👋 Я {bot_name} — твой наставник по тестированию ПО.",
				Answer: "Я помогу тебе разобраться в тестировании с нуля.\n\n" +
					"Можешь изучать темы по порядку с помощью кнопок навигации " +
					"или просто задать вопрос в свободной форме — я найду ответ в базе знаний.\n\n" +
					"Нажми «Следующая тема ➡️», чтобы начать обучение!",
				Keywords:  []string{"старт", "начало", "привет"},
				IsWelcome: true,
			},
		},
	},
	{
		ID:          "basics",
		Name:        "Основы тестирования",
		Description: "Что такое тестирование, баги и зачем всё это нужно",
		Entries: []Entry{
			{
				Question: "Что такое тестирование ПО?",
				Answer: "Тестирование ПО — это процесс проверки программы с целью найти " +
					"расхождения между ожидаемым и фактическим поведением.\n\n" +
					"Главные цели:\n" +
					"• Найти дефекты до того, как их найдут пользователи\n" +
					"• Убедиться, что программа соответствует требованиям\n" +
					"• Дать команде информацию о качестве продукта\n\n" +
					"Важно: тестирование не доказывает отсутствие ошибок, оно лишь показывает их наличие.",
				Keywords: []string{"тестирование", "проверка", "качество", "основы"},
			},
			{
				Question: "Что такое баг?",
				Answer: "Баг (дефект) — это несоответствие фактического поведения программы " +
					"ожидаемому, описанному в требованиях.\n\n" +
					"Хороший баг-репорт содержит:\n" +
					"• Краткое название\n" +
					"• Шаги воспроизведения\n" +
					"• Ожидаемый результат\n" +
					"• Фактический результат\n" +
					"• Окружение (ОС, браузер, версия)",
				Keywords: []string{"баг", "дефект", "ошибка", "баг репорт"},
			},
			{
				Question: "Чем QA отличается от QC и тестирования?",
				Answer: "QA (Quality Assurance) — обеспечение качества: работа над процессами, " +
					"чтобы дефекты не появлялись.\n\n" +
					"QC (Quality Control) — контроль качества: проверка продукта на соответствие требованиям.\n\n" +
					"Тестирование — часть QC: непосредственная проверка программы.\n\n" +
					"QA ⊃ QC ⊃ тестирование.",
				Keywords: []string{"qa", "qc", "качество", "процесс"},
			},
			{
				Question: "Какие бывают уровни тестирования?",
				Answer: "Классическая пирамида тестирования:\n\n" +
					"1. *Модульное (unit)* — проверка отдельных функций и классов\n" +
					"2. *Интеграционное* — проверка взаимодействия модулей\n" +
					"3. *Системное* — проверка всей системы целиком\n" +
					"4. *Приёмочное (UAT)* — проверка соответствия ожиданиям заказчика\n\n" +
					"Чем ниже уровень, тем дешевле найти и исправить дефект.",
				Keywords: []string{"уровни", "пирамида", "unit", "интеграционное", "системное"},
			},
		},
	},
	{
		ID:          "testcases",
		Name:        "Тест-кейсы и чек-листы",
		Description: "Как документировать проверки",
		Entries: []Entry{
			{
				Question: "Что такое тест-кейс?",
				Answer: "Тест-кейс — это документированная проверка: набор шагов, входных данных " +
					"и ожидаемых результатов для конкретного сценария.\n\n" +
					"Структура тест-кейса:\n" +
					"• Идентификатор и название\n" +
					"• Предусловия\n" +
					"• Шаги\n" +
					"• Ожидаемый результат\n" +
					"• Статус (пройден/провален)",
				Keywords: []string{"тест кейс", "test case", "документация"},
			},
			{
				Question: "Как написать хороший тест-кейс?",
				Answer: "Правила хорошего тест-кейса:\n\n" +
					"• Одна проверка — один кейс\n" +
					"• Шаги конкретные и воспроизводимые\n" +
					"• Ожидаемый результат однозначный\n" +
					"• Название отражает суть проверки\n" +
					"• Кейс понятен человеку, который его не писал\n\n" +
					"Плохо: «Проверить логин». Хорошо: «Вход с корректным email и паролем ведёт на главную страницу».",
				Keywords: []string{"тест кейс", "написать", "правила", "шаги"},
			},
			{
				Question: "Что такое чек-лист и когда он лучше тест-кейсов?",
				Answer: "Чек-лист — это краткий список того, что нужно проверить, без детальных шагов.\n\n" +
					"Чек-лист подходит, когда:\n" +
					"• Команда хорошо знает продукт\n" +
					"• Нужна быстрая проверка перед релизом\n" +
					"• Детальные шаги избыточны\n\n" +
					"Тест-кейсы нужны для сложных сценариев, регрессии и передачи знаний новым людям.",
				Keywords: []string{"чек лист", "checklist", "список проверок"},
			},
		},
	},
	{
		ID:          "testtypes",
		Name:        "Виды тестирования",
		Description: "Функциональное, регрессионное, smoke и другие",
		Entries: []Entry{
			{
				Question: "Что такое smoke-тестирование?",
				Answer: "Smoke-тестирование — это быстрая проверка самых критичных функций: " +
					"«программа вообще запускается и работает?»\n\n" +
					"Проводится после каждой сборки, до глубокого тестирования. " +
					"Если smoke-тесты падают, сборка возвращается разработчикам без дальнейших проверок.",
				Keywords: []string{"smoke", "смоук", "дымовое", "сборка"},
			},
			{
				Question: "Что такое регрессионное тестирование?",
				Answer: "Регрессионное тестирование — это повторная проверка уже работавшей " +
					"функциональности после изменений в коде.\n\n" +
					"Цель — убедиться, что новые изменения не сломали старое поведение. " +
					"Регрессию чаще всего автоматизируют, потому что один и тот же набор проверок " +
					"выполняется снова и снова.",
				Keywords: []string{"регрессия", "регрессионное", "повторная проверка"},
			},
			{
				Question: "Чем функциональное тестирование отличается от нефункционального?",
				Answer: "Функциональное тестирование проверяет, ЧТО делает система: " +
					"соответствие поведения требованиям.\n\n" +
					"Нефункциональное проверяет, КАК система это делает:\n" +
					"• Производительность и нагрузка\n" +
					"• Безопасность\n" +
					"• Удобство использования\n" +
					"• Совместимость",
				Keywords: []string{"функциональное", "нефункциональное", "нагрузка", "производительность"},
			},
		},
	},
	{
		ID:          "tools",
		Name:        "Инструменты тестировщика",
		Description: "Баг-трекеры, API-клиенты и автоматизация",
		Entries: []Entry{
			{
				Question: "Какие инструменты нужны тестировщику?",
				Answer: "Базовый набор:\n\n" +
					"• *Баг-трекер* — Jira, YouTrack: учёт дефектов и задач\n" +
					"• *Тест-менеджмент* — TestRail, Zephyr: хранение тест-кейсов\n" +
					"• *API-клиент* — Postman, curl: проверка API\n" +
					"• *DevTools браузера* — отладка веб-интерфейсов\n" +
					"• *SQL-клиент* — проверка данных в базе",
				Keywords: []string{"инструменты", "jira", "postman", "devtools"},
			},
			{
				Question: "Как проверить работу API?",
				Answer: "Проверка API сводится к отправке запроса и проверке ответа:\n\n" +
					"1. Сформируй запрос (метод, URL, заголовки, тело)\n" +
					"2. Отправь через Postman или curl\n" +
					"3. Проверь код ответа (200, 404, 500...)\n" +
					"4. Проверь тело ответа: структуру и значения полей\n" +
					"5. Проверь негативные сценарии: неверные данные, отсутствие авторизации",
				Keywords: []string{"api", "postman", "запрос", "ответ", "http"},
			},
			{
				Question: "С чего начать автоматизацию тестирования?",
				Answer: "Путь в автоматизацию:\n\n" +
					"1. Выучи основы одного языка (Python, Java, JavaScript)\n" +
					"2. Начни с автоматизации API-тестов — это проще интерфейсных\n" +
					"3. Освой один фреймворк (pytest, JUnit, Playwright)\n" +
					"4. Автоматизируй сначала регрессию — там выгода максимальна\n\n" +
					"Не автоматизируй всё подряд: поддержка тестов тоже стоит времени.",
				Keywords: []string{"автоматизация", "python", "selenium", "playwright"},
			},
		},
	},
	{
		ID:          "career",
		Name:        "Карьера в тестировании",
		Description: "Первые шаги и рост",
		Entries: []Entry{
			{
				Question: "Как стать тестировщиком без опыта?",
				Answer: "План входа в профессию:\n\n" +
					"1. Изучи теорию: виды тестирования, тест-дизайн, жизненный цикл дефекта\n" +
					"2. Практикуйся на открытых проектах и учебных стендах\n" +
					"3. Собери портфолио: баг-репорты, тест-кейсы, чек-листы\n" +
					"4. Освой SQL и основы HTTP\n" +
					"5. Откликайся на стажировки и джуниор-позиции",
				Keywords: []string{"карьера", "без опыта", "джуниор", "стажировка"},
			},
			{
				Question: "Поздравляю с завершением курса! Что дальше?",
				Answer: "🎉 Ты прошёл базовый курс по тестированию!\n\n" +
					"Куда двигаться дальше:\n" +
					"• Глубже в тест-дизайн: классы эквивалентности, граничные значения\n" +
					"• Автоматизация: выбери язык и фреймворк\n" +
					"• Производительность и безопасность\n\n" +
					"Задавай {bot_name} любые вопросы — база знаний всегда под рукой!",
				Keywords: []string{"финал", "завершение", "что дальше"},
				IsFinal:  true,
			},
		},
	},
}

// DefaultIndex builds the index over the built-in course. Construction fails
// only if the static data violates the order/collection invariants.
func DefaultIndex() (*Index, error) {
	return NewIndex(CourseTopics, CourseOrder)
}
