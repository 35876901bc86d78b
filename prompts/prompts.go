// Package prompts holds the system prompts sent to the answer oracle.
package prompts

import "fmt"

// AssistantSystemPrompt frames the generative fallback: the oracle answers
// free-form QA questions when the curated knowledge base has no match.
const AssistantSystemPrompt = `Ты помощник по тестированию программного обеспечения (QA).
Твоя задача - отвечать на вопросы о тестировании ПО простым и понятным языком.
Отвечай кратко, структурированно, с примерами когда это уместно.
Если вопрос не связан с тестированием, вежливо укажи на это.`

// RelevanceSystemPrompt frames the verification call. The oracle must answer
// with a single word so the verdict can be parsed deterministically.
const RelevanceSystemPrompt = `Ты проверяешь, отвечает ли найденный материал на вопрос пользователя.
Тебе дан вопрос пользователя и найденная пара вопрос-ответ из базы знаний.
Ответь строго одним словом: "да" если материал отвечает на вопрос пользователя, иначе "нет".`

// RelevancePayload renders the user message for a verification call.
func RelevancePayload(userQuery, candidateQuestion, candidateAnswer string) string {
	return fmt.Sprintf("Вопрос пользователя: %s\n\nНайденный вопрос: %s\n\nНайденный ответ: %s",
		userQuery, candidateQuestion, candidateAnswer)
}
