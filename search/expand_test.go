package search

import "testing"

func testSynonyms() map[string][]string {
	return map[string][]string{
		"тестирование": {"проверка", "тест", "qa", "контроль качества"},
		"баг":          {"дефект", "ошибка", "глюк", "сбой", "проблема"},
		"дефект":       {"баг", "ошибка"},
	}
}

func TestExpandSuperset(t *testing.T) {
	e := NewExpander(testSynonyms())

	tests := [][]string{
		{"тестирование"},
		{"баг", "тестирование"},
		{"неизвестное"},
		{},
	}
	for _, tokens := range tests {
		got := e.Expand(tokens)
		for _, tok := range tokens {
			if _, ok := got[tok]; !ok {
				t.Errorf("Expand(%v) lost input token %q", tokens, tok)
			}
		}
	}
}

func TestExpandKnownSynonyms(t *testing.T) {
	e := NewExpander(testSynonyms())

	got := e.Expand([]string{"тестирование"})
	want := []string{"тестирование", "проверка", "тест", "qa", "контроль качества"}
	if len(got) != len(want) {
		t.Fatalf("Expand() returned %d tokens, want %d: %v", len(got), len(want), got)
	}
	for _, tok := range want {
		if _, ok := got[tok]; !ok {
			t.Errorf("Expand() missing %q", tok)
		}
	}
}

func TestExpandSingleLevel(t *testing.T) {
	// "дефект" maps to "баг", whose own synonyms must not be pulled in.
	e := NewExpander(testSynonyms())

	got := e.Expand([]string{"дефект"})
	if _, ok := got["глюк"]; ok {
		t.Error("Expand() recursed into synonyms of synonyms")
	}
	for _, tok := range []string{"дефект", "баг", "ошибка"} {
		if _, ok := got[tok]; !ok {
			t.Errorf("Expand() missing %q", tok)
		}
	}
}

func TestExpandPassThrough(t *testing.T) {
	e := NewExpander(testSynonyms())

	got := e.Expand([]string{"неизвестное"})
	if len(got) != 1 {
		t.Errorf("Expand() of an unknown token = %v, want only the token itself", got)
	}
}

func TestExpandDoesNotMutateTable(t *testing.T) {
	table := testSynonyms()
	e := NewExpander(table)
	e.Expand([]string{"тестирование", "баг", "дефект"})

	if len(table["тестирование"]) != 4 || len(table["баг"]) != 5 {
		t.Error("Expand() mutated the synonym table")
	}
}
