package bot

import "testing"

func TestClassifySearchIntent(t *testing.T) {
	cases := []struct {
		text  string
		query string
	}{
		{"find atomic habits", "atomic habits"},
		{"Search for python books", "python"},
		{"I want a mystery book", "I a mystery"},
		{"show me books", "best"},
		{"FIND", "best"},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			intent := Classify(tc.text)
			if intent.Kind != KindSearch {
				t.Fatalf("expected search intent, got %v", intent.Kind)
			}
			if intent.Query != tc.query {
				t.Errorf("expected query %q, got %q", tc.query, intent.Query)
			}
		})
	}
}

func TestClassifyOrderIntent(t *testing.T) {
	cases := []struct {
		text      string
		selection int
	}{
		{"order this one", 0},
		{"buy the second", 1},
		{"I'll take the third", 2},
		{"order 2", 1},
		{"buy 99", 98},
		{"order first please", 0},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			intent := Classify(tc.text)
			if intent.Kind != KindOrder {
				t.Fatalf("expected order intent, got %v", intent.Kind)
			}
			if intent.Selection != tc.selection {
				t.Errorf("expected selection %d, got %d", tc.selection, intent.Selection)
			}
		})
	}
}

func TestClassifySearchWinsOverOrder(t *testing.T) {
	intent := Classify("I want to order something nice")
	if intent.Kind != KindSearch {
		t.Fatalf("expected search to take priority, got %v", intent.Kind)
	}
}

func TestClassifyChatFallback(t *testing.T) {
	for _, text := range []string{"hello there", "how are you?", ""} {
		if intent := Classify(text); intent.Kind != KindChat {
			t.Errorf("expected chat intent for %q, got %v", text, intent.Kind)
		}
	}
}

func TestExplicitDigitBeatsOrdinalWord(t *testing.T) {
	intent := Classify("order 3, the first looked boring")
	if intent.Selection != 2 {
		t.Fatalf("expected digit to win, got %d", intent.Selection)
	}
}
