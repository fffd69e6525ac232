package exercise

import "testing"

func ex(name, category string, completed bool) Exercise {
	return Exercise{Name: name, Category: category, Type: TypeSpeech, Completed: completed}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	got := Recommend(nil)
	if len(got) != 0 {
		t.Errorf("Recommend(nil) returned %d exercises, want 0", len(got))
	}
}

func TestRecommendPrefersIncompleteBeginner(t *testing.T) {
	all := []Exercise{
		ex("done-1", CategoryAdvanced, true),
		ex("done-2", CategoryBeginner, true),
		ex("todo", CategoryBeginner, false),
	}

	got := Recommend(all)
	if len(got) != 1 {
		t.Fatalf("Recommend returned %d exercises, want 1", len(got))
	}
	if got[0].Name != "todo" {
		t.Errorf("first recommendation = %q, want %q", got[0].Name, "todo")
	}
}

func TestRecommendSortsByDifficulty(t *testing.T) {
	all := []Exercise{
		ex("adv", CategoryAdvanced, false),
		ex("int", CategoryIntermediate, false),
		ex("beg", CategoryBeginner, false),
	}

	got := Recommend(all)
	wantOrder := []string{"beg", "int", "adv"}
	for i, want := range wantOrder {
		if got[i].Name != want {
			t.Errorf("recommendation[%d] = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestRecommendStableWithinSameDifficulty(t *testing.T) {
	all := []Exercise{
		ex("first", CategoryBeginner, false),
		ex("second", CategoryBeginner, false),
		ex("third", CategoryBeginner, false),
	}

	got := Recommend(all)
	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if got[i].Name != want {
			t.Errorf("recommendation[%d] = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestRecommendTruncatesToFive(t *testing.T) {
	var all []Exercise
	for i := 0; i < 8; i++ {
		all = append(all, ex("todo", CategoryBeginner, false))
	}

	got := Recommend(all)
	if len(got) != 5 {
		t.Errorf("Recommend returned %d exercises, want 5", len(got))
	}
}

func TestRecommendFallsBackToCompletedExamples(t *testing.T) {
	all := []Exercise{
		ex("a", CategoryBeginner, true),
		ex("b", CategoryIntermediate, true),
		ex("c", CategoryAdvanced, true),
		ex("d", CategoryAdvanced, true),
	}

	got := Recommend(all)
	if len(got) != 3 {
		t.Fatalf("fallback returned %d exercises, want 3", len(got))
	}
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if got[i].Name != want {
			t.Errorf("fallback[%d] = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestRecommendFallbackWithFewerThanThree(t *testing.T) {
	all := []Exercise{ex("only", CategoryBeginner, true)}

	got := Recommend(all)
	if len(got) != 1 {
		t.Fatalf("fallback returned %d exercises, want 1", len(got))
	}
}
