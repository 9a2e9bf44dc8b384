package engine_test

import (
	"fmt"
	"testing"

	"quizito/internal/engine"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		topic string
		want  engine.Category
	}{
		{"Python programming", engine.CategoryTechnology},
		{"Cloud Architecture", engine.CategoryTechnology},
		{"Biology of the cell", engine.CategoryScience},
		{"The Cold War", engine.CategoryHistory},
		{"Linear Algebra", engine.CategoryMath},
		{"Digital Marketing", engine.CategoryBusiness},
		{"Photosynthesis", engine.CategoryGeneral},
		{"", engine.CategoryGeneral},
	}

	for _, tc := range cases {
		if got := engine.Classify(tc.topic); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.topic, got, tc.want)
		}
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := engine.Classify("SOFTWARE Engineering"); got != engine.CategoryTechnology {
		t.Errorf("expected Technology, got %q", got)
	}
}

func TestAspectsLength(t *testing.T) {
	for _, n := range []int{1, 5, 10, 23} {
		aspects := engine.Aspects("Photosynthesis", n)
		if len(aspects) != n {
			t.Errorf("Aspects(_, %d) returned %d entries", n, len(aspects))
		}
	}
}

func TestAspectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -20} {
		if aspects := engine.Aspects("Photosynthesis", n); len(aspects) != 0 {
			t.Errorf("Aspects(_, %d) returned %d entries, want 0", n, len(aspects))
		}
	}
}

func TestAspectsCycle(t *testing.T) {
	// The general fragment list has 9 entries, so index 9 repeats index 0.
	aspects := engine.Aspects("Photosynthesis", 12)
	for i := 9; i < 12; i++ {
		if aspects[i] != aspects[i-9] {
			t.Errorf("aspect %d = %q, want repeat of aspect %d = %q", i, aspects[i], i-9, aspects[i-9])
		}
	}
}

func TestAspectsFormat(t *testing.T) {
	aspects := engine.Aspects("Go programming", 2)
	want := []string{"fundamentals of Go programming", "applications of Go programming"}
	for i := range want {
		if aspects[i] != want[i] {
			t.Errorf("aspect %d = %q, want %q", i, aspects[i], want[i])
		}
	}
}

func TestAspectsAreDeterministic(t *testing.T) {
	a := engine.Aspects("chemistry", 7)
	b := engine.Aspects("chemistry", 7)
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Errorf("repeated calls differ: %v vs %v", a, b)
	}
}
