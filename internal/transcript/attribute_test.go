package transcript

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"transcript-sentiment-service/internal/models"
)

func testRoster(t *testing.T) *Roster {
	t.Helper()
	r, err := NewRoster(RosterConfig{
		Speakers: map[string][]string{
			"David Dimbleby": {"DAVID DIMBLEBY:", "DD:"},
			"Ed Milliband":   {"ED MILLIBAND:", "EM:"},
		},
		Other: []string{"MODERATOR:", "AUDIENCE:"},
	})
	if err != nil {
		t.Fatalf("building roster: %v", err)
	}
	return r
}

func attribute(t *testing.T, lines ...string) ([]models.Utterance, Stats) {
	t.Helper()
	raw := make([]RawLine, len(lines))
	for i, l := range lines {
		raw[i] = RawLine{Index: i, Text: l}
	}
	return NewAttributor(testRoster(t), nil).Attribute(raw)
}

func TestAttribute_ForwardFill(t *testing.T) {
	got, _ := attribute(t,
		"DAVID DIMBLEBY:", "Hello", "there",
		"ED MILLIBAND:", "Hi",
	)

	want := []models.Utterance{
		{TurnID: 1, Speaker: "David Dimbleby", Text: "Hello there"},
		{TurnID: 2, Speaker: "Ed Milliband", Text: "Hi"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAttribute_NoiseRemoval(t *testing.T) {
	got, stats := attribute(t,
		"DAVID DIMBLEBY:", "Hello", "", "Page 3", "there",
	)

	if len(got) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(got))
	}
	if got[0].Text != "Hello there" {
		t.Errorf("noise leaked into text: %q", got[0].Text)
	}
	if stats.Noise != 2 {
		t.Errorf("expected 2 noise lines, got %d", stats.Noise)
	}
	for _, u := range got {
		if strings.Contains(u.Text, "Page") {
			t.Errorf("page marker present in %q", u.Text)
		}
	}
}

func TestAttribute_NoiseNeverIncrementsTurn(t *testing.T) {
	// noise between two content lines of the same turn must not split them
	got, _ := attribute(t,
		"DD:", "first", "Page 12", "second",
	)
	if len(got) != 1 || got[0].Text != "first second" {
		t.Errorf("expected single merged turn, got %+v", got)
	}
}

func TestAttribute_OtherExcluded(t *testing.T) {
	got, stats := attribute(t,
		"MODERATOR:", "Welcome to the debate",
		"DD:", "Thank you",
	)

	if len(got) != 1 {
		t.Fatalf("expected 1 utterance, got %d: %+v", len(got), got)
	}
	if got[0].Speaker != "David Dimbleby" {
		t.Errorf("unexpected speaker %q", got[0].Speaker)
	}
	if stats.Other != 1 {
		t.Errorf("expected 1 other line, got %d", stats.Other)
	}
	for _, u := range got {
		if u.Speaker == OtherSpeaker {
			t.Errorf("Other speaker leaked into output")
		}
	}
}

func TestAttribute_PreambleExcluded(t *testing.T) {
	got, stats := attribute(t,
		"Transcript of the leaders' debate",
		"Broadcast 2 May",
		"DD:", "Good evening",
	)

	if len(got) != 1 || got[0].Text != "Good evening" {
		t.Errorf("preamble not dropped: %+v", got)
	}
	if stats.Preamble != 2 {
		t.Errorf("expected 2 preamble lines, got %d", stats.Preamble)
	}
}

func TestAttribute_EmptyInput(t *testing.T) {
	got, _ := attribute(t)
	if len(got) != 0 {
		t.Errorf("expected no utterances, got %+v", got)
	}

	got, _ = NewAttributor(testRoster(t), nil).Attribute(nil)
	if len(got) != 0 {
		t.Errorf("expected no utterances for nil input, got %+v", got)
	}
}

func TestAttribute_NoLabels(t *testing.T) {
	got, _ := attribute(t, "just", "some", "text")
	if len(got) != 0 {
		t.Errorf("expected no utterances without labels, got %+v", got)
	}
}

func TestAttribute_ConsecutiveLabels(t *testing.T) {
	// a name line immediately followed by its abbreviation produces no empty
	// utterance; turn IDs stay dense
	got, _ := attribute(t,
		"DAVID DIMBLEBY:", "DD:", "Hello",
		"EM:", "Hi",
	)

	want := []models.Utterance{
		{TurnID: 1, Speaker: "David Dimbleby", Text: "Hello"},
		{TurnID: 2, Speaker: "Ed Milliband", Text: "Hi"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAttribute_TurnIDDensity(t *testing.T) {
	got, _ := attribute(t,
		"DD:", "one",
		"MODERATOR:", "dropped entirely",
		"EM:", "two",
		"DD:", "three",
	)

	if len(got) != 3 {
		t.Fatalf("expected 3 utterances, got %d", len(got))
	}
	for i, u := range got {
		if u.TurnID != i+1 {
			t.Errorf("utterance %d has turn ID %d, want %d", i, u.TurnID, i+1)
		}
	}
}

func TestAttribute_OrderPreservation(t *testing.T) {
	lines := []string{
		"DD:", "alpha", "beta",
		"EM:", "gamma",
		"DD:", "delta", "epsilon", "zeta",
	}
	got, _ := attribute(t, lines...)

	var joined []string
	for _, u := range got {
		joined = append(joined, u.Text)
	}
	want := "alpha beta gamma delta epsilon zeta"
	if s := strings.Join(joined, " "); s != want {
		t.Errorf("concatenated output %q, want %q", s, want)
	}
}

func TestAttribute_RegroupIdempotent(t *testing.T) {
	got, _ := attribute(t,
		"DD:", "Hello", "there",
		"EM:", "Hi", "again",
	)

	// feed each utterance back through as a single content line
	var relines []string
	for _, u := range got {
		switch u.Speaker {
		case "David Dimbleby":
			relines = append(relines, "DD:", u.Text)
		case "Ed Milliband":
			relines = append(relines, "EM:", u.Text)
		}
	}
	again, _ := attribute(t, relines...)
	if !reflect.DeepEqual(got, again) {
		t.Errorf("regrouping not idempotent: first %+v, second %+v", got, again)
	}
}

func TestAttribute_CustomNoisePattern(t *testing.T) {
	noise := regexp.MustCompile(`^\s*(\[inaudible\])?\s*$`)
	raw := []RawLine{
		{0, "DD:"}, {1, "Hello"}, {2, "[inaudible]"}, {3, "there"},
	}
	got, _ := NewAttributor(testRoster(t), noise).Attribute(raw)
	if len(got) != 1 || got[0].Text != "Hello there" {
		t.Errorf("custom noise pattern not applied: %+v", got)
	}
}

func TestAttribute_LabelMatchIsExact(t *testing.T) {
	// a near-miss label is ordinary content, attributed to the current speaker
	got, _ := attribute(t,
		"DD:", "Hello",
		"ED MILIBAND:", // misspelled, not in the roster
		"more words",
	)
	if len(got) != 1 {
		t.Fatalf("expected 1 utterance, got %+v", got)
	}
	if got[0].Text != "Hello ED MILIBAND: more words" {
		t.Errorf("unexpected text %q", got[0].Text)
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\nb\nc")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"a", "b", "c"} {
		if lines[i].Index != i || lines[i].Text != want {
			t.Errorf("line %d = %+v, want {%d %q}", i, lines[i], i, want)
		}
	}

	if got := SplitLines(""); got != nil {
		t.Errorf("expected nil for empty blob, got %+v", got)
	}
}
