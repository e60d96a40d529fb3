package selection

import (
	"testing"

	"github.com/teacherbob/teacherbob/internal/catalog"
)

func TestSelectSubject_ClearsTopic(t *testing.T) {
	tests := []struct {
		name  string
		start Selection
		id    string
	}{
		{"from empty", Selection{}, "math"},
		{"switch subject", Selection{Subject: "math", Topic: "Frações"}, "history"},
		{"same subject again", Selection{Subject: "math", Topic: "Frações"}, "math"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.SelectSubject(tt.id)
			if got.Subject != tt.id {
				t.Errorf("Subject = %q, want %q", got.Subject, tt.id)
			}
			if got.Topic != "" {
				t.Errorf("Topic = %q, want empty", got.Topic)
			}
		})
	}
}

func TestSelectSubject_ClearsTopicForEveryCatalogSubject(t *testing.T) {
	for _, from := range catalog.Subjects() {
		for _, to := range catalog.Subjects() {
			start := Selection{}.SelectSubject(from.ID).SelectTopic(from.Topics[0])
			got := start.SelectSubject(to.ID)
			if got.Subject != to.ID || got.Topic != "" {
				t.Errorf("%s/%s then %s = %+v, want %s with no topic",
					from.ID, from.Topics[0], to.ID, got, to.ID)
			}
		}
	}
}

func TestSelectTopic(t *testing.T) {
	s := Selection{}.SelectSubject("history").SelectTopic("Independência")
	if s.Subject != "history" || s.Topic != "Independência" {
		t.Errorf("got %+v", s)
	}

	// Lenient: a topic from another subject is accepted
	s = s.SelectTopic("Frações")
	if s.Topic != "Frações" {
		t.Errorf("Topic = %q, want Frações", s.Topic)
	}
}

func TestSelectTopic_WithoutSubject(t *testing.T) {
	s := Selection{}.SelectTopic("Frações")
	if s != (Selection{}) {
		t.Errorf("expected no change, got %+v", s)
	}
}

func TestSelection_ValueSemantics(t *testing.T) {
	orig := Selection{Subject: "math", Topic: "Divisão"}
	_ = orig.SelectSubject("science")
	if orig.Topic != "Divisão" {
		t.Error("SelectSubject must not mutate the receiver")
	}
}

func TestHas(t *testing.T) {
	s := Selection{}
	if s.HasSubject() || s.HasTopic() {
		t.Error("empty selection reports content")
	}
	s = s.SelectSubject("math").SelectTopic("Geometria")
	if !s.HasSubject() || !s.HasTopic() {
		t.Error("expected subject and topic")
	}
}
