// Package selection tracks the subject and topic the student is focused on.
package selection

// Selection is the active (subject, topic) pair. An empty string means "none".
// Subject holds a catalog subject id; Topic holds the topic name as displayed.
type Selection struct {
	Subject string
	Topic   string
}

// SelectSubject returns the selection with the subject replaced. The topic is
// always cleared, even when the same subject is chosen again.
func (s Selection) SelectSubject(id string) Selection {
	return Selection{Subject: id}
}

// SelectTopic returns the selection with the topic replaced. The topic is not
// checked against the subject's topic list; without a subject it is a no-op.
func (s Selection) SelectTopic(name string) Selection {
	if s.Subject == "" {
		return s
	}
	s.Topic = name
	return s
}

// HasSubject reports whether a subject is selected.
func (s Selection) HasSubject() bool {
	return s.Subject != ""
}

// HasTopic reports whether a topic is selected.
func (s Selection) HasTopic() bool {
	return s.Topic != ""
}
