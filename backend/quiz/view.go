package quiz

import "quizbank/backend/models"

// View is the client-facing snapshot of a session. The correct answer is only
// included once the open question has been answered.
type View struct {
	ID         string                 `json:"sessionId"`
	State      State                  `json:"state"`
	Index      int                    `json:"index"`
	Total      int                    `json:"totalQuestions"`
	Score      int                    `json:"score"`
	Question   *models.PublicQuestion `json:"question,omitempty"`
	Answer     *Answer                `json:"answer,omitempty"`
	IsLast     bool                   `json:"isLast"`
	Percentage *int                   `json:"percentage,omitempty"`
	ResultID   *uint                  `json:"resultId,omitempty"`
}

func (s *Session) View(id string) View {
	v := View{
		ID:    id,
		State: s.state,
		Index: s.index,
		Total: len(s.questions),
		Score: s.score,
	}

	if q, ok := s.Current(); ok {
		pub := q.Public()
		v.Question = &pub
		v.IsLast = s.index == len(s.questions)-1
	}
	if a, ok := s.Revealed(); ok {
		v.Answer = &a
	}
	if s.state == StateComplete {
		pct := s.Percentage()
		v.Percentage = &pct
		if s.result != nil {
			resultID := s.result.ID
			v.ResultID = &resultID
		}
	}
	return v
}
