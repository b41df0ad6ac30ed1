package quiz

import (
	"context"
	"errors"
	"fmt"

	"quizbank/backend/apperr"
	"quizbank/backend/models"
	"quizbank/backend/results"
)

var (
	ErrNoQuestions     = errors.New("no questions available")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidState    = errors.New("operation not allowed in current session state")
)

// State is the lifecycle phase of a session.
type State int

const (
	StateConfiguring State = iota
	StateActive
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Recorder persists the final score of a completed session.
type Recorder interface {
	Save(ctx context.Context, userID string, score, totalQuestions int) (models.QuizResult, error)
}

// Answer is the revealed outcome of the open question.
type Answer struct {
	Selected      int  `json:"selected"`
	IsCorrect     bool `json:"isCorrect"`
	CorrectAnswer int  `json:"correctAnswer"`
}

// Session is one user's attempt. It is not safe for concurrent use; callers
// that share a session across goroutines must serialize access.
type Session struct {
	userID   string
	sampler  *Sampler
	recorder Recorder

	state     State
	questions []models.Question
	index     int
	score     int
	answer    *Answer
	result    *models.QuizResult
}

func NewSession(userID string, sampler *Sampler, recorder Recorder) *Session {
	return &Session{
		userID:   userID,
		sampler:  sampler,
		recorder: recorder,
		state:    StateConfiguring,
	}
}

// Start samples the question set once and moves the session to active. On
// any failure, including an empty sample, the session stays configuring.
func (s *Session) Start(ctx context.Context, cfg Config) error {
	if s.state != StateConfiguring {
		return ErrInvalidState
	}

	sampled, err := s.sampler.Sample(ctx, cfg)
	if err != nil {
		return err
	}
	if len(sampled) == 0 {
		return ErrNoQuestions
	}

	s.questions = sampled
	s.index = 0
	s.score = 0
	s.answer = nil
	s.state = StateActive
	return nil
}

// SubmitAnswer scores the open question. Each question accepts one answer.
func (s *Session) SubmitAnswer(optionIndex int) (Answer, error) {
	if s.state != StateActive {
		return Answer{}, ErrInvalidState
	}
	if s.answer != nil {
		return *s.answer, ErrAlreadyAnswered
	}

	question := s.questions[s.index]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return Answer{}, apperr.Invalid("optionIndex", "option index is out of range")
	}

	answer := Answer{
		Selected:      optionIndex,
		IsCorrect:     optionIndex == question.CorrectAnswer,
		CorrectAnswer: question.CorrectAnswer,
	}
	if answer.IsCorrect {
		s.score++
	}
	s.answer = &answer
	return answer, nil
}

// Advance closes the open question and moves on. An unanswered question
// scores nothing. Advancing past the last question records the result exactly
// once; if recording fails the session stays on the last question and Advance
// can be retried. It reports whether the session is complete.
func (s *Session) Advance(ctx context.Context) (bool, error) {
	switch s.state {
	case StateConfiguring:
		return false, ErrInvalidState
	case StateComplete:
		return true, nil
	}

	if s.index < len(s.questions)-1 {
		s.index++
		s.answer = nil
		return false, nil
	}

	result, err := s.recorder.Save(ctx, s.userID, s.score, len(s.questions))
	if err != nil {
		return false, fmt.Errorf("record result: %w", err)
	}
	s.result = &result
	s.index = len(s.questions)
	s.answer = nil
	s.state = StateComplete
	return true, nil
}

func (s *Session) UserID() string { return s.userID }

func (s *Session) State() State { return s.state }

func (s *Session) Score() int { return s.score }

func (s *Session) Total() int { return len(s.questions) }

// Index is the 0-based position of the open question, or Total once complete.
func (s *Session) Index() int { return s.index }

// Current returns the open question, or false when none is open.
func (s *Session) Current() (models.Question, bool) {
	if s.state != StateActive {
		return models.Question{}, false
	}
	return s.questions[s.index], true
}

// Revealed returns the answer for the open question if one was submitted.
func (s *Session) Revealed() (Answer, bool) {
	if s.answer == nil {
		return Answer{}, false
	}
	return *s.answer, true
}

// Result is the persisted outcome, available once complete.
func (s *Session) Result() (models.QuizResult, bool) {
	if s.result == nil {
		return models.QuizResult{}, false
	}
	return *s.result, true
}

// Percentage is the score as a whole percent of the question count.
func (s *Session) Percentage() int {
	return results.Percentage(s.score, len(s.questions))
}
