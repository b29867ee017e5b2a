package loop

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/tetris/engine"
	"github.com/sirupsen/logrus"
)

// Session tracks one play session: the games it went through and the step
// results the loop observed.
type Session struct {
	ID      uuid.UUID
	Started time.Time

	Games      int
	BestScore  int
	LastScore  int
	GameOverAt time.Time

	log logrus.FieldLogger
}

// NewSession creates a session with a fresh id. A nil logger discards output.
func NewSession(log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	id := uuid.New()
	return &Session{
		ID:      id,
		Started: time.Now(),
		log:     log.WithField("game", id.String()),
	}
}

func (s *Session) Logger() logrus.FieldLogger {
	return s.log
}

// Observe records the outcome of a command or gravity step.
func (s *Session) Observe(cmd engine.Command, res engine.StepResult) {
	if res.Locked {
		s.log.WithFields(logrus.Fields{
			"command": cmd.String(),
			"cleared": res.Cleared,
			"dropped": res.Dropped,
		}).Debug("piece locked")
	}

	if !res.GameOver {
		return
	}

	s.Games++
	s.LastScore = res.FinalScore
	s.BestScore = max(s.BestScore, res.FinalScore)
	s.GameOverAt = time.Now()

	s.log.WithFields(logrus.Fields{
		"score": res.FinalScore,
		"best":  s.BestScore,
		"games": s.Games,
	}).Info("game over")
}
