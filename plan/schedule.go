package plan

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/expdesign/balance"
)

// Schedule is the outcome of running a Plan: the condition of every trial,
// grouped by session.
type Schedule struct {
	ID               string              `yaml:"id" json:"id"`
	Name             string              `yaml:"name" json:"name"`
	Shuffle          balance.ShuffleType `yaml:"shuffle" json:"shuffle"`
	TrialsPerSession int                 `yaml:"trials_per_session" json:"trials_per_session"`
	SessionCount     int                 `yaml:"session_count" json:"session_count"`
	Seed             *int64              `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Sessions holds [session][trial] condition codes. For nested plans these
	// are the sub-condition codes.
	Sessions [][]string `yaml:"sessions" json:"sessions"`

	// Conditions holds the top-level label of every trial; nested plans only.
	Conditions [][]string `yaml:"conditions,omitempty" json:"conditions,omitempty"`

	Warnings []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// Run validates p and balances it. logger receives balance warnings and a
// summary entry; nil means no logging.
func Run(p *Plan, logger *zap.Logger) (*Schedule, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil plan", ErrInvalidPlan)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Schedule{
		ID:               uuid.NewString(),
		Name:             p.Name,
		Shuffle:          p.Shuffle,
		TrialsPerSession: p.Trials,
		SessionCount:     p.Sessions,
		Seed:             p.Seed,
	}
	opts := append(p.options(), balance.WithLogger(logger.With(zap.String("schedule_id", s.ID))))

	if p.IsNested() {
		conds := p.nestedConditions()
		warns, err := balance.CheckNested(conds, p.Trials, p.Sessions)
		if err != nil {
			return nil, fmt.Errorf("plan %q: %w", p.Name, err)
		}
		woven, err := balance.BalanceNestedAssignments(conds, p.Trials, p.Sessions, p.Shuffle, opts...)
		if err != nil {
			return nil, fmt.Errorf("plan %q: %w", p.Name, err)
		}
		s.Sessions = make([][]string, len(woven))
		s.Conditions = make([][]string, len(woven))
		for i, sess := range woven {
			s.Sessions[i] = make([]string, len(sess))
			s.Conditions[i] = make([]string, len(sess))
			for j, a := range sess {
				s.Sessions[i][j] = a.Sub
				s.Conditions[i][j] = a.Cond
			}
		}
		for _, w := range warns {
			s.Warnings = append(s.Warnings, w.String())
		}
	} else {
		sessions, err := balance.BalanceSessions(p.Conditions, p.Trials, p.Sessions, p.Shuffle, opts...)
		if err != nil {
			return nil, fmt.Errorf("plan %q: %w", p.Name, err)
		}
		s.Sessions = sessions
	}

	logger.Info("schedule built",
		zap.String("schedule_id", s.ID),
		zap.String("plan", p.Name),
		zap.Stringer("shuffle", p.Shuffle),
		zap.Int("trials_per_session", p.Trials),
		zap.Int("sessions", p.Sessions),
		zap.Bool("nested", p.IsNested()),
		zap.Int("warnings", len(s.Warnings)),
	)
	return s, nil
}

// Summary tallies the codes of every session.
func (s *Schedule) Summary() []map[string]int {
	return balance.SessionCounts(s.Sessions)
}
