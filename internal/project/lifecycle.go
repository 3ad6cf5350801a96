package project

import (
	"context"
	"errors"
	"fmt"
)

// State is a project's position in the evaluation lifecycle.
type State int

const (
	// Pending projects have not started evaluation.
	Pending State = iota
	// Evaluating projects are running their script.
	Evaluating
	// Evaluated projects are fully configured; their hooks have fired.
	Evaluated
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Evaluating:
		return "evaluating"
	case Evaluated:
		return "evaluated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrAlreadyEvaluated is returned by AfterEvaluate once the project has been
// evaluated; the hook could never fire.
var ErrAlreadyEvaluated = errors.New("project is already evaluated")

// Action runs against a project once it is evaluated.
type Action func(ctx context.Context) error

type lifecycle struct {
	state State
	hooks []Action
}

// State returns the current lifecycle state.
func (l *lifecycle) State() State {
	return l.state
}

// Executed reports whether evaluation has completed.
func (l *lifecycle) Executed() bool {
	return l.state == Evaluated
}

// AfterEvaluate queues fn to run when the project finishes evaluation.
func (l *lifecycle) AfterEvaluate(fn Action) error {
	if l.state == Evaluated {
		return ErrAlreadyEvaluated
	}
	l.hooks = append(l.hooks, fn)
	return nil
}

// WhenEvaluated runs fn now if the project is evaluated and queues it
// otherwise. Either way fn runs exactly once.
func (l *lifecycle) WhenEvaluated(ctx context.Context, fn Action) error {
	if l.state == Evaluated {
		return fn(ctx)
	}
	l.hooks = append(l.hooks, fn)
	return nil
}

// BeginEvaluation moves a pending project to Evaluating.
func (l *lifecycle) BeginEvaluation() error {
	if l.state != Pending {
		return fmt.Errorf("cannot begin evaluation of a project that is %s", l.state)
	}
	l.state = Evaluating
	return nil
}

// MarkEvaluated completes evaluation and fires queued hooks in registration
// order. The first failing hook aborts the remaining ones.
func (l *lifecycle) MarkEvaluated(ctx context.Context) error {
	if l.state != Evaluating {
		return fmt.Errorf("cannot complete evaluation of a project that is %s", l.state)
	}
	l.state = Evaluated
	hooks := l.hooks
	l.hooks = nil
	for i, hook := range hooks {
		if err := hook(ctx); err != nil {
			return fmt.Errorf("after-evaluate action %d: %w", i+1, err)
		}
	}
	return nil
}
