package wizard

import "github.com/fireplan-nl/fireplan/internal/profile"

// State is the wizard's complete runtime state. It is a value; Apply returns
// a new State and never mutates its input.
type State struct {
	Step       Step              `json:"step"`
	Errors     map[string]string `json:"errors"`
	Submitting bool              `json:"submitting"`
	// Submit is set on the transition that starts a submission. It is an
	// edge, not a level: subsequent states clear it while Submitting stays.
	Submit bool `json:"submit"`
}

// ActionType names a reducer action.
type ActionType string

const (
	ActionAdvance        ActionType = "advance"
	ActionBack           ActionType = "back"
	ActionSubmitFinished ActionType = "submitFinished"
	ActionRestart        ActionType = "restart"
)

// Initial returns the wizard's starting state.
func Initial() State {
	return State{Step: StepHousehold, Errors: map[string]string{}}
}

// Apply is the state-transition function. Transitions are strictly linear:
// advance validates the active step and either surfaces errors or moves
// forward; advancing past the terminal step starts a submission instead.
// While a submission is in flight, advance and back are ignored so a slow
// upstream call cannot be double-fired.
func Apply(s State, action ActionType, p profile.Profile) State {
	next := s
	next.Errors = map[string]string{}
	next.Submit = false

	switch action {
	case ActionAdvance:
		if s.Submitting {
			return s
		}
		errs := Validate(s.Step, p)
		if len(errs) > 0 {
			next.Errors = errs
			return next
		}
		if s.Step.IsTerminal() {
			next.Submitting = true
			next.Submit = true
			return next
		}
		step, _ := s.Step.Next()
		next.Step = step
	case ActionBack:
		if s.Submitting {
			return s
		}
		if step, ok := s.Step.Prev(); ok {
			next.Step = step
		}
	case ActionSubmitFinished:
		next.Submitting = false
	case ActionRestart:
		return Initial()
	}

	return next
}
