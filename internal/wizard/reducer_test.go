package wizard

import (
	"testing"

	"github.com/fireplan-nl/fireplan/internal/profile"
	"github.com/fireplan-nl/fireplan/pkg/testutil"
)

func TestApplyAdvanceThroughAllSteps(t *testing.T) {
	p := testutil.ValidProfile()
	s := Initial()

	expected := []Step{StepFinancials, StepDutchTax, StepRealEstate}
	for _, want := range expected {
		s = Apply(s, ActionAdvance, p)
		if s.Step != want {
			t.Fatalf("advance moved to %v, expected %v", s.Step, want)
		}
		if len(s.Errors) != 0 {
			t.Fatalf("advance surfaced errors %v on a valid profile", s.Errors)
		}
	}

	// Terminal advance starts submission rather than moving.
	s = Apply(s, ActionAdvance, p)
	if s.Step != StepRealEstate {
		t.Errorf("terminal advance moved to %v, expected to stay on realEstate", s.Step)
	}
	if !s.Submitting || !s.Submit {
		t.Errorf("terminal advance = %+v, expected Submitting and Submit set", s)
	}
}

func TestApplyAdvanceBlockedByValidation(t *testing.T) {
	p := testutil.ValidProfile()
	p.Name = ""

	s := Apply(Initial(), ActionAdvance, p)
	if s.Step != StepHousehold {
		t.Errorf("invalid advance moved to %v, expected to stay on household", s.Step)
	}
	if s.Errors["name"] == "" {
		t.Errorf("expected name error, got %v", s.Errors)
	}
	if s.Submitting {
		t.Error("invalid advance must not start a submission")
	}
}

func TestApplyBack(t *testing.T) {
	p := testutil.ValidProfile()

	s := State{Step: StepDutchTax, Errors: map[string]string{"jaarruimte": "stale"}}
	s = Apply(s, ActionBack, p)
	if s.Step != StepFinancials {
		t.Errorf("back moved to %v, expected financials", s.Step)
	}
	// Errors belong to the step they were computed for and are dropped on leave.
	if len(s.Errors) != 0 {
		t.Errorf("back kept stale errors %v", s.Errors)
	}

	// No transition backward out of the first step.
	s = Apply(Initial(), ActionBack, p)
	if s.Step != StepHousehold {
		t.Errorf("back from first step moved to %v", s.Step)
	}
}

func TestApplySingleFlight(t *testing.T) {
	p := testutil.ValidProfile()
	s := State{Step: StepRealEstate, Errors: map[string]string{}, Submitting: true}

	if got := Apply(s, ActionAdvance, p); got.Step != StepRealEstate || !got.Submitting {
		t.Errorf("advance during submission changed state: %+v", got)
	}
	if got := Apply(s, ActionBack, p); got.Step != StepRealEstate || !got.Submitting {
		t.Errorf("back during submission changed state: %+v", got)
	}

	got := Apply(s, ActionSubmitFinished, p)
	if got.Submitting {
		t.Error("submitFinished did not clear Submitting")
	}
}

func TestApplyRestart(t *testing.T) {
	p := profile.New()
	s := State{Step: StepRealEstate, Errors: map[string]string{"homeValue": "x"}, Submitting: false}

	got := Apply(s, ActionRestart, p)
	if got.Step != StepHousehold || len(got.Errors) != 0 || got.Submitting {
		t.Errorf("restart = %+v, expected pristine initial state", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	p := testutil.ValidProfile()
	p.Name = ""

	s := Initial()
	_ = Apply(s, ActionAdvance, p)
	if len(s.Errors) != 0 || s.Step != StepHousehold {
		t.Errorf("Apply mutated its input state: %+v", s)
	}
}
