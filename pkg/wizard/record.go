package wizard

import (
	"context"
	"strconv"

	"github.com/dmitrymomot/userdash/pkg/statemachine"
)

// Record is the user being assembled by the wizard. JSON names match the
// persisted draft format.
type Record struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// IsZero reports whether every field is empty.
func (r Record) IsZero() bool {
	return r == Record{}
}

// Patch is a partial Record. Nil fields are left unchanged.
type Patch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	Zipcode *string `json:"zipcode,omitempty"`
}

// IsEmpty reports whether the patch sets nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply returns r with the non-nil fields of p merged in.
func (r Record) Apply(p Patch) Record {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Street != nil {
		r.Street = *p.Street
	}
	if p.City != nil {
		r.City = *p.City
	}
	if p.Zipcode != nil {
		r.Zipcode = *p.Zipcode
	}
	return r
}

// Step is a wizard page index.
type Step int

const (
	StepBasicInfo Step = 1
	StepAddress   Step = 2
	StepReview    Step = 3
)

// Steps lists every step in order.
var Steps = []Step{StepBasicInfo, StepAddress, StepReview}

func (s Step) Valid() bool {
	return s >= StepBasicInfo && s <= StepReview
}

// Clamp forces s into the valid range.
func (s Step) Clamp() Step {
	return min(max(s, StepBasicInfo), StepReview)
}

// Title is the label shown in progress indicators.
func (s Step) Title() string {
	switch s {
	case StepBasicInfo:
		return "Basic Info"
	case StepAddress:
		return "Address"
	case StepReview:
		return "Review"
	default:
		return "Step " + strconv.Itoa(int(s))
	}
}

func (s Step) String() string {
	return strconv.Itoa(int(s))
}

// Snapshot is a read-only copy of the wizard state.
type Snapshot struct {
	Step   Step   `json:"step"`
	Record Record `json:"record"`
}

var (
	stateBasicInfo = statemachine.StringState("basic_info")
	stateAddress   = statemachine.StringState("address")
	stateReview    = statemachine.StringState("review")

	eventAdvance = statemachine.StringEvent("advance")
	eventRetreat = statemachine.StringEvent("retreat")
)

func (s Step) state() statemachine.State {
	switch s.Clamp() {
	case StepAddress:
		return stateAddress
	case StepReview:
		return stateReview
	default:
		return stateBasicInfo
	}
}

func stepOf(state statemachine.State) Step {
	switch state.Name() {
	case stateAddress.Name():
		return StepAddress
	case stateReview.Name():
		return StepReview
	default:
		return StepBasicInfo
	}
}

// newMachine wires the step graph. Every transition is guarded by idle and
// runs onStep when taken.
func newMachine(idle func() bool, onStep statemachine.Action) *statemachine.Machine {
	guard := statemachine.WithGuard(func(context.Context, statemachine.State, statemachine.Event, any) bool {
		return idle()
	})
	action := statemachine.WithAction(onStep)
	return statemachine.MustNew(stateBasicInfo,
		statemachine.WithTransition(stateBasicInfo, stateAddress, eventAdvance, guard, action),
		statemachine.WithTransition(stateAddress, stateReview, eventAdvance, guard, action),
		statemachine.WithTransition(stateReview, stateAddress, eventRetreat, guard, action),
		statemachine.WithTransition(stateAddress, stateBasicInfo, eventRetreat, guard, action),
	)
}
