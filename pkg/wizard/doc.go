// Package wizard implements the three-step "add user" form as an explicitly
// owned state object.
//
// A Wizard holds the current Step (1 basic info, 2 address, 3 review) and the
// Record being edited. Step changes are driven by a statemachine.Machine with
// advance and retreat events. Firing an event that has no transition, such as
// advance on the review step, is a silent no-op: the step is clamped to
// [StepBasicInfo, StepReview] and never jumps.
//
// # Persistence
//
// Every mutating operation (UpdateRecord, Advance, Retreat, Reset) finishes
// with an explicit call to the DraftStore before it returns: Write for the
// first three, Clear for Reset. Mutations are serialised by the wizard mutex,
// so writes land in the same order as the operations and the last write
// always reflects the newest state. The store is a passive sink and its
// failures never reach the caller.
//
// New reads the store once and rehydrates the step and record found there.
//
// # Validation
//
// The wizard itself never validates on Advance. Views call ValidateStep for
// the group shown on the current step and only advance when it is empty.
// TryAdvance bundles both under the wizard lock for views that want the check
// and the transition to be atomic.
//
// # Submission
//
// Submit is the only operation that suspends. It requires the review step and
// a fully valid record, calls the Submitter without holding the wizard lock,
// and resets the wizard when the submitter succeeds. A failing submitter
// leaves step and record untouched. While it runs, every other mutating
// operation (and a second Submit) fails with ErrSubmitInProgress; the machine's
// transitions are guarded so CanAdvance and CanRetreat report false.
//
// # Lifecycle
//
// There is no package-level form state. Registry keeps one Wizard per
// profile: Mount creates and rehydrates on first use, Unmount drops it, and
// the least recently used instance is dropped when the registry is full.
package wizard
