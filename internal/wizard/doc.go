// Package wizard implements the three-step profile wizard controller.
//
// A Controller exclusively owns one session: the profile record
// (form.State) and the navigation state (current step and the submitted
// flag). Navigation is a looplab/fsm state machine with four states:
//
//	step1 --advance--> step2 --advance--> step3 --submit--> submitted
//	step1 <--retreat-- step2 <--retreat-- step3
//	any state --reset--> step1
//
// Advancing out of an input step is gated on that step's required fields;
// a blocked transition returns a *form.ValidationError naming the offending
// fields and leaves the session unchanged. Submitting hands a copy of the
// record to the injected Sink; the session becomes submitted only after the
// sink accepted it.
//
// A Controller is driven by a single event loop and is not safe for
// concurrent use.
package wizard
