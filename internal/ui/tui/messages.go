// Package tui provides the Bubble Tea front end of the profile wizard.
package tui

// submitResultMsg carries the outcome of an asynchronous Submit.
type submitResultMsg struct {
	err error
}
