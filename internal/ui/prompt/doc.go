// Package prompt runs the profile wizard as a sequence of huh forms.
//
// It is the line-mode front end used when stdout is not a terminal or when
// --prompt is given, and with --accessible it degrades to plain
// screen-reader friendly prompts. Every screen is one huh form followed by a
// navigation select; the wizard.Controller stays the single source of truth
// for the current step and the record.
package prompt
