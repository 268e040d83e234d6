// Package form defines the profile record collected by the stepform wizard.
//
// The record holds nine string fields split across two input steps. Each
// field carries static metadata (label, owning step, whether it is required
// and what kind of value it expects) that the wizard controller uses to gate
// step transitions and the front ends use to render inputs.
//
// Field names are the camelCase keys used on every input surface (answers
// files, prompts, submission records). Unknown names are rejected with
// ErrUnknownField instead of silently growing the record.
package form
