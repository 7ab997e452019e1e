package session

import "errors"

var (
	// ErrNavigationBlocked indicates a jump to a disabled section. The
	// caller surfaces it as a banner; nothing about the session changes.
	ErrNavigationBlocked = errors.New("navigation blocked")

	// ErrSectionNotFound indicates the requested section id has no entry
	// in the generated configuration. Rendered inline, never fatal.
	ErrSectionNotFound = errors.New("section not in configuration")

	// ErrIncompleteSection indicates Next was called while the active
	// section still has unanswered required questions. The researcher may
	// override with an explicit leave-anyway.
	ErrIncompleteSection = errors.New("section has incomplete required fields")

	// ErrIncomplete indicates submission was attempted while at least one
	// section fails validation.
	ErrIncomplete = errors.New("application has incomplete sections")

	// ErrAlreadySubmitted indicates a second submit of the same session.
	ErrAlreadySubmitted = errors.New("application already submitted")
)
