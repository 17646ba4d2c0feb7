package domain

import "errors"

// Kind classifies a failure so that transports can branch on it without
// matching strings.
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the error type returned by every service operation. Msg is safe to
// show to API clients; Err carries the underlying cause, if any.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err. Errors that are not a *Error are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of err
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return "Internal server error"
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// Internal wraps a persistence failure that has no narrower classification.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// Enum errors
var (
	ErrInvalidLane   = &Error{Kind: KindValidation, Msg: "invalid lane"}
	ErrInvalidGender = &Error{Kind: KindValidation, Msg: "invalid gender"}
	ErrInvalidRank   = &Error{Kind: KindValidation, Msg: "invalid rank"}
)

// Identity errors
var (
	ErrMissingSignupFields = &Error{Kind: KindValidation, Msg: "Missing required fields"}
	ErrMissingCredentials  = &Error{Kind: KindValidation, Msg: "Missing username or password"}
	ErrUserNotFound        = &Error{Kind: KindNotFound, Msg: "User not found"}
	ErrUserExists          = &Error{Kind: KindConflict, Msg: "Username or nick already exists"}
	ErrInvalidCredentials  = &Error{Kind: KindUnauthorized, Msg: "Username or password don't match"}
)

// Catalog errors
var (
	ErrChampionNotFound = &Error{Kind: KindNotFound, Msg: "Champion not found"}
	ErrItemNotFound     = &Error{Kind: KindNotFound, Msg: "Item not found"}
	ErrStatsNotFound    = &Error{Kind: KindNotFound, Msg: "Stats not found"}
)

// Build errors
var (
	ErrMissingBuildFields = &Error{Kind: KindValidation, Msg: "Missing required fields"}
	ErrBuildNotFound      = &Error{Kind: KindNotFound, Msg: "Build not found"}
	ErrBuildTitleTaken    = &Error{Kind: KindConflict, Msg: "Build title already exists"}
	ErrNotBuildOwner      = &Error{Kind: KindForbidden, Msg: "Unauthorized: You can only delete your own builds"}
	ErrNotBuildEditor     = &Error{Kind: KindForbidden, Msg: "Unauthorized: You can only edit your own builds"}
	ErrBuildItemNotFound  = &Error{Kind: KindNotFound, Msg: "Item not found in this build"}
	ErrFavouriteNotFound  = &Error{Kind: KindNotFound, Msg: "Build not found in favourites"}
	ErrFavouriteExists    = &Error{Kind: KindConflict, Msg: "Build already in favourites"}
)
