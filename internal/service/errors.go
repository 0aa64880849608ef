package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")

	ErrIncorrectPassword = errors.New("incorrect password")
	ErrNotOwner          = errors.New("you do not have permission to modify this record")

	ErrSportDisabled = errors.New("this sport is not enabled for the hostel")
	ErrTeamExists    = errors.New("the hostel already has a team for this sport")
	ErrRosterFull    = errors.New("team roster is full")

	ErrLinkInactive     = errors.New("registration link is no longer active")
	ErrRequestNotOpen   = errors.New("player request has already been decided")
	ErrMatchNotOpen     = errors.New("match is not in scheduled state")
	ErrWinnerNotInMatch = errors.New("winner is not part of this match")
)

// ValidationError marks input rejected before any write happens; handlers
// surface it as a 400.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return ValidationError{msg: fmt.Sprintf(format, args...)}
}
