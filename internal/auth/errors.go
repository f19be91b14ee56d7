package auth

import "errors"

var (
	// ErrMissingSubject is returned when the token has neither 'sub' nor 'userId'
	ErrMissingSubject = errors.New("token missing subject")

	// ErrMissingNickname is returned when the token has no 'nickname' claim
	ErrMissingNickname = errors.New("token missing nickname claim")

	// ErrNoVerifier is returned when no verification method is configured
	ErrNoVerifier = errors.New("no token verifier configured")
)
