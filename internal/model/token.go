package model

import "time"

// AccessToken is a signed bearer token together with its lifetime.
type AccessToken struct {
	Token     string
	ExpiresIn time.Duration
}
