package model

// Identity is the authenticated requester resolved from a bearer token.
type Identity struct {
	UserID   int64
	Username string
}
