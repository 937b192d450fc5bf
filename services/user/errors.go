package user

// AuthError carries a message safe to surface to the client, as opposed to
// opaque store failures.
type AuthError struct {
	Msg string
}

func (e AuthError) Error() string {
	return e.Msg
}
