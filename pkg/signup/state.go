package signup

type State string

const (
	StateIdle            State = "idle"
	StateSubmitting      State = "submitting"
	StateSuccess         State = "success"
	StateDuplicate       State = "duplicate"
	StateServerError     State = "server-error"
	StateNetworkError    State = "network-error"
	StateUnexpectedError State = "unexpected-error"
	StateRedirecting     State = "redirecting"
)

// Failed reports whether s is one of the terminal error states.
func (s State) Failed() bool {
	switch s {
	case StateDuplicate, StateServerError, StateNetworkError, StateUnexpectedError:
		return true
	}
	return false
}
