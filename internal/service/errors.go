package service

import "errors"

// Client flow error taxonomy. Flow errors wrap one of these together with the
// underlying cause, so both errors.Is(err, ErrConnect) and
// errors.Is(err, channel.ErrConnectFailed) hold.
var (
	// ErrCredential is fatal and not retried.
	ErrCredential = errors.New("credential error")

	// ErrConnect is retried up to the flow's bound.
	ErrConnect = errors.New("connect error")

	// ErrNetwork is a failure of an established channel.
	ErrNetwork = errors.New("network error")

	// ErrProtocol is a version or format mismatch. It terminates the exchange
	// without touching local state.
	ErrProtocol = errors.New("protocol error")

	// ErrApplyDuplicate marks a log entry that was already applied. It is
	// absorbed by the apply phase.
	ErrApplyDuplicate = errors.New("update already applied")

	// ErrApply stops the apply phase. Entries applied before it are kept.
	ErrApply = errors.New("update could not be applied")

	// ErrServerRejection is a failed response from the server.
	ErrServerRejection = errors.New("server rejected the request")

	ErrCancelled = errors.New("cancelled")

	// ErrBoundedAttempts is returned when the push batch is still incomplete
	// after the configured number of rounds.
	ErrBoundedAttempts = errors.New("bounded attempts exhausted")

	// ErrLocalStore is a failure of the local database outside the apply phase.
	ErrLocalStore = errors.New("local store error")
)

// Server-side errors.
var (
	ErrClientMismatch = errors.New("client id does not match peer certificate")
	ErrInvalidQuery   = errors.New("invalid query")
)
