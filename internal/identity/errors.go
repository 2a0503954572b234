package identity

import "errors"

// ErrCredentialUnavailable is returned when a certificate, key or trust
// anchor cannot be read or parsed.
var ErrCredentialUnavailable = errors.New("credential unavailable")
