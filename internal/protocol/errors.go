package protocol

import (
	"errors"
	"fmt"
)

// ErrProtocol is the parent of every format or version failure.
var ErrProtocol = errors.New("protocol error")

var (
	// ErrVersionMismatch is returned when the envelope version differs from [Version].
	ErrVersionMismatch = fmt.Errorf("%w: version mismatch", ErrProtocol)

	// ErrUnexpectedMessage is returned when the frame carries another type tag
	// than the one the reader expects.
	ErrUnexpectedMessage = fmt.Errorf("%w: unexpected message", ErrProtocol)

	// ErrFrameTooLarge is returned for frames above [MaxFrameSize].
	ErrFrameTooLarge = fmt.Errorf("%w: frame too large", ErrProtocol)

	// ErrMalformedFrame is returned when the envelope or body cannot be decoded.
	ErrMalformedFrame = fmt.Errorf("%w: malformed frame", ErrProtocol)
)
