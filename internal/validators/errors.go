package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLocalID     = errors.New("invalid local id")
	ErrEmptyCreatedAt     = errors.New("created at is required")
	ErrEmptyMissionNumber = errors.New("mission number is required")
	ErrEmptyClientID      = errors.New("client id is required")
	ErrInvalidWatermark   = errors.New("invalid watermark")
	ErrEmptyQueryKind     = errors.New("query kind is required")
)
