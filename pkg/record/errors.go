package record

import "errors"

var (
	// ErrNotObject is returned by Decode when the input is not a JSON object.
	ErrNotObject = errors.New("record must be a JSON object")

	// ErrTrailingData is returned by Decode when more than one value is present.
	ErrTrailingData = errors.New("unexpected data after record")
)
