package abi

import "fmt"

// EncodeError is a sentinel failure produced by Encode. It carries no
// payload; each value maps to exactly one condition named below.
type EncodeError int

const (
	_ EncodeError = iota
	// ErrTooManyParams is returned when an ABI has more than 31 params.
	ErrTooManyParams
	// ErrStringTooLong is returned when a name, a String32 value, or
	// the derived schema string exceeds word.MaxShortStringLen bytes.
	ErrStringTooLong
	// ErrInvalidYear is returned by a Date param outside [0, 9999].
	ErrInvalidYear
	// ErrInvalidMonth is returned by a Date param outside [1, 12].
	ErrInvalidMonth
	// ErrInvalidDay is returned by a Date param outside [1, 31].
	ErrInvalidDay
)

func (e EncodeError) Error() string {
	switch e {
	case ErrTooManyParams:
		return "abi: too many parameters, max is 31"
	case ErrStringTooLong:
		return "abi: string should not exceed 31 bytes"
	case ErrInvalidYear:
		return "abi: invalid year"
	case ErrInvalidMonth:
		return "abi: invalid month"
	case ErrInvalidDay:
		return "abi: invalid day"
	default:
		return "abi: unknown encoding error"
	}
}

// DecodeError is a sentinel failure produced by Decode. It carries no
// payload; each value maps to exactly one condition named below.
type DecodeError int

const (
	_ DecodeError = iota
	// ErrNoInput is returned for an empty word slice.
	ErrNoInput
	// ErrNoSchema is returned when word 0 is all zero.
	ErrNoSchema
	// ErrInvalidVersion is returned when the schema's first character
	// is not '1'.
	ErrInvalidVersion
	// ErrOffsetOutOfRange is returned when a pointer or length word
	// read from the tail would address past the end of the input.
	ErrOffsetOutOfRange
)

func (e DecodeError) Error() string {
	switch e {
	case ErrNoInput:
		return "abi: no input"
	case ErrNoSchema:
		return "abi: schema is missing"
	case ErrInvalidVersion:
		return "abi: schema version is invalid"
	case ErrOffsetOutOfRange:
		return "abi: offset out of range"
	default:
		return "abi: unknown decoding error"
	}
}

// InvalidSchemaError is returned by DecodeWithSchema when the supplied
// schema string does not fit in a single short-string word.
type InvalidSchemaError struct {
	Msg string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("abi: invalid schema: %s", e.Msg)
}

// InvalidSchemaCharacterError is returned when the schema contains a
// character outside {a, b, B, i, S, u}.
type InvalidSchemaCharacterError struct {
	Char byte
}

func (e *InvalidSchemaCharacterError) Error() string {
	return fmt.Sprintf("abi: invalid schema character %q", e.Char)
}

// InvalidUTF8Error is returned when the schema word, a name word, an
// 'S' payload, or a non-strict 'b' attempt produced invalid UTF-8. The
// last is recovered locally into Bytes32 and therefore never surfaces
// this error; it is only observable for the schema word, names and 'S'
// payloads.
type InvalidUTF8Error struct {
	Detail string
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("abi: invalid UTF-8 string: %s", e.Detail)
}
