package zkproof

import "errors"

var (
	// ErrInvalidProofShape reports proof bytes that do not deserialize into a
	// Groth16 proof at all. This is structural and fatal; it is distinct from
	// a well-formed proof that simply fails the pairing check.
	ErrInvalidProofShape = errors.New("zkproof: malformed proof")

	// ErrInvalidEmotion reports an emotion tag outside the supported range.
	ErrInvalidEmotion = errors.New("zkproof: emotion tag out of range")

	// ErrInvalidMood reports a mood value outside the public enumeration.
	ErrInvalidMood = errors.New("zkproof: mood value out of range")
)
