package zkproof

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
)

// Verifier checks mood proofs against the fixed verifying key. It is pure
// and safe for concurrent use; verification never mutates anything.
type Verifier struct {
	vk groth16.VerifyingKey
}

func NewVerifier(compiled *CompiledCircuit) *Verifier {
	return &Verifier{vk: compiled.VerifyingKey}
}

// Verify checks that proofBytes proves the single public input mood.
//
// Returns (false, ErrInvalidProofShape) when the bytes do not deserialize
// into a proof at all, and (false, nil) when a structurally valid proof
// fails the pairing check. Deliberately no detail beyond pass/fail on the
// cryptographic path.
func (v *Verifier) Verify(mood uint8, proofBytes []byte) (bool, error) {
	if mood >= MoodCount {
		return false, ErrInvalidMood
	}
	if len(proofBytes) == 0 {
		return false, ErrInvalidProofShape
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidProofShape, err)
	}

	publicWitness, err := buildPublicWitness(mood)
	if err != nil {
		return false, fmt.Errorf("build public witness: %w", err)
	}

	if err := groth16.Verify(proof, v.vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}

// buildPublicWitness constructs a witness holding only the public mood input.
func buildPublicWitness(mood uint8) (witness.Witness, error) {
	assignment := MoodCircuit{Mood: mood}
	return frontend.NewWitness(&assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
}
