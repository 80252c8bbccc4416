package zkproof

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
)

// Prover generates mood proofs. In production this runs client-side; the
// server keeps one around for tests and seeding.
type Prover struct {
	compiled *CompiledCircuit
}

// ProofResult is a generated proof together with the public mood it binds.
type ProofResult struct {
	// Proof is the serialized Groth16 proof.
	Proof []byte

	// Mood is the public input the proof commits to, derived from the two
	// private emotion tags.
	Mood uint8
}

func NewProver(compiled *CompiledCircuit) *Prover {
	return &Prover{compiled: compiled}
}

// GenerateProof proves that the mood derived from the two private emotion
// tags is ProofResult.Mood, without revealing the tags.
func (p *Prover) GenerateProof(emotionA, emotionB uint8) (ProofResult, error) {
	if emotionA >= EmotionCount || emotionB >= EmotionCount {
		return ProofResult{}, ErrInvalidEmotion
	}

	mood := DeriveMood(emotionA, emotionB)

	assignment := MoodCircuit{
		EmotionA: emotionA,
		EmotionB: emotionB,
		Mood:     mood,
	}

	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	if err != nil {
		return ProofResult{}, fmt.Errorf("build witness: %w", err)
	}

	proof, err := groth16.Prove(p.compiled.ConstraintSystem, p.compiled.ProvingKey, witness)
	if err != nil {
		return ProofResult{}, fmt.Errorf("generate proof: %w", err)
	}

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return ProofResult{}, fmt.Errorf("serialize proof: %w", err)
	}

	return ProofResult{Proof: buf.Bytes(), Mood: mood}, nil
}
