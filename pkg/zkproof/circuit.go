// Package zkproof implements the mood circuit: a Groth16 proof that a pair's
// claimed public mood is the one derived from two private emotion tags,
// without revealing the tags themselves.
//
// The proof system is demo-grade. Keys come from a local setup rather than a
// trusted ceremony, so this protects feelings from a curious partner, not
// secrets from an adversary.
package zkproof

import (
	"github.com/consensys/gnark/frontend"
)

// Private emotion tags. These feed the circuit and must stay in sync with
// whatever classifier produces them.
const (
	EmotionHappy uint8 = iota
	EmotionStressed
	EmotionTired
	EmotionNeedSpace
	EmotionNeedAffection
	EmotionNeglected
	EmotionNeutral

	EmotionCount = 7
)

// Public mood states. The single public input of the circuit.
const (
	MoodNeutral uint8 = iota
	MoodPositive
	MoodLowEnergy
	MoodConflict
	MoodGrowth

	MoodCount = 5
)

// MoodCircuit proves that Mood == derive(EmotionA, EmotionB) for two private
// emotion tags. Mood is the only public input; the verifier learns nothing
// about the individual emotions beyond what the mood itself implies.
type MoodCircuit struct {
	// Private witness (each partner's emotion tag)
	EmotionA frontend.Variable `gnark:",secret"`
	EmotionB frontend.Variable `gnark:",secret"`

	// Public input: the claimed shared mood
	Mood frontend.Variable `gnark:",public"`
}

// Define implements frontend.Circuit. It range-checks both emotions and
// constrains Mood to the derived value, mirroring DeriveMood's precedence:
// conflict, then low energy, then growth, then positive, then neutral.
func (c *MoodCircuit) Define(api frontend.API) error {
	api.AssertIsLessOrEqual(c.EmotionA, EmotionCount-1)
	api.AssertIsLessOrEqual(c.EmotionB, EmotionCount-1)

	isA := func(tag uint8) frontend.Variable { return api.IsZero(api.Sub(c.EmotionA, tag)) }
	isB := func(tag uint8) frontend.Variable { return api.IsZero(api.Sub(c.EmotionB, tag)) }
	both := func(tag uint8) frontend.Variable { return api.Mul(isA(tag), isB(tag)) }

	// Tired and need-space are mutually exclusive values, so the sums below
	// stay boolean.
	lowA := api.Add(isA(EmotionTired), isA(EmotionNeedSpace))
	lowB := api.Add(isB(EmotionTired), isB(EmotionNeedSpace))
	lowEither := api.Sub(api.Add(lowA, lowB), api.Mul(lowA, lowB))

	derived := api.Select(both(EmotionStressed), MoodConflict,
		api.Select(lowEither, MoodLowEnergy,
			api.Select(both(EmotionNeedAffection), MoodGrowth,
				api.Select(both(EmotionHappy), MoodPositive, MoodNeutral))))

	api.AssertIsEqual(c.Mood, derived)
	return nil
}

// DeriveMood is the plain-Go reference of the circuit's mood rule. The prover
// uses it to pick the public input, and it documents the precedence order:
//
//	both stressed            -> Conflict
//	either tired/need-space  -> LowEnergy
//	both need affection      -> Growth
//	both happy               -> Positive
//	otherwise                -> Neutral
func DeriveMood(emotionA, emotionB uint8) uint8 {
	low := func(e uint8) bool { return e == EmotionTired || e == EmotionNeedSpace }

	switch {
	case emotionA == EmotionStressed && emotionB == EmotionStressed:
		return MoodConflict
	case low(emotionA) || low(emotionB):
		return MoodLowEnergy
	case emotionA == EmotionNeedAffection && emotionB == EmotionNeedAffection:
		return MoodGrowth
	case emotionA == EmotionHappy && emotionB == EmotionHappy:
		return MoodPositive
	default:
		return MoodNeutral
	}
}
