package zkproof

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Filenames for persisted circuit parameters inside the key directory.
const (
	circuitFile      = "mood.r1cs"
	provingKeyFile   = "proving.key"
	verifyingKeyFile = "verification.key"
)

// CompiledCircuit bundles the constraint system with the Groth16 key pair.
// The verifying key is the fixed public parameter set the service checks
// every submission against.
type CompiledCircuit struct {
	ConstraintSystem constraint.ConstraintSystem
	ProvingKey       groth16.ProvingKey
	VerifyingKey     groth16.VerifyingKey
}

// Compile compiles the mood circuit and runs the Groth16 setup. The setup is
// local and unceremonied, which is fine for this proof system's demo-grade
// guarantees.
func Compile() (*CompiledCircuit, error) {
	var circuit MoodCircuit

	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, fmt.Errorf("compile circuit: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup keys: %w", err)
	}

	return &CompiledCircuit{
		ConstraintSystem: cs,
		ProvingKey:       pk,
		VerifyingKey:     vk,
	}, nil
}

// Save writes the constraint system and both keys into dir, creating it if
// needed. Existing files are overwritten.
func (c *CompiledCircuit) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}

	if err := writeFile(filepath.Join(dir, circuitFile), c.ConstraintSystem); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, provingKeyFile), c.ProvingKey); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, verifyingKeyFile), c.VerifyingKey)
}

// Load reads previously saved circuit parameters from dir.
func Load(dir string) (*CompiledCircuit, error) {
	cs := groth16.NewCS(ecc.BN254)
	if err := readFile(filepath.Join(dir, circuitFile), cs); err != nil {
		return nil, err
	}

	pk := groth16.NewProvingKey(ecc.BN254)
	if err := readFile(filepath.Join(dir, provingKeyFile), pk); err != nil {
		return nil, err
	}

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if err := readFile(filepath.Join(dir, verifyingKeyFile), vk); err != nil {
		return nil, err
	}

	return &CompiledCircuit{
		ConstraintSystem: cs,
		ProvingKey:       pk,
		VerifyingKey:     vk,
	}, nil
}

// Exists reports whether dir already holds a saved parameter set.
func Exists(dir string) bool {
	for _, name := range []string{circuitFile, provingKeyFile, verifyingKeyFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

func writeFile(path string, src io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if _, err := src.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func readFile(path string, dst io.ReaderFrom) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if _, err := dst.ReadFrom(f); err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return nil
}
