package app

import (
	"fmt"
	"log/slog"

	"github.com/moodachu/moodachu/pkg/zkproof"
)

// InitProofKeys loads the groth16 parameters from cfg.KeyDir, generating and
// persisting a fresh set when bootstrap is enabled and none exist yet.
//
// Regenerating parameters invalidates every proof produced against the old
// set, so production deployments should provision the key directory and run
// with KEY_BOOTSTRAP=false.
func InitProofKeys(cfg Config, logger *slog.Logger) (*zkproof.CompiledCircuit, error) {
	if zkproof.Exists(cfg.KeyDir) {
		circuit, err := zkproof.Load(cfg.KeyDir)
		if err != nil {
			return nil, fmt.Errorf("load proof parameters: %w", err)
		}
		logger.Info("proof parameters loaded", "key_dir", cfg.KeyDir)
		return circuit, nil
	}

	if !cfg.KeyBootstrap {
		return nil, fmt.Errorf("no proof parameters in %s and bootstrap is disabled", cfg.KeyDir)
	}

	logger.Info("no proof parameters found, running setup", "key_dir", cfg.KeyDir)
	circuit, err := zkproof.Compile()
	if err != nil {
		return nil, fmt.Errorf("generate proof parameters: %w", err)
	}
	if err := circuit.Save(cfg.KeyDir); err != nil {
		return nil, fmt.Errorf("persist proof parameters: %w", err)
	}

	logger.Info("proof parameters generated and persisted", "key_dir", cfg.KeyDir)
	return circuit, nil
}
