package logic

import (
	"github.com/idelchi/gocred/internal/codegen"
	"github.com/idelchi/gocred/internal/config"
)

// emitPlan holds the validated names and dialects for source generation.
// It is built before any file is touched so a bad name aborts the run early.
type emitPlan struct {
	dir      string
	dialects []codegen.Dialect

	// keyOnly names the key constant, when requested
	keyOnly *codegen.Identifier

	// sealed names the key-and-ciphertext unit, when requested
	sealed *codegen.Identifier
}

func newEmitPlan(dir string, cfg *config.Config) (*emitPlan, error) {
	plan := &emitPlan{dir: dir}

	if cfg.Identifier == "" && cfg.Source == "" {
		return plan, nil
	}

	names := cfg.Languages
	if len(names) == 0 {
		names = codegen.DefaultDialectNames()
	}

	dialects, err := codegen.LookupDialects(names)
	if err != nil {
		return nil, err
	}

	plan.dialects = dialects

	if cfg.Identifier != "" {
		id, err := codegen.ParseIdentifier(cfg.Identifier)
		if err != nil {
			return nil, err
		}

		plan.keyOnly = &id
	}

	if cfg.Source != "" {
		id, err := codegen.ParseIdentifier(cfg.Source)
		if err != nil {
			return nil, err
		}

		plan.sealed = &id
	}

	return plan, nil
}

// render produces every requested artifact. Nothing is written here.
func (p *emitPlan) render(key, envelope []byte) ([]codegen.Artifact, error) {
	var artifacts []codegen.Artifact

	if p.keyOnly != nil {
		rendered, err := codegen.Emit(p.dir, p.dialects, *p.keyOnly, codegen.Payload{
			Kind: codegen.KeyOnly,
			Key:  key,
		})
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, rendered...)
	}

	if p.sealed != nil {
		rendered, err := codegen.Emit(p.dir, p.dialects, *p.sealed, codegen.Payload{
			Kind:       codegen.KeyAndCiphertext,
			Key:        key,
			Ciphertext: envelope,
		})
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, rendered...)
	}

	return artifacts, nil
}
