// Package logic implements the encrypt, decrypt and generate workflows.
//
// Each run is a single pass: read the input, resolve the key, transform, optionally
// render source artifacts, then write everything out. The first failure ends the run;
// nothing is retried and no fallback cipher mode is attempted.
package logic

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/idelchi/gocred/internal/config"
	"github.com/idelchi/gocred/internal/encryption"
	"github.com/idelchi/gocred/internal/fileutil"
	"github.com/idelchi/gocred/internal/keys"
	"github.com/idelchi/gocred/pkg/hexcodec"
)

// ErrOutputWriteFailed is returned when the output file or an artifact cannot be written.
var ErrOutputWriteFailed = errors.New("writing output")

// Runner executes workflows against an injected filesystem and random source.
type Runner struct {
	// fs holds the input, output, key and artifact files
	fs afero.Fs

	// random feeds key generation and CBC initialization vectors; nil selects crypto/rand
	random io.Reader

	// dir is where generated source artifacts are written
	dir string

	log logrus.FieldLogger
}

// NewRunner creates a Runner. Artifacts are placed in dir.
func NewRunner(fs afero.Fs, random io.Reader, dir string, log logrus.FieldLogger) *Runner {
	return &Runner{fs: fs, random: random, dir: dir, log: log}
}

// Encrypt encrypts cfg.Input into cfg.Output, generating and persisting the key if
// the key file does not exist yet, and emits the requested source artifacts.
func (r *Runner) Encrypt(cfg *config.Config) error {
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	if err := cfg.CheckConflicts(r.dir); err != nil {
		return err
	}

	plan, err := newEmitPlan(r.dir, cfg)
	if err != nil {
		return err
	}

	scheme, err := encryption.New(mode, r.random)
	if err != nil {
		return err
	}

	plaintext, err := afero.ReadFile(r.fs, cfg.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	key, provenance, err := r.provider().ResolveForEncryption(cfg.Key.Source())
	if err != nil {
		return fmt.Errorf("resolving key: %w", err)
	}

	if provenance == keys.Generated {
		r.log.WithField("path", cfg.Key.File).Info("generated new key")
	} else {
		r.log.WithField("source", provenance).Debug("using existing key")
	}

	envelope, err := scheme.Encrypt(plaintext, key)
	if err != nil {
		return fmt.Errorf("encrypting: %w", err)
	}

	artifacts, err := plan.render(key, envelope)
	if err != nil {
		return fmt.Errorf("emitting source: %w", err)
	}

	size, err := r.write(cfg.Output, envelope)
	if err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"in":     cfg.Input,
		"out":    cfg.Output,
		"cipher": mode,
		"size":   humanize.IBytes(uint64(size)),
	}).Info("encrypted")

	for _, artifact := range artifacts {
		size, err := r.write(artifact.Path, artifact.Content)
		if err != nil {
			return err
		}

		r.log.WithFields(logrus.Fields{
			"path":     artifact.Path,
			"language": artifact.Dialect,
			"size":     humanize.IBytes(uint64(size)),
		}).Info("generated source")
	}

	return nil
}

// Decrypt decrypts cfg.Input into cfg.Output. The key must already exist.
func (r *Runner) Decrypt(cfg *config.Config) error {
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	if err := cfg.CheckConflicts(r.dir); err != nil {
		return err
	}

	scheme, err := encryption.New(mode, r.random)
	if err != nil {
		return err
	}

	envelope, err := afero.ReadFile(r.fs, cfg.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	key, err := r.provider().ResolveForDecryption(cfg.Key.Source())
	if err != nil {
		return fmt.Errorf("resolving key: %w", err)
	}

	plaintext, err := scheme.Decrypt(envelope, key)
	if err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}

	size, err := r.write(cfg.Output, plaintext)
	if err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"in":     cfg.Input,
		"out":    cfg.Output,
		"cipher": mode,
		"size":   humanize.IBytes(uint64(size)),
	}).Info("decrypted")

	return nil
}

// Generate creates a standalone key. With a path the raw key is written there;
// without one the key is printed to out as hex.
func (r *Runner) Generate(path string, out io.Writer) error {
	key, err := r.provider().Generate(path)
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	if path == "" {
		if _, err := fmt.Fprintln(out, hexcodec.Encode(key, "")); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputWriteFailed, err)
		}

		return nil
	}

	r.log.WithField("path", path).Info("generated new key")

	return nil
}

func (r *Runner) provider() *keys.Provider {
	return keys.NewProvider(r.fs, r.random, encryption.KeySize)
}

// write stores data at path and returns the size of the file on disk.
func (r *Runner) write(path string, data []byte) (int64, error) {
	if err := fileutil.WriteFile(r.fs, path, data); err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrOutputWriteFailed, path, err)
	}

	size, err := fileutil.Size(r.fs, path)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrOutputWriteFailed, path, err)
	}

	return size, nil
}
