// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvfactor/factor"
	"gopkg.in/yaml.v3"
)

// Loader reads model documents. Factor options (e.g. factor.WithMaxCardinality)
// are applied to every declared factor.
type Loader struct {
	logger *slog.Logger
	opts   []factor.Option
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger, opts ...factor.Option) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{logger: logger, opts: opts}
}

// Load decodes a single YAML document from r and builds a Model.
// Unknown fields are rejected.
func (l *Loader) Load(r io.Reader) (*Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidModel)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	m, err := Build(doc, l.opts...)
	if err != nil {
		l.logger.Debug("Model rejected", slog.String("error", err.Error()))
		return nil, err
	}
	l.logger.Debug("Model loaded",
		slog.Int("variables", len(m.varOrder)),
		slog.Int("factors", len(m.factorOrder)))

	return m, nil
}

// LoadFile opens path and loads it.
func (l *Loader) LoadFile(path string) (*Model, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open: %w", err)
	}
	defer fh.Close()

	l.logger.Debug("Loading model", slog.String("path", path))
	m, err := l.Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
