// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package lifecycle drives content units through the processing state
// machine: submit, analyze, complete or fail, retry.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/catharsis/core"
	"github.com/poiesic/catharsis/storage"
)

// Analyzer produces an emotional analysis for validated text. Satisfied
// by the analysis engine.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*core.EmotionAnalysis, string, error)
}

// Processor owns the unit lifecycle. All status mutations go through
// compare-and-set repository updates, so two concurrent processors
// cannot both claim the same unit.
type Processor struct {
	repository storage.ContentRepository
	engine     Analyzer
	logger     *slog.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithProcessorLogger sets a custom logger. Default is slog.Default().
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessor creates a lifecycle processor.
func NewProcessor(repository storage.ContentRepository, engine Analyzer, opts ...ProcessorOption) (*Processor, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}
	p := &Processor{
		repository: repository,
		engine:     engine,
		logger:     slog.Default().With("component", "lifecycle-processor"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Submit validates and stores a new content unit in the pending state.
// Resubmitting identical text from the same owner returns the existing
// unit unchanged, whatever state it has reached.
func (p *Processor) Submit(ctx context.Context, owner core.ID, content string, kind core.InputKind) (*core.ContentUnit, error) {
	if err := core.ValidateContent(content); err != nil {
		return nil, err
	}
	if kind == "" {
		kind = core.InputText
	}

	unit := &core.ContentUnit{
		OwnerId: owner,
		Content: content,
		Kind:    kind,
		Status:  core.StatusPending,
	}

	stored, err := p.repository.GetOrCreateContentUnit(ctx, unit)
	if err != nil {
		return nil, err
	}

	p.logger.Info("content unit submitted",
		"id", stored.Id,
		"owner", owner,
		"status", stored.Status)
	return stored, nil
}

// Process claims a unit, runs analysis, and records the outcome.
// Completed units are rejected with ErrAlreadyCompleted and their
// stored analysis stays untouched. Units already being processed are
// rejected with ErrAlreadyProcessing. Failed units re-enter processing.
func (p *Processor) Process(ctx context.Context, id core.ID) (*core.ContentUnit, error) {
	unit, err := p.repository.GetContentUnit(ctx, id)
	if err != nil {
		return nil, err
	}

	switch unit.Status {
	case core.StatusCompleted:
		return nil, fmt.Errorf("unit %d: %w", id, core.ErrAlreadyCompleted)
	case core.StatusProcessing:
		return nil, fmt.Errorf("unit %d: %w", id, core.ErrAlreadyProcessing)
	}
	if err := core.CheckTransition(unit.Status, core.StatusProcessing); err != nil {
		return nil, fmt.Errorf("unit %d: %w", id, err)
	}

	// Claim the unit. A concurrent claim loses the compare-and-set and
	// surfaces as a conflict rather than a double analysis.
	if err := p.repository.UpdateStatus(ctx, id, unit.Status, core.StatusProcessing, nil, ""); err != nil {
		return nil, err
	}

	analysis, provider, analyzeErr := p.engine.Analyze(ctx, unit.Content)
	if analyzeErr != nil {
		p.logger.Error("analysis failed",
			"id", id,
			"error", analyzeErr)
		if failErr := p.repository.UpdateStatus(ctx, id, core.StatusProcessing, core.StatusFailed, nil, analyzeErr.Error()); failErr != nil {
			return nil, fmt.Errorf("recording failure for unit %d: %w", id, failErr)
		}
		return nil, analyzeErr
	}

	if err := p.repository.UpdateStatus(ctx, id, core.StatusProcessing, core.StatusCompleted, analysis, ""); err != nil {
		return nil, err
	}

	p.logger.Info("content unit processed",
		"id", id,
		"provider", provider,
		"emotion", analysis.Emotion)

	return p.repository.GetContentUnit(ctx, id)
}
