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


// Package mock provides test doubles for ai.Provider.
package mock

import (
	"context"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/core"
)

// MockProvider is a test double for ai.Provider.
// It allows custom behavior injection via function fields.
type MockProvider struct {
	// NameValue is returned by Name. Defaults to "mock".
	NameValue string

	// CapabilitiesValue is returned by Capabilities. Defaults to all.
	CapabilitiesValue ai.Capability

	// AvailableFunc is called by Available if set. If nil, the provider
	// reports available.
	AvailableFunc func() bool

	// AnalyzeFunc is called by Analyze if set.
	// If nil, returns a fixed neutral analysis.
	AnalyzeFunc func(ctx context.Context, req ai.AnalyzeRequest) (*core.EmotionAnalysis, error)

	// TransformFunc is called by Transform if set.
	// If nil, echoes the input text as the payload content.
	TransformFunc func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error)

	// RespondFunc is called by Respond if set.
	// If nil, returns a fixed reply.
	RespondFunc func(ctx context.Context, req ai.RespondRequest) (string, error)

	analyzeCalls   int
	transformCalls int
	respondCalls   int
}

// NewMockProvider creates a mock provider with default deterministic behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		NameValue:         "mock",
		CapabilitiesValue: ai.CapAnalyze | ai.CapTransform | ai.CapRespond,
	}
}

func (m *MockProvider) Name() string {
	return m.NameValue
}

func (m *MockProvider) Capabilities() ai.Capability {
	return m.CapabilitiesValue
}

func (m *MockProvider) Available() bool {
	if m.AvailableFunc != nil {
		return m.AvailableFunc()
	}
	return true
}

func (m *MockProvider) Analyze(ctx context.Context, req ai.AnalyzeRequest) (*core.EmotionAnalysis, error) {
	m.analyzeCalls++

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, req)
	}

	analysis := &core.EmotionAnalysis{
		Emotion:    core.EmotionNeutral,
		Confidence: 0.5,
		Intensity:  0.5,
		Summary:    req.Text,
	}
	analysis.Normalize()
	return analysis, nil
}

func (m *MockProvider) Transform(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
	m.transformCalls++

	if m.TransformFunc != nil {
		return m.TransformFunc(ctx, req)
	}
	return &core.TransformationPayload{Form: req.Form, Content: req.Text}, nil
}

func (m *MockProvider) Respond(ctx context.Context, req ai.RespondRequest) (string, error) {
	m.respondCalls++

	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, req)
	}
	return "mock reply", nil
}

// AnalyzeCallCount returns the number of times Analyze was called.
func (m *MockProvider) AnalyzeCallCount() int {
	return m.analyzeCalls
}

// TransformCallCount returns the number of times Transform was called.
func (m *MockProvider) TransformCallCount() int {
	return m.transformCalls
}

// RespondCallCount returns the number of times Respond was called.
func (m *MockProvider) RespondCallCount() int {
	return m.respondCalls
}

// CallCount returns the number of times any operation was called.
func (m *MockProvider) CallCount() int {
	return m.analyzeCalls + m.transformCalls + m.respondCalls
}

// Reset clears call counts and injected behavior.
func (m *MockProvider) Reset() {
	m.analyzeCalls = 0
	m.transformCalls = 0
	m.respondCalls = 0
	m.AvailableFunc = nil
	m.AnalyzeFunc = nil
	m.TransformFunc = nil
	m.RespondFunc = nil
}
