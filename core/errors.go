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


package core

import "errors"

// Domain validation errors
var (
	// ErrValidation is the umbrella for malformed caller input.
	// Inputs failing validation are rejected before any provider call.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent indicates the content text is empty or whitespace-only.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrContentTooLong indicates the content exceeds MaxContentLength.
	ErrContentTooLong = errors.New("content exceeds maximum length")

	// ErrInvalidContentUnit indicates a ContentUnit failed validation.
	ErrInvalidContentUnit = errors.New("invalid content unit")

	// ErrUnsupportedForm indicates an unknown transform form.
	ErrUnsupportedForm = errors.New("unsupported transform form")

	// ErrUnknownPersona indicates a persona outside the allow-list.
	ErrUnknownPersona = errors.New("unknown persona")

	// ErrInvalidStatus indicates a Status value outside the defined set.
	ErrInvalidStatus = errors.New("invalid processing status")

	// ErrInvalidTransition indicates an illegal lifecycle transition.
	ErrInvalidTransition = errors.New("illegal status transition")

	// ErrAlreadyCompleted indicates a re-analysis request for a completed
	// unit. Surfaced as a conflict; the stored analysis is untouched.
	ErrAlreadyCompleted = errors.New("content unit already completed")

	// ErrAlreadyProcessing indicates a concurrent analysis is in flight.
	ErrAlreadyProcessing = errors.New("content unit already processing")
)
