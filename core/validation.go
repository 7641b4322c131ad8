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

import (
	"fmt"
	"strings"
)

// MaxContentLength caps a single content unit's text.
const MaxContentLength = 5000

// ValidateContent checks caller-submitted text before any provider is invoked.
//
// Validation rules:
//   - text must contain at least one non-whitespace character
//   - text must not exceed MaxContentLength characters
func ValidateContent(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyContent)
	}
	if len(text) > MaxContentLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrContentTooLong)
	}
	return nil
}

// ValidateContentUnit validates a ContentUnit according to domain rules.
//
// Validation rules:
//   - Content must pass ValidateContent
//   - Status must be a defined value
//
// NOT validated (populated by the pipeline):
//   - Analysis (nil until analyzed)
//   - ProcessedAt (zero until completed)
func ValidateContentUnit(unit *ContentUnit) error {
	if unit == nil {
		return fmt.Errorf("%w: unit is nil", ErrInvalidContentUnit)
	}
	if err := ValidateContent(unit.Content); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContentUnit, err)
	}
	if !ValidStatus(unit.Status) {
		return fmt.Errorf("%w: %w", ErrInvalidContentUnit, ErrInvalidStatus)
	}
	return nil
}

// ParseEmotion matches a label case-insensitively against the closed
// 8-set. Unrecognized labels coerce to neutral; parsing never fails.
func ParseEmotion(label string) Emotion {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, e := range Emotions {
		if string(e) == label {
			return e
		}
	}
	return EmotionNeutral
}

// ParseForm matches a form name case-insensitively against the supported set.
func ParseForm(name string) (TransformForm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range TransformForms {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnsupportedForm, name)
}

// ParsePersona matches a persona tag case-insensitively against the
// allow-list. Unknown personas are rejected, never coerced.
func ParsePersona(tag string) (Persona, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, p := range Personas {
		if string(p) == tag {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnknownPersona, tag)
}

// ValidPersona reports whether a persona is on the allow-list.
func ValidPersona(p Persona) bool {
	_, err := ParsePersona(string(p))
	return err == nil
}

// ValidStatus reports whether a status is a defined value.
func ValidStatus(s Status) bool {
	return s >= StatusCreated && s <= StatusFailed
}
