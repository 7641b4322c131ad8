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


// Package structured recovers typed values from free-form LLM output.
//
// Generative backends routinely wrap their JSON in markdown fences,
// prepend prose, or emit slightly malformed objects. This package
// centralizes the recovery pipeline so every provider decodes model
// output the same way: strip fences, locate the first balanced object,
// unmarshal, and retry once after repair.
package structured

import (
	"errors"
	"strings"
)

// ErrNoObject is returned when no balanced JSON object can be located
// in the text.
var ErrNoObject = errors.New("no JSON object found in text")

// StripFences removes markdown code fences wrapping model output.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// FirstObject returns the first balanced {...} object in s, scanning
// past any prose the model emitted around it. String literals and
// escape sequences are respected so braces inside values do not
// terminate the scan early.
func FirstObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoObject
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}
	return "", ErrNoObject
}
