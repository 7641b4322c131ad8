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


package structured

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/poiesic/catharsis/core"
)

// ErrSchemaIncomplete is returned when the decoded object is valid JSON
// but lacks fields the analysis schema requires.
var ErrSchemaIncomplete = errors.New("analysis object missing required fields")

// analysisWire mirrors the JSON schema the analysis prompt asks for.
// Pointer fields distinguish "absent" from zero values so schema
// completeness can be checked after unmarshal.
type analysisWire struct {
	Emotion        *string  `json:"emotion"`
	Confidence     *float64 `json:"emotion_confidence"`
	SentimentScore *float64 `json:"sentiment_score"`
	Intensity      *float64 `json:"intensity"`
	Keywords       []string `json:"keywords"`
	Summary        *string  `json:"summary"`
	Categories     []string `json:"categories"`
}

func (w *analysisWire) complete() bool {
	return w.Emotion != nil &&
		w.Confidence != nil &&
		w.SentimentScore != nil &&
		w.Keywords != nil &&
		w.Summary != nil
}

// DecodeAnalysis recovers a normalized EmotionAnalysis from raw model
// output. Fences and surrounding prose are stripped, the first balanced
// object is decoded, and on a parse failure one repair pass is retried.
// An unknown emotion label is coerced to neutral by normalization
// rather than rejected.
func DecodeAnalysis(raw string) (*core.EmotionAnalysis, error) {
	obj, err := FirstObject(StripFences(raw))
	if err != nil {
		return nil, err
	}

	var wire analysisWire
	if err := json.Unmarshal([]byte(obj), &wire); err != nil {
		repaired := RepairJSON(obj)
		if err2 := json.Unmarshal([]byte(repaired), &wire); err2 != nil {
			return nil, fmt.Errorf("parsing analysis object: %w", err)
		}
	}

	if !wire.complete() {
		return nil, ErrSchemaIncomplete
	}

	analysis := &core.EmotionAnalysis{
		Emotion:        core.Emotion(*wire.Emotion),
		Confidence:     *wire.Confidence,
		SentimentScore: *wire.SentimentScore,
		Keywords:       wire.Keywords,
		Summary:        *wire.Summary,
		Categories:     wire.Categories,
	}
	if wire.Intensity != nil {
		analysis.Intensity = *wire.Intensity
	} else {
		analysis.Intensity = 0.5
	}
	analysis.Normalize()
	return analysis, nil
}
