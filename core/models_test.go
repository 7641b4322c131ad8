package core

import (
	"strings"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "I had a rough day at work",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestEmotionAnalysis_Normalize(t *testing.T) {
	tests := []struct {
		name          string
		analysis      EmotionAnalysis
		wantEmotion   Emotion
		wantConf      float64
		wantSentiment float64
		wantIntensity float64
	}{
		{
			name: "in-range values untouched",
			analysis: EmotionAnalysis{
				Emotion:        EmotionHappy,
				Confidence:     0.8,
				SentimentScore: 0.5,
				Intensity:      0.6,
			},
			wantEmotion:   EmotionHappy,
			wantConf:      0.8,
			wantSentiment: 0.5,
			wantIntensity: 0.6,
		},
		{
			name: "values clamped to bounds",
			analysis: EmotionAnalysis{
				Emotion:        EmotionSad,
				Confidence:     2.5,
				SentimentScore: -7,
				Intensity:      9,
			},
			wantEmotion:   EmotionSad,
			wantConf:      1.0,
			wantSentiment: -1.0,
			wantIntensity: 1.0,
		},
		{
			name: "unknown emotion coerced to neutral",
			analysis: EmotionAnalysis{
				Emotion:        Emotion("melancholic"),
				Confidence:     0.9,
				SentimentScore: -0.3,
				Intensity:      0.4,
			},
			wantEmotion:   EmotionNeutral,
			wantConf:      0.9,
			wantSentiment: -0.3,
			wantIntensity: 0.4,
		},
		{
			name: "mixed-case emotion matches",
			analysis: EmotionAnalysis{
				Emotion: Emotion("ANGRY"),
			},
			wantEmotion: EmotionAngry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.analysis.Normalize()

			if tt.analysis.Emotion != tt.wantEmotion {
				t.Errorf("Normalize() emotion = %v, want %v", tt.analysis.Emotion, tt.wantEmotion)
			}
			if tt.analysis.Confidence != tt.wantConf {
				t.Errorf("Normalize() confidence = %v, want %v", tt.analysis.Confidence, tt.wantConf)
			}
			if tt.analysis.SentimentScore != tt.wantSentiment {
				t.Errorf("Normalize() sentiment = %v, want %v", tt.analysis.SentimentScore, tt.wantSentiment)
			}
			if tt.analysis.Intensity != tt.wantIntensity {
				t.Errorf("Normalize() intensity = %v, want %v", tt.analysis.Intensity, tt.wantIntensity)
			}
		})
	}
}

func TestEmotionAnalysis_Normalize_KeywordCap(t *testing.T) {
	keywords := make([]string, MaxKeywords+5)
	for i := range keywords {
		keywords[i] = strings.Repeat("k", i+1)
	}

	a := EmotionAnalysis{Emotion: EmotionNeutral, Keywords: keywords}
	a.Normalize()

	if len(a.Keywords) != MaxKeywords {
		t.Errorf("Normalize() kept %d keywords, want %d", len(a.Keywords), MaxKeywords)
	}
	if a.Keywords[0] != "k" {
		t.Errorf("Normalize() dropped leading keywords, first = %q", a.Keywords[0])
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusCreated, "created"},
		{StatusPending, "pending"},
		{StatusProcessing, "processing"},
		{StatusCompleted, "completed"},
		{StatusFailed, "failed"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
