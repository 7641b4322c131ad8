package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "valid text",
			text:    "I had a difficult conversation with my manager today",
			wantErr: nil,
		},
		{
			name:    "single character",
			text:    "a",
			wantErr: nil,
		},
		{
			name:    "exactly at limit",
			text:    strings.Repeat("x", MaxContentLength),
			wantErr: nil,
		},
		{
			name:    "empty string",
			text:    "",
			wantErr: ErrEmptyContent,
		},
		{
			name:    "whitespace only",
			text:    "   \t\n  ",
			wantErr: ErrEmptyContent,
		},
		{
			name:    "one over limit",
			text:    strings.Repeat("x", MaxContentLength+1),
			wantErr: ErrContentTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.text)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateContent() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateContent() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateContent() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ValidateContent() error = %v, want wrapped ErrValidation", err)
			}
		})
	}
}

func TestValidateContentUnit(t *testing.T) {
	tests := []struct {
		name    string
		unit    *ContentUnit
		wantErr error
	}{
		{
			name: "valid unit",
			unit: &ContentUnit{
				Id:      1,
				OwnerId: 1,
				Content: "Something happened today",
				Kind:    InputText,
				Status:  StatusPending,
			},
			wantErr: nil,
		},
		{
			name: "valid unit with ID 0",
			unit: &ContentUnit{
				Content: "Not yet persisted",
				Status:  StatusCreated,
			},
			wantErr: nil,
		},
		{
			name:    "nil unit",
			unit:    nil,
			wantErr: ErrInvalidContentUnit,
		},
		{
			name: "empty content",
			unit: &ContentUnit{
				Id:     1,
				Status: StatusPending,
			},
			wantErr: ErrEmptyContent,
		},
		{
			name: "undefined status",
			unit: &ContentUnit{
				Id:      1,
				Content: "Something happened today",
				Status:  Status(42),
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name: "zero status",
			unit: &ContentUnit{
				Id:      1,
				Content: "Something happened today",
			},
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentUnit(tt.unit)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateContentUnit() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateContentUnit() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateContentUnit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseEmotion(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  Emotion
	}{
		{"exact match", "angry", EmotionAngry},
		{"uppercase", "HAPPY", EmotionHappy},
		{"mixed case with padding", "  Frustrated  ", EmotionFrustrated},
		{"unknown label coerces to neutral", "melancholic", EmotionNeutral},
		{"empty label coerces to neutral", "", EmotionNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseEmotion(tt.label); got != tt.want {
				t.Errorf("ParseEmotion(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestParseForm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TransformForm
		wantErr error
	}{
		{"exact match", "poem", FormPoem, nil},
		{"uppercase", "TWEET", FormTweet, nil},
		{"padded", " meme ", FormMeme, nil},
		{"unknown form", "haiku", "", ErrUnsupportedForm},
		{"empty", "", "", ErrUnsupportedForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseForm(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseForm(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("ParseForm(%q) error = %v, want wrapped ErrValidation", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseForm(%q) error = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseForm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePersona(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Persona
		wantErr error
	}{
		{"exact match", "supportive", PersonaSupportive, nil},
		{"uppercase", "SARCASTIC", PersonaSarcastic, nil},
		{"unknown persona rejected", "grumpy", "", ErrUnknownPersona},
		{"empty rejected", "", "", ErrUnknownPersona},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePersona(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParsePersona(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("ParsePersona(%q) error = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePersona(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"created to pending", StatusCreated, StatusPending, true},
		{"pending to processing", StatusPending, StatusProcessing, true},
		{"processing to completed", StatusProcessing, StatusCompleted, true},
		{"processing to failed", StatusProcessing, StatusFailed, true},
		{"failed to processing retry", StatusFailed, StatusProcessing, true},
		{"completed is terminal", StatusCompleted, StatusProcessing, false},
		{"created cannot skip to completed", StatusCreated, StatusCompleted, false},
		{"pending cannot go back to created", StatusPending, StatusCreated, false},
		{"failed cannot jump to completed", StatusFailed, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCheckTransition(t *testing.T) {
	if err := CheckTransition(StatusPending, StatusProcessing); err != nil {
		t.Errorf("CheckTransition() error = %v, want nil", err)
	}

	if err := CheckTransition(StatusCompleted, StatusProcessing); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("CheckTransition() error = %v, want ErrAlreadyCompleted", err)
	}

	if err := CheckTransition(StatusCreated, StatusFailed); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("CheckTransition() error = %v, want ErrInvalidTransition", err)
	}
}
