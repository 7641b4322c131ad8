package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Content units use content-based hashing so identical submissions
// from the same owner map to the same unit.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Emotion is one of the eight closed emotion labels produced by analysis.
type Emotion string

const (
	EmotionAngry      Emotion = "angry"
	EmotionFrustrated Emotion = "frustrated"
	EmotionSad        Emotion = "sad"
	EmotionAnxious    Emotion = "anxious"
	EmotionExcited    Emotion = "excited"
	EmotionHappy      Emotion = "happy"
	EmotionConfused   Emotion = "confused"
	EmotionNeutral    Emotion = "neutral"
)

// Emotions lists the closed label set in canonical order.
var Emotions = []Emotion{
	EmotionAngry,
	EmotionFrustrated,
	EmotionSad,
	EmotionAnxious,
	EmotionExcited,
	EmotionHappy,
	EmotionConfused,
	EmotionNeutral,
}

// Status is the processing lifecycle state of a content unit.
type Status int

const (
	// StatusCreated is the initial state before submission.
	StatusCreated Status = iota + 1
	// StatusPending means the unit is submitted and waiting for analysis.
	StatusPending
	// StatusProcessing means analysis is in flight.
	StatusProcessing
	// StatusCompleted means analysis succeeded and is attached.
	StatusCompleted
	// StatusFailed means analysis failed; the unit may be retried.
	StatusFailed
)

// String returns the lowercase wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// InputKind identifies the modality the content text originated from.
type InputKind string

const (
	InputText            InputKind = "text"
	InputAudioTranscript InputKind = "audio-transcript"
	InputVideoTranscript InputKind = "video-transcript"
)

// TransformForm is a supported creative output form.
type TransformForm string

const (
	FormPoem         TransformForm = "poem"
	FormSong         TransformForm = "song"
	FormStory        TransformForm = "story"
	FormMotivational TransformForm = "motivational"
	FormLetter       TransformForm = "letter"
	FormMeme         TransformForm = "meme"
	FormTweet        TransformForm = "tweet"
	FormScript       TransformForm = "script"
)

// TransformForms lists every supported form in canonical order.
var TransformForms = []TransformForm{
	FormPoem,
	FormSong,
	FormStory,
	FormMotivational,
	FormLetter,
	FormMeme,
	FormTweet,
	FormScript,
}

// Persona is a response tone accepted from the configured allow-list.
// Unlike emotions, unknown personas are rejected rather than coerced.
type Persona string

const (
	PersonaSupportive   Persona = "supportive"
	PersonaHumorous     Persona = "humorous"
	PersonaMotivational Persona = "motivational"
	PersonaProfessional Persona = "professional"
	PersonaAnalytical   Persona = "analytical"
	PersonaEmpathetic   Persona = "empathetic"
	PersonaEncouraging  Persona = "encouraging"
	PersonaSarcastic    Persona = "sarcastic"
)

// Personas is the persona allow-list in canonical order.
var Personas = []Persona{
	PersonaSupportive,
	PersonaHumorous,
	PersonaMotivational,
	PersonaProfessional,
	PersonaAnalytical,
	PersonaEmpathetic,
	PersonaEncouraging,
	PersonaSarcastic,
}

// EmotionAnalysis is the structured result of analyzing a content unit.
// All bounded fields are clamped by Normalize; construction never fails.
type EmotionAnalysis struct {
	Emotion        Emotion
	Confidence     float64  // 0..1
	SentimentScore float64  // -1..1
	Intensity      float64  // 0..1
	Keywords       []string // ordered, at most MaxKeywords
	Summary        string
	Categories     []string
}

// MaxKeywords caps the keyword list length on an analysis.
const MaxKeywords = 10

// Normalize clamps bounded fields into their declared ranges, coerces
// unrecognized emotion labels to neutral, and caps the keyword list.
func (a *EmotionAnalysis) Normalize() {
	a.Emotion = ParseEmotion(string(a.Emotion))
	a.Confidence = clamp(a.Confidence, 0, 1)
	a.SentimentScore = clamp(a.SentimentScore, -1, 1)
	a.Intensity = clamp(a.Intensity, 0, 1)
	if len(a.Keywords) > MaxKeywords {
		a.Keywords = a.Keywords[:MaxKeywords]
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ContentUnit is a caller-submitted block of text moving through the
// processing lifecycle. It is mutated only via status transitions.
type ContentUnit struct {
	Id          ID
	OwnerId     ID
	Content     string
	Kind        InputKind
	Status      Status
	Analysis    *EmotionAnalysis // nil until analyzed
	LastError   string           // preserved for retry after a failure
	CreatedAt   time.Time
	ProcessedAt time.Time // zero until completed
}

// MemeCard is the structured payload of the meme form.
// Exactly these four fields are required by the form's contract.
type MemeCard struct {
	Title      string `json:"title"`
	TopText    string `json:"top_text"`
	BottomText string `json:"bottom_text"`
	Template   string `json:"template"`
}

// TransformationPayload is the generated output for one form.
// Meme is populated only for the meme form, where it carries the
// content and Content may be empty; every other form carries a
// non-empty textual rendering in Content.
type TransformationPayload struct {
	Form    TransformForm
	Title   string
	Content string
	Meme    *MemeCard
}

// TransformationResult wraps a payload with generation metadata.
// Created per request; persistence is the caller's choice.
type TransformationResult struct {
	Payload      *TransformationPayload
	Provider     string
	Elapsed      time.Duration
	QualityScore float64 // opaque heuristic, not a contract
}

// SentimentShift classifies how a generated reply's tone compares to the input.
type SentimentShift string

const (
	ShiftSignificantlyMorePositive SentimentShift = "significantly_more_positive"
	ShiftMorePositive              SentimentShift = "more_positive"
	ShiftNeutral                   SentimentShift = "neutral"
	ShiftMaintainedTone            SentimentShift = "maintained_tone"
)

// ResponseMetadata is advisory observability data about a generated reply.
type ResponseMetadata struct {
	Length         int
	ReadingMinutes int
	SentimentShift SentimentShift
}

// ResponseResult is a persona-conditioned reply plus its metadata.
type ResponseResult struct {
	Reply    string
	Provider string
	Persona  Persona
	Metadata ResponseMetadata
}

// ActionType identifies a suggested follow-up action.
type ActionType string

const (
	ActionShareSocial    ActionType = "share_social"
	ActionSaveLocal      ActionType = "save_local"
	ActionCreateReminder ActionType = "create_reminder"
	ActionBookTherapy    ActionType = "book_therapy"
	ActionCallFriend     ActionType = "call_friend"
	ActionExercise       ActionType = "exercise"
	ActionMeditate       ActionType = "meditate"
)

// SuggestedAction is a deterministic per-emotion follow-up suggestion.
type SuggestedAction struct {
	Type        ActionType
	Title       string
	Description string
	Priority    int // 1-5, 5 highest
}
