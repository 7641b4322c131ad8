package structured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/catharsis/core"
)

func TestDecodeAnalysis(t *testing.T) {
	raw := "```json\n" + `{
		"emotion": "anxious",
		"emotion_confidence": 0.82,
		"sentiment_score": -0.4,
		"intensity": 0.7,
		"keywords": ["deadline", "pressure"],
		"summary": "Worried about an upcoming deadline.",
		"categories": ["work"]
	}` + "\n```"

	analysis, err := DecodeAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, core.EmotionAnxious, analysis.Emotion)
	assert.InDelta(t, 0.82, analysis.Confidence, 1e-9)
	assert.InDelta(t, -0.4, analysis.SentimentScore, 1e-9)
	assert.InDelta(t, 0.7, analysis.Intensity, 1e-9)
	assert.Equal(t, []string{"deadline", "pressure"}, analysis.Keywords)
	assert.Equal(t, "Worried about an upcoming deadline.", analysis.Summary)
}

func TestDecodeAnalysisCoercesUnknownEmotion(t *testing.T) {
	raw := `{"emotion":"melancholic","emotion_confidence":0.5,"sentiment_score":0,"keywords":[],"summary":"x"}`

	analysis, err := DecodeAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, core.EmotionNeutral, analysis.Emotion)
}

func TestDecodeAnalysisClampsOutOfRangeScores(t *testing.T) {
	raw := `{"emotion":"happy","emotion_confidence":2.5,"sentiment_score":-7,"intensity":9,"keywords":["a"],"summary":"x"}`

	analysis, err := DecodeAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, 1.0, analysis.Confidence)
	assert.Equal(t, -1.0, analysis.SentimentScore)
	assert.Equal(t, 1.0, analysis.Intensity)
}

func TestDecodeAnalysisMissingFields(t *testing.T) {
	raw := `{"emotion":"sad","summary":"short"}`

	_, err := DecodeAnalysis(raw)
	require.ErrorIs(t, err, ErrSchemaIncomplete)
}

func TestDecodeAnalysisRepairsBrokenKeys(t *testing.T) {
	raw := `{emotion": "sad", "emotion_confidence": 0.6, "sentiment_score": -0.5, "keywords": ["loss"], "summary": "grief"}`

	analysis, err := DecodeAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, core.EmotionSad, analysis.Emotion)
}

func TestDecodeAnalysisNoObject(t *testing.T) {
	_, err := DecodeAnalysis("I'm sorry, I can't help with that.")
	require.ErrorIs(t, err, ErrNoObject)
}

func TestDecodeMemeCard(t *testing.T) {
	raw := `Sure! {"title":"Monday","top_text":"ME ARRIVING","bottom_text":"AT FRIDAY","template":"drake"}`

	card, err := DecodeMemeCard(raw)
	require.NoError(t, err)
	assert.Equal(t, "Monday", card.Title)
	assert.Equal(t, "ME ARRIVING", card.TopText)
	assert.Equal(t, "AT FRIDAY", card.BottomText)
	assert.Equal(t, "drake", card.Template)
}

func TestDecodeMemeCardPartial(t *testing.T) {
	card, err := DecodeMemeCard(`{"top_text":"WHEN IT COMPILES"}`)
	require.NoError(t, err)
	assert.Equal(t, "WHEN IT COMPILES", card.TopText)
	assert.Empty(t, card.Template)
}

func TestDecodeMemeCardEmpty(t *testing.T) {
	_, err := DecodeMemeCard(`{"unrelated": true}`)
	require.ErrorIs(t, err, ErrNoMemeFields)
}
