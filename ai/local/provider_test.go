package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/core"
)

func TestAnalyzeTextAngry(t *testing.T) {
	analysis := AnalyzeText("I hate this, everything is going wrong and it makes me furious")

	assert.Equal(t, core.EmotionAngry, analysis.Emotion)
	assert.Negative(t, analysis.SentimentScore)
	assert.Positive(t, analysis.Confidence)
	assert.NotEmpty(t, analysis.Keywords)
	assert.NotEmpty(t, analysis.Summary)
}

func TestAnalyzeTextNeutral(t *testing.T) {
	analysis := AnalyzeText("The meeting is scheduled for Tuesday at three")

	assert.Equal(t, core.EmotionNeutral, analysis.Emotion)
	assert.Equal(t, 0.5, analysis.Confidence)
	assert.Zero(t, analysis.SentimentScore)
}

func TestAnalyzeTextPositive(t *testing.T) {
	analysis := AnalyzeText("This is amazing, I am so happy and excited about everything")

	assert.Contains(t, []core.Emotion{core.EmotionExcited, core.EmotionHappy}, analysis.Emotion)
	assert.Positive(t, analysis.SentimentScore)
}

func TestAnalyzeTextNonEnglish(t *testing.T) {
	// Reliably non-English input skips the English lexicon entirely.
	analysis := AnalyzeText("Сегодня был очень тяжёлый день, всё пошло не так, и я очень расстроен из-за этого.")

	assert.Equal(t, core.EmotionNeutral, analysis.Emotion)
	assert.Zero(t, analysis.SentimentScore)
}

func TestAnalyzeTextKeywordCap(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "distinctword" + string(rune('a'+i)) + " "
	}
	analysis := AnalyzeText(long)
	assert.LessOrEqual(t, len(analysis.Keywords), core.MaxKeywords)
}

func TestAnalyzeTextSummaryTruncation(t *testing.T) {
	long := make([]rune, 300)
	for i := range long {
		long[i] = 'x'
	}
	analysis := AnalyzeText(string(long))
	assert.Equal(t, 103, len([]rune(analysis.Summary)))
	assert.Equal(t, "...", analysis.Summary[len(analysis.Summary)-3:])
}

func TestProviderNeverFailsAnalyzeTransform(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	require.True(t, p.Available())
	require.True(t, p.Capabilities().Has(ai.CapAnalyze|ai.CapTransform|ai.CapRespond))

	_, err := p.Analyze(ctx, ai.AnalyzeRequest{Text: ""})
	require.NoError(t, err)

	for _, form := range core.TransformForms {
		payload, err := p.Transform(ctx, ai.TransformRequest{Text: "rough day", Form: form})
		require.NoError(t, err, "form %s", form)
		if form == core.FormMeme {
			require.NotNil(t, payload.Meme)
			assert.NotEmpty(t, payload.Meme.Template)
		} else {
			assert.NotEmpty(t, payload.Content, "form %s", form)
		}
	}
}

func TestProviderRespond(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	for _, persona := range core.Personas {
		reply, err := p.Respond(ctx, ai.RespondRequest{Text: "long week", Persona: persona})
		require.NoError(t, err, "persona %s", persona)
		assert.NotEmpty(t, reply)
	}

	// Same input picks the same variant.
	a, err := p.Respond(ctx, ai.RespondRequest{Text: "same input", Persona: core.PersonaSupportive})
	require.NoError(t, err)
	b, err := p.Respond(ctx, ai.RespondRequest{Text: "same input", Persona: core.PersonaSupportive})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProviderRespondMissingPersona(t *testing.T) {
	p := NewProvider(WithPersonaReplies(map[core.Persona][]string{}))

	_, err := p.Respond(context.Background(), ai.RespondRequest{Text: "hi", Persona: core.PersonaSupportive})
	require.Error(t, err)

	var perr *ai.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ai.KindOutputInvalid, perr.Kind)
}

func TestFallbackPayloadTweetShortInput(t *testing.T) {
	payload := FallbackPayload("short rant", core.FormTweet)
	assert.Contains(t, payload.Content, "short rant")
	assert.LessOrEqual(t, len([]rune(payload.Content)), 280)
}
