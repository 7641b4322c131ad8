package transform

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/ai/mock"
	"github.com/poiesic/catharsis/core"
)

func newEngine(t *testing.T, providers ...ai.Provider) *Engine {
	t.Helper()
	engine, err := NewEngine(ai.NewRegistry(providers))
	require.NoError(t, err)
	return engine
}

func failingProvider() *mock.MockProvider {
	p := mock.NewMockProvider()
	p.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
		return nil, ai.Transport("mock", errors.New("down"))
	}
	return p
}

func TestNewEngineRequiresRegistry(t *testing.T) {
	_, err := NewEngine(nil)
	require.ErrorIs(t, err, ErrRegistryRequired)
}

func TestTransformValidatesBeforeProviders(t *testing.T) {
	provider := mock.NewMockProvider()
	engine := newEngine(t, provider)

	_, err := engine.Transform(context.Background(), "", core.FormPoem)
	require.ErrorIs(t, err, core.ErrValidation)
	assert.Equal(t, 0, provider.CallCount())

	_, err = engine.Transform(context.Background(), "fine text", core.TransformForm("interpretive-dance"))
	require.ErrorIs(t, err, core.ErrUnsupportedForm)
	assert.Equal(t, 0, provider.CallCount())
}

func TestTransformAllForms(t *testing.T) {
	for _, form := range core.TransformForms {
		t.Run(string(form), func(t *testing.T) {
			provider := mock.NewMockProvider()
			provider.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
				if req.Form == core.FormMeme {
					return &core.TransformationPayload{
						Form: req.Form,
						Meme: &core.MemeCard{TopText: "setup", BottomText: "punchline"},
					}, nil
				}
				return &core.TransformationPayload{Form: req.Form, Content: "rendered " + string(req.Form)}, nil
			}
			engine := newEngine(t, provider)

			result, err := engine.Transform(context.Background(), "a long week of little defeats", form)
			require.NoError(t, err)
			assert.Equal(t, "mock", result.Provider)
			assert.Equal(t, form, result.Payload.Form)
			assert.NotEmpty(t, result.Payload.Title)
			assert.Positive(t, result.QualityScore)
			assert.GreaterOrEqual(t, result.Elapsed, time.Duration(0))

			if form == core.FormMeme {
				require.NotNil(t, result.Payload.Meme)
			} else {
				assert.NotEmpty(t, result.Payload.Content)
			}
		})
	}
}

func TestTransformTweetTruncation(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
		return &core.TransformationPayload{Form: req.Form, Content: strings.Repeat("A", 1000)}, nil
	}
	engine := newEngine(t, provider)

	result, err := engine.Transform(context.Background(), "so much to say", core.FormTweet)
	require.NoError(t, err)
	content := []rune(result.Payload.Content)
	assert.Len(t, content, MaxTweetLength)
	assert.True(t, strings.HasSuffix(result.Payload.Content, "..."))
}

func TestTransformTweetShortUntouched(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
		return &core.TransformationPayload{Form: req.Form, Content: "short and sweet"}, nil
	}
	engine := newEngine(t, provider)

	result, err := engine.Transform(context.Background(), "brief", core.FormTweet)
	require.NoError(t, err)
	assert.Equal(t, "short and sweet", result.Payload.Content)
}

func TestTransformMemeCardCompleted(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
		return &core.TransformationPayload{
			Form: req.Form,
			Meme: &core.MemeCard{TopText: "WHEN THE BUILD PASSES"},
		}, nil
	}
	engine := newEngine(t, provider)

	result, err := engine.Transform(context.Background(), "build anxiety", core.FormMeme)
	require.NoError(t, err)
	card := result.Payload.Meme
	require.NotNil(t, card)
	assert.Equal(t, "WHEN THE BUILD PASSES", card.TopText)
	assert.NotEmpty(t, card.Title)
	assert.NotEmpty(t, card.BottomText)
	assert.NotEmpty(t, card.Template)
}

func TestTransformEmptyContentAdvancesCascade(t *testing.T) {
	sloppy := mock.NewMockProvider()
	sloppy.NameValue = "sloppy"
	sloppy.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
		return &core.TransformationPayload{Form: req.Form, Content: "   "}, nil
	}
	careful := mock.NewMockProvider()
	careful.NameValue = "careful"
	careful.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
		return &core.TransformationPayload{Form: req.Form, Content: "a real poem"}, nil
	}
	engine := newEngine(t, sloppy, careful)

	result, err := engine.Transform(context.Background(), "words", core.FormPoem)
	require.NoError(t, err)
	assert.Equal(t, "careful", result.Provider)
	assert.Equal(t, "a real poem", result.Payload.Content)
}

func TestTransformFallbackOnExhaustion(t *testing.T) {
	engine := newEngine(t, failingProvider())

	result, err := engine.Transform(context.Background(), "nothing works today", core.FormStory)
	require.NoError(t, err)
	assert.Equal(t, FallbackProviderName, result.Provider)
	assert.NotEmpty(t, result.Payload.Content)
	assert.Contains(t, result.Payload.Content, "nothing works today")
}

func TestTransformFallbackMeme(t *testing.T) {
	engine := newEngine(t, failingProvider())

	result, err := engine.Transform(context.Background(), "same struggle", core.FormMeme)
	require.NoError(t, err)
	card := result.Payload.Meme
	require.NotNil(t, card)
	assert.NotEmpty(t, card.Title)
	assert.NotEmpty(t, card.TopText)
	assert.NotEmpty(t, card.BottomText)
	assert.NotEmpty(t, card.Template)
}

func TestTransformContextErrorSurfaces(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	provider := mock.NewMockProvider()
	provider.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
		cancel()
		return nil, ai.Transport("mock", context.Canceled)
	}
	engine := newEngine(t, provider)

	_, err := engine.Transform(ctx, "text", core.FormLetter)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTransformSoftCapLongContent(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.TransformFunc = func(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
		return &core.TransformationPayload{Form: req.Form, Content: strings.Repeat("x", MaxContentRunes+500)}, nil
	}
	engine := newEngine(t, provider)

	result, err := engine.Transform(context.Background(), "long output", core.FormStory)
	require.NoError(t, err)
	assert.Len(t, []rune(result.Payload.Content), MaxContentRunes)
}
