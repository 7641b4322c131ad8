package respond

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/ai/mock"
	"github.com/poiesic/catharsis/core"
)

func newGenerator(t *testing.T, providers ...ai.Provider) *Generator {
	t.Helper()
	gen, err := NewGenerator(ai.NewRegistry(providers))
	require.NoError(t, err)
	return gen
}

func TestNewGeneratorRequiresRegistry(t *testing.T) {
	_, err := NewGenerator(nil)
	require.ErrorIs(t, err, ErrRegistryRequired)
}

func TestRespondValidatesBeforeProviders(t *testing.T) {
	provider := mock.NewMockProvider()
	gen := newGenerator(t, provider)

	_, err := gen.Respond(context.Background(), "", core.PersonaSupportive)
	require.ErrorIs(t, err, core.ErrValidation)
	assert.Equal(t, 0, provider.CallCount())

	_, err = gen.Respond(context.Background(), "fine", core.Persona("villain"))
	require.ErrorIs(t, err, core.ErrUnknownPersona)
	assert.Equal(t, 0, provider.CallCount())
}

func TestRespondAllPersonas(t *testing.T) {
	for _, persona := range core.Personas {
		t.Run(string(persona), func(t *testing.T) {
			provider := mock.NewMockProvider()
			var gotReq ai.RespondRequest
			provider.RespondFunc = func(ctx context.Context, req ai.RespondRequest) (string, error) {
				gotReq = req
				return "a thoughtful reply", nil
			}
			gen := newGenerator(t, provider)

			result, err := gen.Respond(context.Background(), "today was a lot", persona)
			require.NoError(t, err)
			assert.Equal(t, persona, result.Persona)
			assert.Equal(t, persona, gotReq.Persona)
			assert.Contains(t, gotReq.Instructions, "today was a lot")
			assert.Equal(t, "a thoughtful reply", result.Reply)
		})
	}
}

func TestRespondMetadata(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.RespondFunc = func(ctx context.Context, req ai.RespondRequest) (string, error) {
		return "You are doing great, this is wonderful and amazing, love that you shared. Happy days are ahead, good things take time.", nil
	}
	gen := newGenerator(t, provider)

	result, err := gen.Respond(context.Background(), "I hate this terrible awful day", core.PersonaSupportive)
	require.NoError(t, err)

	meta := result.Metadata
	assert.Equal(t, len(result.Reply), meta.Length)
	assert.Equal(t, len(result.Reply)/200+1, meta.ReadingMinutes)
	assert.Equal(t, core.ShiftSignificantlyMorePositive, meta.SentimentShift)
}

func TestRespondMetadataMaintainedTone(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.RespondFunc = func(ctx context.Context, req ai.RespondRequest) (string, error) {
		return "The situation you describe sounds routine.", nil
	}
	gen := newGenerator(t, provider)

	result, err := gen.Respond(context.Background(), "Thinking about the weather today", core.PersonaAnalytical)
	require.NoError(t, err)
	assert.Equal(t, core.ShiftMaintainedTone, result.Metadata.SentimentShift)
}

func TestRespondReadingMinutesRoundsUp(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.RespondFunc = func(ctx context.Context, req ai.RespondRequest) (string, error) {
		return "ok", nil
	}
	gen := newGenerator(t, provider)

	result, err := gen.Respond(context.Background(), "short", core.PersonaHumorous)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Metadata.ReadingMinutes)
}

func TestRespondExhaustionSurfaces(t *testing.T) {
	failing := mock.NewMockProvider()
	failing.RespondFunc = func(ctx context.Context, req ai.RespondRequest) (string, error) {
		return "", ai.Transport("mock", errors.New("down"))
	}
	gen := newGenerator(t, failing)

	_, err := gen.Respond(context.Background(), "anyone there", core.PersonaEmpathetic)
	require.ErrorIs(t, err, ai.ErrAllProvidersExhausted)
}

func TestSuggestActions(t *testing.T) {
	angry := SuggestActions(core.EmotionAngry)
	require.NotEmpty(t, angry)
	assert.Equal(t, core.ActionExercise, angry[0].Type)
	assert.Equal(t, 5, angry[0].Priority)

	sad := SuggestActions(core.EmotionSad)
	require.NotEmpty(t, sad)
	assert.Equal(t, core.ActionCallFriend, sad[0].Type)

	// Emotions without a dedicated set fall back to the defaults.
	neutral := SuggestActions(core.EmotionNeutral)
	require.Len(t, neutral, 2)
	assert.Equal(t, core.ActionSaveLocal, neutral[0].Type)

	confused := SuggestActions(core.EmotionConfused)
	assert.Equal(t, neutral, confused)
}

func TestSuggestActionsDeterministic(t *testing.T) {
	assert.Equal(t, SuggestActions(core.EmotionAnxious), SuggestActions(core.EmotionAnxious))
}
