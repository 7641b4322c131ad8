package local

import (
	"fmt"
	"strings"

	"github.com/poiesic/catharsis/core"
)

// FallbackPayload builds a deterministic payload for any supported
// form. It is the terminal template used both by this provider and by
// the transformation engine when every generative provider failed. It
// never returns empty content for a supported form.
func FallbackPayload(text string, form core.TransformForm) *core.TransformationPayload {
	payload := &core.TransformationPayload{Form: form}

	switch form {
	case core.FormPoem:
		payload.Title = "Through the Feeling"
		payload.Content = fmt.Sprintf(
			"In feelings deep and true,\n%s\nThrough darkness comes the light,\nAnd hope will see us through.",
			snippet(text, 100))
	case core.FormSong:
		payload.Title = "Make It Through"
		payload.Content = fmt.Sprintf(
			"[Verse 1]\n%s\n\n[Chorus]\nEvery feeling has its place\nIn this journey that we face\nThrough the storms we find our way\nTo a brighter, better day",
			snippet(text, 150))
	case core.FormStory:
		payload.Title = "A Familiar Story"
		payload.Content = fmt.Sprintf(
			"Once there was someone who felt just like this: %s And through understanding their emotions, they found strength they never knew they had.",
			snippet(text, 200))
	case core.FormMotivational:
		payload.Title = "You Are Stronger Than You Know"
		payload.Content = fmt.Sprintf(
			"Your feelings are valid and important. %s Remember: you are stronger than you know, and this moment is part of your growth story.",
			snippet(text, 100))
	case core.FormLetter:
		payload.Title = "A Letter to Yourself"
		payload.Content = fmt.Sprintf(
			"Dear Self,\n\nI want you to know that what you're feeling is completely normal and valid. %s You are worthy of love, understanding, and patience, especially from yourself.\n\nWith compassion,\nYour Inner Supporter",
			snippet(text, 150))
	case core.FormMeme:
		payload.Title = "Relatable Struggle"
		payload.Meme = &core.MemeCard{
			Title:      "Relatable Struggle",
			TopText:    "Dealing with problems maturely",
			BottomText: "Venting about it instead",
			Template:   "Drake Pointing",
		}
	case core.FormTweet:
		payload.Title = "In One Breath"
		payload.Content = fmt.Sprintf(
			"That moment when %s Anyone else? #relatable #life #struggles",
			snippet(text, 100))
	case core.FormScript:
		payload.Title = "A Word With Myself"
		payload.Content = fmt.Sprintf(
			"SCENE: A person talking to their reflection\n\nPERSON: (frustrated) %s\n\nREFLECTION: (calmly) I know it's hard, but what if we looked at this differently?\n\nPERSON: (curious) How so?\n\nREFLECTION: What if this is exactly what we need to learn right now?\n\n(Both smile)\n\nEND SCENE",
			snippet(text, 50))
	default:
		// Unsupported forms are rejected upstream by validation.
		payload.Title = "A New Perspective"
		payload.Content = snippet(text, 200)
	}

	return payload
}

// snippet returns a rune-safe prefix of text with an ellipsis when it
// was cut short.
func snippet(text string, max int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}
