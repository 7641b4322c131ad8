package transform

import (
	"fmt"

	"github.com/poiesic/catharsis/core"
)

// formSpec carries everything form-specific: the prompt, the quality
// grade of the format itself, and the default title used when a
// provider returns none.
type formSpec struct {
	title   string
	quality float64
	prompt  func(text string) string
}

// Quality grades mirror how well each format tends to preserve the
// original's substance, not how well a given provider did.
var formTable = map[core.TransformForm]formSpec{
	core.FormPoem: {
		title:   "Through the Feeling",
		quality: 0.8,
		prompt: func(text string) string {
			return fmt.Sprintf("Transform this emotional content into a meaningful poem that captures the essence of the feelings expressed:\n\n%s", text)
		},
	},
	core.FormSong: {
		title:   "Make It Through",
		quality: 0.8,
		prompt: func(text string) string {
			return fmt.Sprintf("Transform this content into song lyrics with verses and a chorus:\n\n%s", text)
		},
	},
	core.FormStory: {
		title:   "A Familiar Story",
		quality: 0.8,
		prompt: func(text string) string {
			return fmt.Sprintf("Transform this emotional content into a short, uplifting story:\n\n%s", text)
		},
	},
	core.FormMotivational: {
		title:   "You Are Stronger Than You Know",
		quality: 0.8,
		prompt: func(text string) string {
			return fmt.Sprintf("Transform this content into an inspiring, motivational message:\n\n%s", text)
		},
	},
	core.FormLetter: {
		title:   "A Letter to Yourself",
		quality: 0.8,
		prompt: func(text string) string {
			return fmt.Sprintf("Transform this content into a supportive letter to oneself:\n\n%s", text)
		},
	},
	core.FormMeme: {
		title:   "Relatable Struggle",
		quality: 0.7,
		prompt: func(text string) string {
			return fmt.Sprintf(`Create a humorous meme based on this text:

Text: %q

Generate a meme with:
1. A funny, relatable title/header
2. Top text (brief setup)
3. Bottom text (punchline)
4. Suggested meme template name

Make it lighthearted and help the person laugh at their situation.
Format as JSON with keys: title, top_text, bottom_text, template.`, text)
		},
	},
	core.FormTweet: {
		title:   "In One Breath",
		quality: 0.75,
		prompt: func(text string) string {
			return fmt.Sprintf(`Transform this text into a witty, relatable tweet (under 280 characters):

Text: %q

Make it:
- Humorous and relatable
- Twitter-friendly with emojis
- Positive spin if possible
- Engaging and shareable`, text)
		},
	},
	core.FormScript: {
		title:   "A Word With Myself",
		quality: 0.85,
		prompt: func(text string) string {
			return fmt.Sprintf("Transform this text into a short, uplifting scene in screenplay format, with scene headings and dialogue between a person and their inner voice:\n\n%s", text)
		},
	},
}
