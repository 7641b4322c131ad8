package respond

import "github.com/poiesic/catharsis/core"

// defaultActions are suggested for emotions without a dedicated set.
var defaultActions = []core.SuggestedAction{
	{Type: core.ActionSaveLocal, Title: "Save This Moment", Description: "Keep a record of your thoughts", Priority: 2},
	{Type: core.ActionShareSocial, Title: "Share If You Want", Description: "Consider sharing your thoughts with others", Priority: 1},
}

var actionTable = map[core.Emotion][]core.SuggestedAction{
	core.EmotionAngry: {
		{Type: core.ActionExercise, Title: "Physical Exercise", Description: "Go for a run or hit the gym to release anger", Priority: 5},
		{Type: core.ActionMeditate, Title: "Breathing Exercise", Description: "Try deep breathing or meditation to calm down", Priority: 4},
		{Type: core.ActionCallFriend, Title: "Talk to Someone", Description: "Call a trusted friend or family member", Priority: 3},
	},
	core.EmotionFrustrated: {
		{Type: core.ActionExercise, Title: "Move Your Body", Description: "A brisk walk can break the frustration loop", Priority: 4},
		{Type: core.ActionCreateReminder, Title: "Step Back", Description: "Park the problem and schedule a fresh attempt later", Priority: 4},
		{Type: core.ActionCallFriend, Title: "Vent It Out", Description: "Talk it through with someone you trust", Priority: 3},
	},
	core.EmotionSad: {
		{Type: core.ActionCallFriend, Title: "Reach Out", Description: "Connect with someone who cares about you", Priority: 5},
		{Type: core.ActionBookTherapy, Title: "Professional Help", Description: "Consider talking to a therapist or counselor", Priority: 4},
		{Type: core.ActionExercise, Title: "Light Exercise", Description: "Try a gentle walk or yoga session", Priority: 3},
	},
	core.EmotionAnxious: {
		{Type: core.ActionMeditate, Title: "Mindfulness Practice", Description: "Try guided meditation or mindfulness exercises", Priority: 5},
		{Type: core.ActionCreateReminder, Title: "Action Plan", Description: "Break down your worries into actionable steps", Priority: 4},
		{Type: core.ActionCallFriend, Title: "Get Support", Description: "Talk through your concerns with someone", Priority: 3},
	},
	core.EmotionExcited: {
		{Type: core.ActionShareSocial, Title: "Share Your Joy", Description: "Share your excitement on social media", Priority: 4},
		{Type: core.ActionCreateReminder, Title: "Plan Something", Description: "Channel your energy into planning something fun", Priority: 3},
	},
	core.EmotionHappy: {
		{Type: core.ActionShareSocial, Title: "Spread It Around", Description: "Share what made your day with others", Priority: 3},
		{Type: core.ActionSaveLocal, Title: "Keep the Memory", Description: "Write down what went well today", Priority: 3},
	},
}

// SuggestActions returns deterministic follow-up suggestions for an
// emotion, highest priority first. Every emotion yields at least the
// default suggestions.
func SuggestActions(emotion core.Emotion) []core.SuggestedAction {
	if actions, ok := actionTable[emotion]; ok {
		return actions
	}
	return defaultActions
}
