package local

import "github.com/poiesic/catharsis/core"

// personaReplies holds the canned replies used when no generative
// provider is reachable. Two variants per persona keep repeated
// fallbacks from reading identical.
var personaReplies = map[core.Persona][]string{
	core.PersonaSupportive: {
		"I hear you, and your feelings are completely valid. It sounds like you're going through a challenging time, and that's okay. Remember that it's normal to feel this way, and you're not alone in experiencing these emotions.",
		"Thank you for sharing that. Whatever you're carrying right now is real and it matters. Be gentle with yourself today; you're doing better than you think.",
	},
	core.PersonaEncouraging: {
		"Your feelings matter, and it's brave of you to express them. Every challenge you face is helping you grow stronger, even when it doesn't feel that way. You have the strength to get through this.",
		"You've made it through every hard day so far, and that's not nothing. Keep going; this moment is part of your story, not the end of it.",
	},
	core.PersonaAnalytical: {
		"It seems like this situation is really affecting you. Sometimes it helps to break down what's happening and look at it from different angles. What do you think might be the root cause of these feelings?",
		"Let's take this apart piece by piece. Which part of the situation is actually in your control, and which part is just noise? Separating the two usually makes the next step clearer.",
	},
	core.PersonaEmpathetic: {
		"I can really feel the emotion in your words. It must be difficult to be experiencing this right now. Know that your feelings are heard and understood.",
		"That sounds genuinely hard. I'm not going to pretend there's a quick fix; I just want you to know that what you're feeling makes complete sense.",
	},
	core.PersonaHumorous: {
		"Well, on the bright side, at least you now have excellent material for a dramatic memoir. Chapter one: today. In all seriousness though, this will pass, and you'll be the one laughing about it first.",
		"If frustration burned calories, you'd be an athlete by now. Hang in there; the universe has a weird sense of humor, but it usually comes around.",
	},
	core.PersonaMotivational: {
		"This is the part of the movie where the hero digs in. You didn't come this far only to come this far. Take one small action today and let momentum do the rest.",
		"Obstacles are instructions, not stop signs. You have everything you need to turn this around, starting right now.",
	},
	core.PersonaProfessional: {
		"Thank you for outlining the situation. Based on what you've described, it may help to identify the most pressing concern, set a realistic next step, and revisit the rest once that is handled.",
		"I understand the situation is stressful. A structured approach often helps: list the issues, rank them by impact, and address the top one first.",
	},
	core.PersonaSarcastic: {
		"Oh no, the world failing to cooperate with your plans? Groundbreaking. But honestly, you clearly care about this, and that's exactly why you'll figure it out.",
		"Ah yes, another flawless day in paradise. Look, if complaining were a sport you'd medal, but so would your ability to bounce back. Use it.",
	},
}
