package local

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"

	"github.com/poiesic/catharsis/core"
)

// emotionLexicon maps each detectable emotion to its trigger words.
// Neutral is the absence of a match, not a lexicon entry.
var emotionLexicon = map[core.Emotion][]string{
	core.EmotionAngry:      {"angry", "mad", "furious", "rage", "hate", "pissed", "stupid", "damn", "hell"},
	core.EmotionFrustrated: {"frustrated", "annoying", "annoyed", "irritated", "bothered", "upset", "fed up"},
	core.EmotionSad:        {"sad", "depressed", "down", "cry", "tears", "hurt", "broken", "heartbroken"},
	core.EmotionAnxious:    {"anxious", "worried", "nervous", "scared", "fear", "stress", "panic"},
	core.EmotionExcited:    {"excited", "thrilled", "amazing", "awesome", "incredible", "wonderful"},
	core.EmotionHappy:      {"happy", "glad", "joy", "smile", "laugh", "great", "fantastic", "nice"},
	core.EmotionConfused:   {"confused", "lost", "unclear", "unsure", "wondering", "puzzled"},
}

var positiveWords = []string{"good", "great", "awesome", "amazing", "love", "happy", "wonderful", "fantastic"}
var negativeWords = []string{"bad", "terrible", "awful", "hate", "angry", "sad", "horrible", "worst", "sucks"}

// AnalyzeText runs the keyword heuristic over text and returns a
// normalized analysis. Non-English text (as far as detection is
// reliable) gets a neutral analysis rather than garbage keyword hits.
func AnalyzeText(text string) *core.EmotionAnalysis {
	content := strings.ToLower(text)

	analysis := &core.EmotionAnalysis{
		Emotion:    core.EmotionNeutral,
		Confidence: 0.5,
		Intensity:  0.5,
		Keywords:   extractKeywords(content),
		Summary:    summarize(text),
		Categories: []string{"personal", "emotional"},
	}

	// The lexicon is English; skip scoring when the text reliably is not.
	info := whatlanggo.Detect(text)
	if info.IsReliable() && info.Lang != whatlanggo.Eng {
		analysis.Normalize()
		return analysis
	}

	best := core.EmotionNeutral
	maxMatches := 0
	for _, emotion := range core.Emotions {
		matches := 0
		for _, keyword := range emotionLexicon[emotion] {
			if strings.Contains(content, keyword) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = emotion
		}
	}

	if maxMatches > 0 {
		words := len(strings.Fields(content))
		analysis.Emotion = best
		analysis.Confidence = min(float64(maxMatches)/float64(words)*10, 1.0)
		analysis.Intensity = min(float64(maxMatches)/2, 1.0)
	}

	analysis.SentimentScore = SentimentScore(content)
	analysis.Normalize()
	return analysis
}

// SentimentScore returns the balance of positive versus negative hits
// in [-1, 1], or 0 when neither list matches.
func SentimentScore(content string) float64 {
	pos, neg := sentimentCounts(content)
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

// SentimentCounts exposes the raw positive and negative hit counts.
// The response generator uses the counts to classify sentiment shift.
func SentimentCounts(text string) (positive, negative int) {
	return sentimentCounts(strings.ToLower(text))
}

func sentimentCounts(content string) (int, int) {
	pos := 0
	for _, word := range positiveWords {
		if strings.Contains(content, word) {
			pos++
		}
	}
	neg := 0
	for _, word := range negativeWords {
		if strings.Contains(content, word) {
			neg++
		}
	}
	return pos, neg
}

// extractKeywords keeps distinct words longer than four characters,
// punctuation trimmed, up to the analysis keyword cap.
func extractKeywords(content string) []string {
	words := strings.Fields(content)
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		cleaned := strings.Trim(word, ".,!?;:'\"-()[]{}")
		if len(cleaned) > 4 {
			keywords = append(keywords, cleaned)
		}
	}
	keywords = lo.Uniq(keywords)
	if len(keywords) > core.MaxKeywords {
		keywords = keywords[:core.MaxKeywords]
	}
	return keywords
}

func summarize(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= 100 {
		return string(runes)
	}
	return string(runes[:100]) + "..."
}
