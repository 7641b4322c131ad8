package structured

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/poiesic/catharsis/core"
)

// ErrNoMemeFields is returned when a meme object decodes but carries
// none of the expected fields.
var ErrNoMemeFields = errors.New("meme object has no usable fields")

// DecodeMemeCard recovers a MemeCard from raw model output. A partial
// card is acceptable; missing slots are filled downstream by the
// transformation engine. It fails only when no balanced object exists
// or the object carries nothing usable.
func DecodeMemeCard(raw string) (*core.MemeCard, error) {
	obj, err := FirstObject(StripFences(raw))
	if err != nil {
		return nil, err
	}

	var card core.MemeCard
	if err := json.Unmarshal([]byte(obj), &card); err != nil {
		repaired := RepairJSON(obj)
		if err2 := json.Unmarshal([]byte(repaired), &card); err2 != nil {
			return nil, err
		}
	}

	card.Title = strings.TrimSpace(card.Title)
	card.TopText = strings.TrimSpace(card.TopText)
	card.BottomText = strings.TrimSpace(card.BottomText)
	card.Template = strings.TrimSpace(card.Template)

	if card.Title == "" && card.TopText == "" && card.BottomText == "" && card.Template == "" {
		return nil, ErrNoMemeFields
	}
	return &card, nil
}
