package oracle

import (
	"encoding/json"

	"github.com/imdyangs/past-present-future/internal/spread"
)

// SpreadType names the only spread layout the service understands
const SpreadType = "Past–Present–Future"

// Payload is the request body for /api/reading
type Payload struct {
	Spread SpreadPayload `json:"spread"`
}

// SpreadPayload describes the drawn spread
type SpreadPayload struct {
	Type  string        `json:"type"`
	Cards []CardPayload `json:"cards"`
}

// CardPayload is one card of the spread
type CardPayload struct {
	Position    string `json:"position"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Arcana      string `json:"arcana"`
	Number      string `json:"number,omitempty"`
	Meaning     string `json:"meaning"`
	Description string `json:"description"`
}

// NewPayload builds the request body for a spread
func NewPayload(s spread.Spread) Payload {
	cards := make([]CardPayload, 0, spread.Size)
	for i, c := range s {
		cards = append(cards, CardPayload{
			Position:    spread.Positions[i].Label(),
			ID:          c.ID,
			Name:        c.Name,
			Arcana:      string(c.Arcana),
			Number:      c.Number,
			Meaning:     c.Meaning,
			Description: c.Description,
		})
	}
	return Payload{Spread: SpreadPayload{Type: SpreadType, Cards: cards}}
}

// Response is the body returned by /api/reading
type Response struct {
	Model string          `json:"model"`
	Text  string          `json:"text"`
	Raw   json.RawMessage `json:"raw,omitempty"`
}

type chatCompletion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Content returns the narrative text. When Text is empty it falls back to
// raw.choices[0].message.content of the provider passthrough.
func (r *Response) Content() string {
	if r == nil {
		return ""
	}
	if r.Text != "" {
		return r.Text
	}
	if len(r.Raw) == 0 {
		return ""
	}
	var raw chatCompletion
	if err := json.Unmarshal(r.Raw, &raw); err != nil || len(raw.Choices) == 0 {
		return ""
	}
	return raw.Choices[0].Message.Content
}
