package ai

// Wire types for the generativelanguage generateContent endpoint. Only
// the fields this client touches are modeled.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// calorieReply is the JSON shape the calorie prompt asks the model for.
type calorieReply struct {
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
}

// matchReply is the JSON shape the match prompt asks the model for.
// Found false, or a missing opponent or kickoff, means no match.
type matchReply struct {
	Found       bool   `json:"found"`
	Opponent    string `json:"opponent"`
	Competition string `json:"competition"`
	Kickoff     string `json:"kickoff"` // RFC 3339
}
