package prompt

// Fixed sampling options sent with every request.
const (
	Temperature = 0.1
	TopP        = 0.9
	TopK        = 40
)

// NoResponse is returned when the server reply has no generated text.
const NoResponse = "No response"

// Options holds the sampling parameters of a generation request.
type Options struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k"`
}

// GenerationRequest is the body POSTed to /api/generate.
type GenerationRequest struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options Options `json:"options"`
}

// NewGenerationRequest builds a non-streaming request with the fixed sampling options.
func NewGenerationRequest(model, prompt string) GenerationRequest {
	return GenerationRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Options: Options{
			Temperature: Temperature,
			TopP:        TopP,
			TopK:        TopK,
		},
	}
}

// GenerationResponse is the subset of the server reply that is read.
// Response is nil when the field is absent or null.
type GenerationResponse struct {
	Model     string  `json:"model"`
	CreatedAt string  `json:"created_at"`
	Response  *string `json:"response"`
	Done      bool    `json:"done"`
}

// Text returns the generated text, or NoResponse if there is none.
func (r *GenerationResponse) Text() string {
	if r.Response == nil {
		return NoResponse
	}
	return *r.Response
}
