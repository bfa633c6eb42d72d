package engine

import "context"

// gemmaEngine serves Gemma-family models using the Gemma turn markers.
type gemmaEngine struct {
	client    *runtimeClient
	sessionID string
}

func (e *gemmaEngine) Generate(ctx context.Context, prompt string, p GenParams) (string, error) {
	return e.client.complete(ctx, e.sessionID, completionRequest{
		Prompt:      "<start_of_turn>user\n" + prompt + "<end_of_turn>\n<start_of_turn>model\n",
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
		TopK:        p.TopK,
		Stop:        []string{"<end_of_turn>"},
	})
}

func (e *gemmaEngine) Close() error {
	return e.client.closeSession(e.sessionID)
}
