package engine

import "context"

// deepseekEngine serves DeepSeek-family models. It wraps prompts in the
// DeepSeek chat template before handing them to the runtime session.
type deepseekEngine struct {
	client    *runtimeClient
	sessionID string
}

func (e *deepseekEngine) Generate(ctx context.Context, prompt string, p GenParams) (string, error) {
	return e.client.complete(ctx, e.sessionID, completionRequest{
		Prompt:      "<｜User｜>" + prompt + "<｜Assistant｜>",
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
		TopK:        p.TopK,
		Stop:        []string{"<｜end▁of▁sentence｜>"},
	})
}

func (e *deepseekEngine) Close() error {
	return e.client.closeSession(e.sessionID)
}
