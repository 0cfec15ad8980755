package llm

import "context"

// ChatModel — чат-модель, которая пишет краткое резюме заявки.
// Конкретный провайдер подключается в cmd/server.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
