package services

import (
	"context"
	"strings"

	"github.com/yoockh/htmlchat/internal/providers/llm"
	"github.com/yoockh/htmlchat/internal/utils"
)

// SystemPrompt is prepended to every user prompt.
const SystemPrompt = `You are a friendly and helpful chatbot.
Please respond to the user in a human-like manner using well-structured pure HTML.
Do NOT use Markdown, code fences, or any other types of formatting.
Ensure that the HTML is valid, properly structured, and does not contain any additional wrapping or code fences.`

const (
	MaxOutputTokens = 500
	Temperature     = 0.7
)

type GenerateService interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateService struct {
	llm llm.Provider
}

func NewGenerateService(p llm.Provider) GenerateService {
	return &generateService{llm: p}
}

// BuildPrompt frames prompt as the next turn of a conversation after the
// system instruction.
func BuildPrompt(prompt string) string {
	return SystemPrompt + "\n\nUser: " + prompt + "\nChatbot:"
}

func (s *generateService) Generate(ctx context.Context, prompt string) (string, error) {
	const op = "GenerateService.Generate"

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "Invalid prompt", nil)
	}

	text, err := s.llm.Generate(ctx, BuildPrompt(prompt), llm.Options{
		MaxTokens:   MaxOutputTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", utils.E(utils.CodeUpstream, op, err.Error(), err)
	}
	return StripCodeFences(text), nil
}
