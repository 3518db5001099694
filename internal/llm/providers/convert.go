package providers

import (
	"context"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"github.com/2389-research/mux-evals/internal/llm"
)

// toLangchainMessages converts harness messages to langchaingo MessageContent.
// A non-empty SystemPrompt is prepended as a system message.
func toLangchainMessages(req llm.CompletionRequest) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(req.Messages)+1)

	if req.SystemPrompt != "" {
		result = append(result, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(req.SystemPrompt)},
		})
	}

	for _, msg := range req.Messages {
		var role llms.ChatMessageType
		switch msg.Role {
		case llm.RoleSystem:
			role = llms.ChatMessageTypeSystem
		case llm.RoleAssistant:
			role = llms.ChatMessageTypeAI
		case llm.RoleTool:
			role = llms.ChatMessageTypeTool
		default:
			role = llms.ChatMessageTypeHuman
		}
		result = append(result, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(msg.Content)},
		})
	}

	return result
}

// fromLangchainResponse converts a langchaingo response to a harness response.
func fromLangchainResponse(resp *llms.ContentResponse, model string) *llm.CompletionResponse {
	out := &llm.CompletionResponse{
		ID:           uuid.New().String(),
		Model:        model,
		FinishReason: llm.FinishReasonStop,
	}
	if resp == nil || len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]
	out.Message = llm.Message{
		Role:    llm.RoleAssistant,
		Content: choice.Content,
	}

	for _, tc := range choice.ToolCalls {
		call := llm.ToolCall{ID: tc.ID, Type: tc.Type}
		if tc.FunctionCall != nil {
			call.Name = tc.FunctionCall.Name
			call.Arguments = tc.FunctionCall.Arguments
		}
		out.Message.ToolCalls = append(out.Message.ToolCalls, call)
	}

	switch choice.StopReason {
	case "length", "max_tokens":
		out.FinishReason = llm.FinishReasonLength
	case "tool_calls", "tool_use", "function_call":
		out.FinishReason = llm.FinishReasonToolCalls
	case "content_filter":
		out.FinishReason = llm.FinishReasonContentFilter
	}

	if usage, ok := choice.GenerationInfo["CompletionTokens"].(int); ok {
		out.Usage.CompletionTokens = usage
	}
	if usage, ok := choice.GenerationInfo["PromptTokens"].(int); ok {
		out.Usage.PromptTokens = usage
	}
	if usage, ok := choice.GenerationInfo["TotalTokens"].(int); ok {
		out.Usage.TotalTokens = usage
	}

	return out
}

// buildCallOptions translates request parameters into langchaingo call options.
func buildCallOptions(req llm.CompletionRequest) []llms.CallOption {
	opts := []llms.CallOption{}
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	if len(req.StopSequences) > 0 {
		opts = append(opts, llms.WithStopWords(req.StopSequences))
	}
	return opts
}

// buildStreamingCallOptions is buildCallOptions plus a streaming callback.
func buildStreamingCallOptions(req llm.CompletionRequest, fn func(ctx context.Context, chunk []byte) error) []llms.CallOption {
	return append(buildCallOptions(req), llms.WithStreamingFunc(fn))
}
