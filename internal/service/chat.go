package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/farmsight/server/internal/models"
)

const chatHistoryLimit = 50

const assistantInstructions = `You are an agricultural assistant for a farm management application.
Answer the farmer's question using the context below about their farms, inventory, and recent activities.
Be practical and concise. If the question is unrelated to farming, politely steer back to farm topics.`

// Chat builds a prompt from the user's farm data, asks the assistant, and
// stores the exchange.
func (s *DefaultService) Chat(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error) {
	if s.completer == nil {
		return nil, ErrAssistantUnavailable
	}

	prompt, err := s.buildChatPrompt(ctx, userID, req.Message)
	if err != nil {
		return nil, err
	}

	answer, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("assistant request failed", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("assistant request: %w", err)
	}

	// Markdown emphasis renders as literal asterisks in the mobile client.
	answer = strings.ReplaceAll(answer, "*", "")

	msg := &models.ChatMessage{
		UserID:   userID,
		Message:  req.Message,
		Response: answer,
	}
	if err := s.repo.CreateChatMessage(ctx, msg); err != nil {
		s.logger.Error("storing chat message failed", zap.Error(err), zap.String("user_id", userID))
	}

	return &models.ChatResponse{Response: answer}, nil
}

// ChatHistory returns the user's most recent exchanges, newest first.
func (s *DefaultService) ChatHistory(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	messages, err := s.repo.GetRecentChatMessages(ctx, userID, chatHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching chat history: %w", err)
	}

	return messages, nil
}

func (s *DefaultService) buildChatPrompt(ctx context.Context, userID, message string) (string, error) {
	farms, err := s.repo.GetUserFarms(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading farms for prompt: %w", err)
	}
	items, err := s.repo.GetUserInventory(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading inventory for prompt: %w", err)
	}
	activities, err := s.repo.GetUserActivities(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading activities for prompt: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(assistantInstructions)
	sb.WriteString("\n\nFarms:\n")
	writeJSONBlock(&sb, farms)
	sb.WriteString("\nInventory:\n")
	writeJSONBlock(&sb, items)
	sb.WriteString("\nRecent activities:\n")
	writeJSONBlock(&sb, activities)
	sb.WriteString("\nQuestion: ")
	sb.WriteString(message)

	return sb.String(), nil
}

func writeJSONBlock(sb *strings.Builder, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		sb.WriteString("[]\n")
		return
	}
	sb.Write(data)
	sb.WriteString("\n")
}
