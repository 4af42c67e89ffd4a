// Package usecase contains the advisor conversation logic.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tradetracker/internal/feature/advisor/domain/entity"
)

// historyLimit caps how many past turns are replayed into the prompt.
const historyLimit = 20

// ChatModel generates text from a prompt. Implemented by the Gemini
// adapter.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ConversationRepository stores per-session conversation history.
type ConversationRepository interface {
	Append(ctx context.Context, sessionID string, msgs ...entity.Message) error
	History(ctx context.Context, sessionID string, limit int) ([]entity.Message, error)
}

// advisorUsecase answers trading questions with optional account
// statistics and per-session memory.
type advisorUsecase struct {
	model ChatModel
	conv  ConversationRepository
}

// NewAdvisorUsecase creates a new advisorUsecase.
func NewAdvisorUsecase(model ChatModel, conv ConversationRepository) *advisorUsecase {
	return &advisorUsecase{model: model, conv: conv}
}

// Chat answers one conversational turn. An empty sessionID starts a new
// conversation; the (possibly fresh) session id is returned so the client
// can continue the thread.
func (u *advisorUsecase) Chat(ctx context.Context, sessionID, message string, stats *entity.PerformanceContext) (string, string, error) {
	if strings.TrimSpace(message) == "" {
		return "", "", ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history, err := u.conv.History(ctx, sessionID, historyLimit)
	if err != nil {
		return "", "", fmt.Errorf("failed to load conversation history: %w", err)
	}

	prompt := buildChatPrompt(history, message, stats)
	reply, err := u.model.Generate(ctx, prompt)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	now := time.Now().UTC()
	err = u.conv.Append(ctx, sessionID,
		entity.Message{Role: entity.RoleUser, Content: message, Time: now},
		entity.Message{Role: entity.RoleAssistant, Content: reply, Time: now},
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to store conversation turn: %w", err)
	}

	return sessionID, reply, nil
}

// Analyze produces a one-shot review of the supplied account statistics.
func (u *advisorUsecase) Analyze(ctx context.Context, stats entity.PerformanceContext, question string) (string, error) {
	prompt := buildAnalyzePrompt(stats, question)
	analysis, err := u.model.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return analysis, nil
}

const systemPreamble = `You are a trading performance advisor. You review broker account
statistics and answer questions about risk, consistency and trade management.
Be concrete, reference the numbers you are given, and keep answers short.
Never give financial advice on specific instruments or entry points.`

func buildChatPrompt(history []entity.Message, message string, stats *entity.PerformanceContext) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\n")

	if stats != nil {
		writeStats(&b, *stats)
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, m := range history {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "user: %s\nassistant:", message)
	return b.String()
}

func buildAnalyzePrompt(stats entity.PerformanceContext, question string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\n")
	writeStats(&b, stats)
	b.WriteString("\nReview this account's performance. Point out the biggest strength,")
	b.WriteString(" the biggest weakness, and one specific improvement.\n")
	if strings.TrimSpace(question) != "" {
		fmt.Fprintf(&b, "The trader also asks: %s\n", question)
	}
	return b.String()
}

func writeStats(b *strings.Builder, s entity.PerformanceContext) {
	b.WriteString("Account statistics:\n")
	fmt.Fprintf(b, "- total trades: %d\n", s.TotalTrades)
	fmt.Fprintf(b, "- win rate: %.2f%%\n", s.WinRatePct)
	fmt.Fprintf(b, "- total profit: %.2f\n", s.TotalProfit)
	fmt.Fprintf(b, "- profit factor: %.2f\n", s.ProfitFactor)
	fmt.Fprintf(b, "- max drawdown: %.2f%%\n", s.MaxDrawdownPct)
	fmt.Fprintf(b, "- expectancy: %.2f\n", s.Expectancy)
	fmt.Fprintf(b, "- average win: %.2f, average loss: %.2f\n", s.AvgWin, s.AvgLoss)
}
