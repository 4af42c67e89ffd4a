package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradetracker/internal/feature/advisor/domain/entity"
)

// mockChatModel simulates the language model during testing.
type mockChatModel struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
	prompts    []string
}

func (m *mockChatModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt)
	}
	return "advice", nil
}

// memoryConversationRepository keeps conversation history in a map.
type memoryConversationRepository struct {
	sessions map[string][]entity.Message
}

func newMemoryConversationRepository() *memoryConversationRepository {
	return &memoryConversationRepository{sessions: map[string][]entity.Message{}}
}

func (m *memoryConversationRepository) Append(_ context.Context, sessionID string, msgs ...entity.Message) error {
	m.sessions[sessionID] = append(m.sessions[sessionID], msgs...)
	return nil
}

func (m *memoryConversationRepository) History(_ context.Context, sessionID string, limit int) ([]entity.Message, error) {
	msgs := m.sessions[sessionID]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func TestAdvisorUsecase_Chat(t *testing.T) {
	t.Run("assigns a session id when absent", func(t *testing.T) {
		model := &mockChatModel{}
		conv := newMemoryConversationRepository()
		uc := NewAdvisorUsecase(model, conv)

		sessionID, reply, err := uc.Chat(context.Background(), "", "how am I doing?", nil)

		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		assert.Equal(t, "advice", reply)
		assert.Len(t, conv.sessions[sessionID], 2, "both turns are stored")
	})

	t.Run("keeps the provided session id", func(t *testing.T) {
		uc := NewAdvisorUsecase(&mockChatModel{}, newMemoryConversationRepository())

		sessionID, _, err := uc.Chat(context.Background(), "existing", "hello", nil)

		require.NoError(t, err)
		assert.Equal(t, "existing", sessionID)
	})

	t.Run("replays history into the prompt", func(t *testing.T) {
		model := &mockChatModel{}
		conv := newMemoryConversationRepository()
		uc := NewAdvisorUsecase(model, conv)

		_, _, err := uc.Chat(context.Background(), "s1", "first question", nil)
		require.NoError(t, err)
		_, _, err = uc.Chat(context.Background(), "s1", "second question", nil)
		require.NoError(t, err)

		require.Len(t, model.prompts, 2)
		assert.Contains(t, model.prompts[1], "first question")
		assert.Contains(t, model.prompts[1], "second question")
	})

	t.Run("injects statistics context", func(t *testing.T) {
		model := &mockChatModel{}
		uc := NewAdvisorUsecase(model, newMemoryConversationRepository())

		stats := &entity.PerformanceContext{TotalTrades: 42, WinRatePct: 61.5}
		_, _, err := uc.Chat(context.Background(), "", "review me", stats)

		require.NoError(t, err)
		require.Len(t, model.prompts, 1)
		assert.Contains(t, model.prompts[0], "total trades: 42")
		assert.Contains(t, model.prompts[0], "win rate: 61.50%")
	})

	t.Run("rejects blank messages", func(t *testing.T) {
		uc := NewAdvisorUsecase(&mockChatModel{}, newMemoryConversationRepository())

		_, _, err := uc.Chat(context.Background(), "", "   ", nil)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("model failure maps to ErrModelUnavailable", func(t *testing.T) {
		model := &mockChatModel{
			generateFn: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}
		uc := NewAdvisorUsecase(model, newMemoryConversationRepository())

		_, _, err := uc.Chat(context.Background(), "", "hello", nil)
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})
}

func TestAdvisorUsecase_Analyze(t *testing.T) {
	model := &mockChatModel{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, "max drawdown: 12.30%") {
				t.Errorf("prompt missing drawdown context: %s", prompt)
			}
			return "solid risk control", nil
		},
	}
	uc := NewAdvisorUsecase(model, newMemoryConversationRepository())

	analysis, err := uc.Analyze(context.Background(), entity.PerformanceContext{MaxDrawdownPct: 12.3}, "")

	require.NoError(t, err)
	assert.Equal(t, "solid risk control", analysis)
}
