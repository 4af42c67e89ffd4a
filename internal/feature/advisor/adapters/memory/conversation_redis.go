// Package memory stores advisor conversation history in Redis.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tradetracker/internal/feature/advisor/domain/entity"
	"tradetracker/internal/feature/advisor/usecase"
)

const (
	// maxStoredMessages bounds the per-session list length.
	maxStoredMessages = 50
	// conversationTTL expires idle conversations.
	conversationTTL = 24 * time.Hour
)

// ConversationRedis implements usecase.ConversationRepository on a Redis
// list per session. Appends trim the list from the left so only the most
// recent turns survive.
type ConversationRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check that ConversationRedis implements the repository.
var _ usecase.ConversationRepository = (*ConversationRedis)(nil)

// NewConversationRedis creates a new ConversationRedis instance.
func NewConversationRedis(client *redis.Client, prefix string) *ConversationRedis {
	return &ConversationRedis{client: client, prefix: prefix}
}

func (r *ConversationRedis) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, sessionID)
}

// Append pushes messages onto the session's history and refreshes its TTL.
// Without Redis the conversation simply has no memory.
func (r *ConversationRedis) Append(ctx context.Context, sessionID string, msgs ...entity.Message) error {
	if r.client == nil || len(msgs) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal message: %w", err)
		}
		values = append(values, data)
	}

	key := r.key(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -maxStoredMessages, -1)
	pipe.Expire(ctx, key, conversationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append conversation: %w", err)
	}
	return nil
}

// History returns up to limit most recent messages, oldest first. An
// unknown session yields an empty history, not an error.
func (r *ConversationRedis) History(ctx context.Context, sessionID string, limit int) ([]entity.Message, error) {
	if r.client == nil {
		return nil, nil
	}
	raw, err := r.client.LRange(ctx, r.key(sessionID), int64(-limit), -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read conversation: %w", err)
	}

	msgs := make([]entity.Message, 0, len(raw))
	for _, item := range raw {
		var m entity.Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
