package memory

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/pkg/log"
)

// Store keeps one bounded conversation history per user.
type Store struct {
	mu        sync.Mutex
	histories *expirable.LRU[string, []model.Turn]
	state     StateReader
	l         log.Logger
}

// New creates a Store. Memory limit and system prompt are read from state on every call.
func New(state StateReader, cfg Config, l log.Logger) *Store {
	s := &Store{state: state, l: l}
	s.histories = expirable.NewLRU[string, []model.Turn](cfg.MaxUsers, s.onEvict, cfg.TTL)
	return s
}

// GetOrCreate returns a copy of the user's history, seeding a new one with the current system prompt.
func (s *Store) GetOrCreate(ctx context.Context, userID string) []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.getOrCreate(userID))
}

// Append adds turns to the user's history and trims it to the current memory limit.
func (s *Store) Append(ctx context.Context, userID string, turns ...model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.getOrCreate(userID), turns...)
	before := len(history)
	history = Trim(history, s.state.Snapshot().MemoryLimit)
	if dropped := before - len(history); dropped > 0 {
		s.l.Debug(ctx, "memory.Append: trimmed history", "user_id", userID, "dropped", dropped)
	}
	s.histories.Add(userID, history)
}

// Reset forgets one user's history.
func (s *Store) Reset(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.histories.Remove(userID)
}

// ResetAll forgets every history.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.histories.Len()
	s.histories.Purge()
	s.l.Info(ctx, "memory.ResetAll: histories cleared", "users", n)
}

// Len returns the number of turns stored for userID, system turn included.
func (s *Store) Len(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, _ := s.histories.Peek(userID)
	return len(history)
}

// Users returns the number of users with a live history.
func (s *Store) Users() int {
	return s.histories.Len()
}

func (s *Store) getOrCreate(userID string) []model.Turn {
	if history, ok := s.histories.Get(userID); ok {
		return history
	}
	history := []model.Turn{model.SystemTurn(s.state.Snapshot().SystemPrompt)}
	s.histories.Add(userID, history)
	return history
}

func (s *Store) onEvict(userID string, history []model.Turn) {
	s.l.Debug(context.Background(), "memory: history evicted", "user_id", userID, "turns", len(history))
}

// Trim drops the oldest non-system turns until at most 2*limit remain.
// Tool traffic left at the front of the window is dropped too, so the kept turns never
// open with a function call or a result whose call is gone.
// The leading system turn is always kept.
func Trim(history []model.Turn, limit int) []model.Turn {
	if limit < 1 {
		limit = 1
	}

	start := 0
	if len(history) > 0 && history[0].IsSystem() {
		start = 1
	}

	excess := len(history) - start - 2*limit
	if excess <= 0 {
		return history
	}

	cut := start + excess
	for cut < len(history) && isToolTraffic(history[cut]) {
		cut++
	}

	trimmed := make([]model.Turn, 0, len(history)-cut+start)
	trimmed = append(trimmed, history[:start]...)
	return append(trimmed, history[cut:]...)
}

func isToolTraffic(t model.Turn) bool {
	return t.Role == model.RoleTool || (t.Role == model.RoleAssistant && len(t.ToolCalls) > 0)
}

func clone(history []model.Turn) []model.Turn {
	out := make([]model.Turn, len(history))
	copy(out, history)
	return out
}
