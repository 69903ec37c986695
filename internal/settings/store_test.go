package settings

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-llm-bot/internal/model"
)

func TestStore_UpdateIsAtomic(t *testing.T) {
	store := NewStore(State{MaxTokens: 0})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(func(s *State) error {
				s.MaxTokens++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Snapshot().MaxTokens)
}

func TestStore_FailedUpdateLeavesStateUntouched(t *testing.T) {
	store := NewStore(State{Model: "a", Temperature: 1})

	state, err := store.Update(func(s *State) error {
		s.Model = "b"
		return errors.New("nope")
	})

	require.Error(t, err)
	assert.Equal(t, "a", state.Model)
	assert.Equal(t, "a", store.Snapshot().Model)
}

func TestAuthorizer(t *testing.T) {
	auth := NewAuthorizer([]string{"100"}, []string{"900"})

	tests := []struct {
		name  string
		scope model.Scope
		want  bool
	}{
		{"listed user", model.Scope{UserID: "100"}, true},
		{"listed role", model.Scope{UserID: "200", RoleIDs: []string{"800", "900"}}, true},
		{"stranger", model.Scope{UserID: "200", RoleIDs: []string{"800"}}, false},
		{"anonymous", model.Scope{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.IsAuthorized(tt.scope))
		})
	}
}
