package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
	settingsUC "discord-llm-bot/internal/settings/usecase"
	"discord-llm-bot/pkg/log"
)

type fakeMemory struct {
	resets    []string
	resetAlls int
}

func (m *fakeMemory) Reset(ctx context.Context, userID string) { m.resets = append(m.resets, userID) }
func (m *fakeMemory) ResetAll(ctx context.Context)             { m.resetAlls++ }
func (m *fakeMemory) Users() int                               { return 2 }

var (
	admin    = model.Scope{UserID: "admin"}
	stranger = model.Scope{UserID: "stranger"}
)

func newRunner() (Runner, *settings.Store, *fakeMemory) {
	store := settings.NewStore(settings.State{
		ActiveProvider:   "groq",
		Model:            "llama-3.3-70b-versatile",
		Temperature:      1,
		MaxTokens:        1000,
		SystemPrompt:     "You are a helpful assistant.",
		InferenceEnabled: true,
		MemoryLimit:      5,
	})
	mem := &fakeMemory{}
	uc := settingsUC.New(store, settings.NewAuthorizer([]string{"admin"}, nil), mem, log.NewNop())
	return NewRunner(uc, log.NewNop()), store, mem
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantOK bool
		want   Command
		err    error
	}{
		{"plain chat", "hello there", false, Command{}, nil},
		{"unknown command is chat", "!weather today", false, Command{}, nil},
		{"no args", "!toggle_llm", true, Command{Name: NameToggleLLM, Args: []string{}}, nil},
		{"case insensitive", "  !SET_TEMP 0.7 ", true, Command{Name: NameSetTemp, Args: []string{"0.7"}}, nil},
		{"quoted prompt", `!set_system_prompt "You are a pirate. Talk like one."`, true,
			Command{Name: NameSetSystemPrompt, Args: []string{"You are a pirate. Talk like one."}}, nil},
		{"broken quote", `!set_system_prompt "unterminated`, true, Command{Name: NameSetSystemPrompt}, ErrInvalidSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok, err := Parse(tt.text, "!")

			assert.Equal(t, tt.wantOK, ok)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Equal(t, tt.want.Name, cmd.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, cmd.Name)
			assert.ElementsMatch(t, tt.want.Args, cmd.Args)
		})
	}
}

func TestRun_Unauthorized(t *testing.T) {
	for _, name := range Names {
		if name == NameResetMemory {
			continue
		}
		t.Run(name, func(t *testing.T) {
			r, store, mem := newRunner()
			before := store.Snapshot()

			reply, err := r.Run(context.Background(), stranger, Command{Name: name, Args: []string{"1"}})

			assert.ErrorIs(t, err, settings.ErrUnauthorized)
			assert.Equal(t, MsgUnauthorized, reply)
			assert.Equal(t, before, store.Snapshot())
			assert.Zero(t, mem.resetAlls)
		})
	}
}

func TestRun_Commands(t *testing.T) {
	tests := []struct {
		name  string
		cmd   Command
		reply string
		check func(t *testing.T, s settings.State)
	}{
		{"toggle", Command{Name: NameToggleLLM}, "LLM is now disabled.",
			func(t *testing.T, s settings.State) { assert.False(t, s.InferenceEnabled) }},
		{"select provider", Command{Name: NameSelectProvider, Args: []string{"Gemini"}}, "LLM provider changed to: gemini (model `gemini-2.5-pro`)",
			func(t *testing.T, s settings.State) { assert.Equal(t, "gemini", s.ActiveProvider) }},
		{"set model", Command{Name: NameSetModel, Args: []string{"gemma2-9b-it"}}, "Model set to `gemma2-9b-it`.",
			func(t *testing.T, s settings.State) { assert.Equal(t, "gemma2-9b-it", s.Model) }},
		{"set temp", Command{Name: NameSetTemp, Args: []string{"0.7"}}, "temp updated to: 0.7",
			func(t *testing.T, s settings.State) { assert.Equal(t, 0.7, s.Temperature) }},
		{"set max tokens", Command{Name: NameSetMaxTokens, Args: []string{"256"}}, "max tokens updated to: 256",
			func(t *testing.T, s settings.State) { assert.Equal(t, 256, s.MaxTokens) }},
		{"set memory", Command{Name: NameSetMemory, Args: []string{"3"}}, "memory updated to: 3",
			func(t *testing.T, s settings.State) { assert.Equal(t, 3, s.MemoryLimit) }},
		{"set prompt", Command{Name: NameSetSystemPrompt, Args: []string{"Be", "terse."}}, "System prompt updated to: Be terse.",
			func(t *testing.T, s settings.State) { assert.Equal(t, "Be terse.", s.SystemPrompt) }},
		{"toggle image", Command{Name: NameToggleImageGen}, "Image generation is now enabled.",
			func(t *testing.T, s settings.State) { assert.True(t, s.ImageGeneration) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store, _ := newRunner()

			reply, err := r.Run(context.Background(), admin, tt.cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.reply, reply)
			tt.check(t, store.Snapshot())
		})
	}
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		cmd    Command
		prefix string
	}{
		{"provider", Command{Name: NameSelectProvider, Args: []string{"openai"}}, "Invalid provider. Available providers: groq, gemini"},
		{"model", Command{Name: NameSetModel, Args: []string{"gpt-4"}}, `Invalid model: "gpt-4" is not available for groq`},
		{"temperature range", Command{Name: NameSetTemp, Args: []string{"3"}}, "Invalid value: temperature must be between 0 and 2"},
		{"temperature text", Command{Name: NameSetTemp, Args: []string{"hot"}}, `Invalid value: "hot" is not a number`},
		{"memory", Command{Name: NameSetMemory, Args: []string{"0"}}, "Invalid value: memory must be at least 1"},
		{"max tokens", Command{Name: NameSetMaxTokens, Args: []string{"1.5"}}, `Invalid value: "1.5" is not a whole number`},
		{"missing argument", Command{Name: NameSetModel}, "Usage: set_model <model>"},
		{"unknown", Command{Name: "dance"}, "Unknown command."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store, mem := newRunner()
			before := store.Snapshot()

			reply, err := r.Run(context.Background(), admin, tt.cmd)

			require.Error(t, err)
			assert.True(t, strings.HasPrefix(reply, tt.prefix), "reply %q", reply)
			assert.Equal(t, before, store.Snapshot())
			assert.Zero(t, mem.resetAlls)
		})
	}
}

func TestRun_CurrentSettings(t *testing.T) {
	r, _, _ := newRunner()

	reply, err := r.Run(context.Background(), admin, Command{Name: NameCurrentSettings})

	require.NoError(t, err)
	assert.Contains(t, reply, "Model: llama-3.3-70b-versatile")
	assert.Contains(t, reply, "Context Messages: 5")
	assert.Contains(t, reply, "Max Tokens: 1000")
	assert.Contains(t, reply, "Temperature: 1\n")
	assert.Contains(t, reply, "Users With Memory: 2")
}

func TestRun_ResetMemoryNeedsNoAuth(t *testing.T) {
	r, _, mem := newRunner()

	reply, err := r.Run(context.Background(), stranger, Command{Name: NameResetMemory})

	require.NoError(t, err)
	assert.Equal(t, MsgMemoryCleared, reply)
	assert.Equal(t, []string{"stranger"}, mem.resets)
}

func TestHandle(t *testing.T) {
	r, store, _ := newRunner()
	ctx := context.Background()

	_, handled, err := r.Handle(ctx, admin, "what is the weather?", "!")
	require.NoError(t, err)
	assert.False(t, handled)

	reply, handled, err := r.Handle(ctx, admin, `!set_system_prompt "Talk like a pirate."`, "!")
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "System prompt updated to: Talk like a pirate.", reply)
	assert.Equal(t, "Talk like a pirate.", store.Snapshot().SystemPrompt)

	reply, handled, err = r.Handle(ctx, admin, `!set_system_prompt "oops`, "!")
	assert.ErrorIs(t, err, ErrInvalidSyntax)
	assert.True(t, handled)
	assert.True(t, strings.HasPrefix(reply, "Could not parse that command"))
}
