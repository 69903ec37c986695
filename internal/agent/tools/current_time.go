package tools

import (
	"context"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"discord-llm-bot/internal/agent"
	pkgLog "discord-llm-bot/pkg/log"
)

const DefaultTimezone = "UTC"

type GetCurrentTimeTool struct {
	defaultTimezone string
	now             func() time.Time
	l               pkgLog.Logger
}

func NewGetCurrentTimeTool(defaultTimezone string, l pkgLog.Logger) *GetCurrentTimeTool {
	if defaultTimezone == "" {
		defaultTimezone = DefaultTimezone
	}
	return &GetCurrentTimeTool{
		defaultTimezone: defaultTimezone,
		now:             time.Now,
		l:               l,
	}
}

func (t *GetCurrentTimeTool) Name() string {
	return "get_current_time"
}

func (t *GetCurrentTimeTool) Description() string {
	return "Get the current date and time in a given IANA timezone."
}

func (t *GetCurrentTimeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"timezone": map[string]interface{}{
				"type":        "string",
				"description": "IANA timezone name, e.g. 'Europe/Paris' or 'America/New_York'. Defaults to " + t.defaultTimezone + ".",
			},
		},
	}
}

type GetCurrentTimeInput struct {
	Timezone string `json:"timezone"`
}

type GetCurrentTimeOutput struct {
	Timezone string `json:"timezone"`
	Datetime string `json:"datetime"`
	Weekday  string `json:"weekday"`
}

func (t *GetCurrentTimeTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params GetCurrentTimeInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(params.Timezone)
	if tz == "" {
		tz = t.defaultTimezone
	}

	// time.LoadLocation accepts "Local", which would leak the host zone
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "Local" {
		return nil, fmt.Errorf("unknown timezone %q", tz)
	}

	now := t.now().In(loc)
	t.l.Debugf(ctx, "get_current_time: %s", tz)

	return GetCurrentTimeOutput{
		Timezone: tz,
		Datetime: now.Format(time.RFC3339),
		Weekday:  now.Weekday().String(),
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*GetCurrentTimeTool)(nil)
