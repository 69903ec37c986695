package http

import (
	"strings"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings/delivery/command"
)

type commandReq struct {
	UserID  string   `json:"user_id" binding:"required"`
	RoleIDs []string `json:"role_ids"`
	Command string   `json:"command" binding:"required"`
	Args    []string `json:"args"`
}

func (r commandReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID, RoleIDs: r.RoleIDs}
}

func (r commandReq) toCommand() command.Command {
	return command.Command{
		Name: strings.ToLower(strings.TrimSpace(r.Command)),
		Args: r.Args,
	}
}

type commandResp struct {
	Reply string `json:"reply"`
}
