package settings

import (
	"github.com/elliotchance/pie/v2"

	"discord-llm-bot/internal/model"
)

// Authorizer decides who may run privileged commands.
type Authorizer struct {
	userIDs []string
	roleIDs []string
}

func NewAuthorizer(userIDs, roleIDs []string) *Authorizer {
	return &Authorizer{userIDs: userIDs, roleIDs: roleIDs}
}

// IsAuthorized reports whether the user is listed or holds a listed role.
func (a *Authorizer) IsAuthorized(sc model.Scope) bool {
	if sc.UserID != "" && pie.Contains(a.userIDs, sc.UserID) {
		return true
	}
	return pie.Any(sc.RoleIDs, func(role string) bool {
		return pie.Contains(a.roleIDs, role)
	})
}
