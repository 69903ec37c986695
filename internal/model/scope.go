package model

// Scope identifies who sent an inbound message and where it came from.
type Scope struct {
	UserID    string
	Username  string
	ChannelID string
	GuildID   string
	MessageID string
	RoleIDs   []string
}
