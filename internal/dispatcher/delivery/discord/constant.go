package discord

import "time"

const (
	DefaultProcessTimeout = 10 * time.Minute

	logPrefix = "discord.handler"
)
