package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sourcegraph/conc/panics"

	"discord-llm-bot/internal/dispatcher"
	"discord-llm-bot/internal/model"
	pkgDiscord "discord-llm-bot/pkg/discord"
	pkgResponse "discord-llm-bot/pkg/response"
)

// HandleWebhook acknowledges the event at once and processes it in the background.
// @Summary Discord message event
// @Description Receives a MESSAGE_CREATE event relayed from the gateway. Processing is asynchronous.
// @Tags Discord
// @Accept json
// @Produce json
// @Param X-Signature-256 header string true "sha256=<hex HMAC of timestamp and body>"
// @Param X-Signature-Timestamp header string true "Unix seconds"
// @Param event body pkgDiscord.MessageEvent true "Message event"
// @Success 200 {object} pkgResponse.Resp
// @Failure 400 {object} pkgResponse.Resp
// @Failure 401 {object} pkgResponse.Resp
// @Router /webhook/discord [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var ev pkgDiscord.MessageEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		h.l.Warn(ctx, logPrefix+": invalid event", "error", err.Error())
		pkgResponse.Error(c, err, nil)
		return
	}

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()

		// Detached from the request, which ends with the ack
		bgCtx, cancel := context.WithTimeout(context.Background(), h.cfg.ProcessTimeout)
		defer cancel()

		var pc panics.Catcher
		pc.Try(func() { h.process(bgCtx, ev) })
		if r := pc.Recovered(); r != nil {
			h.l.Error(bgCtx, logPrefix+": panic while processing event",
				"message_id", ev.ID,
				"panic", r.String(),
			)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Wait() {
	h.inflight.Wait()
}

func (h *handler) process(ctx context.Context, ev pkgDiscord.MessageEvent) {
	if ev.Author.Bot || ev.Author.ID == h.cfg.BotUserID {
		return
	}
	if !h.addressed(ev) {
		return
	}

	sc := scopeOf(ev)
	text := h.stripMention(ev.Content)

	if !h.limiter.Allow(sc.UserID) {
		h.l.Warn(ctx, logPrefix+": rate limit exceeded", "user_id", sc.UserID, "channel_id", sc.ChannelID)
		return
	}

	if reply, handled, _ := h.commands.Handle(ctx, sc, text, h.cfg.CommandPrefix); handled {
		h.send(ctx, sc, reply, ev.ID)
		return
	}

	if strings.TrimSpace(text) == "" {
		return
	}

	if err := h.bot.TriggerTyping(ctx, sc.ChannelID); err != nil {
		h.logTransport(ctx, sc, err)
	}

	for _, d := range h.dispatchers {
		out, err := d.HandleInbound(ctx, sc, text)
		if err != nil {
			h.l.Warn(ctx, logPrefix+": dispatch aborted",
				"provider", d.Provider(),
				"user_id", sc.UserID,
				"error", err.Error(),
			)
			continue
		}
		if out.Empty() {
			continue
		}
		h.deliver(ctx, sc, out, ev.ID)
	}
}

// addressed reports whether ev mentions the bot or replies to one of its messages.
func (h *handler) addressed(ev pkgDiscord.MessageEvent) bool {
	botID := h.cfg.BotUserID
	if botID == "" {
		return false
	}
	for _, u := range ev.Mentions {
		if u.ID == botID {
			return true
		}
	}
	if strings.Contains(ev.Content, "<@"+botID+">") || strings.Contains(ev.Content, "<@!"+botID+">") {
		return true
	}
	return ev.ReferencedMessage != nil && ev.ReferencedMessage.Author.ID == botID
}

func (h *handler) stripMention(content string) string {
	botID := h.cfg.BotUserID
	content = strings.ReplaceAll(content, "<@!"+botID+">", "")
	content = strings.ReplaceAll(content, "<@"+botID+">", "")
	return strings.TrimSpace(content)
}

// deliver sends chunks in order. Attachments ride on the first message.
// A failed send is logged and the rest still go out.
func (h *handler) deliver(ctx context.Context, sc model.Scope, out dispatcher.Output, replyTo string) {
	chunks := out.Chunks
	if len(chunks) == 0 {
		chunks = []string{""}
	}

	for i, chunk := range chunks {
		ref := ""
		if i == 0 {
			ref = replyTo
		}

		var err error
		if i == 0 && len(out.Attachments) > 0 {
			_, err = h.bot.SendFiles(ctx, sc.ChannelID, chunk, ref, toFiles(out))
		} else {
			_, err = h.bot.SendMessage(ctx, sc.ChannelID, chunk, ref)
		}
		if err != nil {
			h.logTransport(ctx, sc, err)
		}
	}
}

func (h *handler) send(ctx context.Context, sc model.Scope, text, replyTo string) {
	if _, err := h.bot.SendMessage(ctx, sc.ChannelID, text, replyTo); err != nil {
		h.logTransport(ctx, sc, err)
	}
}

func (h *handler) logTransport(ctx context.Context, sc model.Scope, err error) {
	status := 0
	var te *pkgDiscord.TransportError
	if errors.As(err, &te) {
		status = te.StatusCode
	}
	h.l.Error(ctx, logPrefix+": send failed",
		"channel_id", sc.ChannelID,
		"user_id", sc.UserID,
		"status", status,
		"error", err.Error(),
	)
}

func scopeOf(ev pkgDiscord.MessageEvent) model.Scope {
	sc := model.Scope{
		UserID:    ev.Author.ID,
		Username:  ev.Author.Username,
		ChannelID: ev.ChannelID,
		GuildID:   ev.GuildID,
		MessageID: ev.ID,
	}
	if ev.Member != nil {
		sc.RoleIDs = ev.Member.Roles
	}
	return sc
}

func toFiles(out dispatcher.Output) []pkgDiscord.File {
	files := make([]pkgDiscord.File, len(out.Attachments))
	for i, a := range out.Attachments {
		files[i] = pkgDiscord.File{Name: a.Name, ContentType: a.MIMEType, Data: a.Data}
	}
	return files
}
