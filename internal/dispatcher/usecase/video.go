package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/elliotchance/pie/v2"

	"discord-llm-bot/internal/model"
	"discord-llm-bot/internal/settings"
)

const videoMIMEType = "video/mp4"

var youtubeURL = regexp.MustCompile(
	`(https?://)?(www\.|m\.)?(youtube\.com|youtu\.be)/(watch\?v=[\w-]+(&\S+)?|shorts/[\w-]+|embed/[\w-]+|v/[\w-]+|[\w-]+)`,
)

// videoLinks returns the YouTube links in text and the text without them.
func videoLinks(text string) ([]string, string) {
	matches := youtubeURL.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil, text
	}

	prompt := text
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		prompt = strings.Replace(prompt, m, "", 1)
		if !strings.HasPrefix(m, "http") {
			m = "https://" + m
		}
		urls = append(urls, m)
	}
	return pie.UniqueStable(urls), strings.Join(strings.Fields(prompt), " ")
}

// userTurns returns the turn sent to the model and the turn kept in memory.
// A non-empty denial means the message carries videos the active model cannot watch.
func (uc *implUseCase) userTurns(state settings.State, text string) (send, store model.Turn, denial string) {
	send = model.UserTurn(text)
	if len(uc.videoCapableModels) == 0 {
		return send, send, ""
	}

	urls, prompt := videoLinks(text)
	if len(urls) == 0 {
		return send, send, ""
	}
	if !pie.Contains(uc.videoCapableModels, state.Model) {
		return send, send, videoDenial(state.Model, uc.videoCapableModels)
	}

	stored := "Video(s): " + strings.Join(urls, ", ")
	if prompt != "" {
		stored += "\nText: " + prompt
	} else {
		prompt = MsgDefaultVideoPrompt
	}

	send = model.Turn{Role: model.RoleUser, Content: prompt, Videos: urls}
	return send, model.UserTurn(stored), ""
}

func videoDenial(current string, capable []string) string {
	quoted := pie.Map(capable, func(m string) string { return "`" + m + "`" })
	return fmt.Sprintf(MsgVideoUnsupported, current, strings.Join(quoted, ", "))
}
