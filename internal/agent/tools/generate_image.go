package tools

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/google/uuid"

	"discord-llm-bot/internal/agent"
	"discord-llm-bot/pkg/gemini"
	pkgLog "discord-llm-bot/pkg/log"
)

// ImageGenerator is the part of the Gemini client used to draw pictures.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, model, prompt string) (*gemini.Image, error)
}

type GenerateImageTool struct {
	generator ImageGenerator
	model     string
	l         pkgLog.Logger
}

func NewGenerateImageTool(generator ImageGenerator, model string, l pkgLog.Logger) *GenerateImageTool {
	if model == "" {
		model = gemini.DefaultImageModel
	}
	return &GenerateImageTool{generator: generator, model: model, l: l}
}

func (t *GenerateImageTool) Name() string {
	return agent.ToolNameGenerateImage
}

func (t *GenerateImageTool) Description() string {
	return "Generate an image from a text description. The image is attached to the reply."
}

func (t *GenerateImageTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"prompt": map[string]interface{}{
				"type":        "string",
				"description": "Detailed description of the image to draw",
			},
		},
		"required": []string{"prompt"},
	}
}

type GenerateImageInput struct {
	Prompt string `json:"prompt"`
}

// GenerateImageOutput carries the picture as an attachment and reports only text to the model.
type GenerateImageOutput struct {
	Text       string
	Attachment agent.Attachment
}

func (o GenerateImageOutput) Attachments() []agent.Attachment {
	return []agent.Attachment{o.Attachment}
}

func (o GenerateImageOutput) Summary() interface{} {
	return map[string]interface{}{
		"status":     "image generated and attached to the reply",
		"attachment": o.Attachment.Name,
		"text":       o.Text,
	}
}

func (t *GenerateImageTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params GenerateImageInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	params.Prompt = strings.TrimSpace(params.Prompt)
	if params.Prompt == "" {
		return nil, fmt.Errorf("prompt parameter is required")
	}

	img, err := t.generator.GenerateImage(ctx, t.model, params.Prompt)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	name := uuid.NewString() + extensionFor(mimeType)
	t.l.Infof(ctx, "generate_image: %d bytes as %s", len(img.Data), name)

	return GenerateImageOutput{
		Text: img.Text,
		Attachment: agent.Attachment{
			Name:     name,
			MIMEType: mimeType,
			Data:     img.Data,
		},
	}, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".png"
}

// Verify interface compliance
var (
	_ agent.Tool             = (*GenerateImageTool)(nil)
	_ agent.AttachmentResult = GenerateImageOutput{}
)
