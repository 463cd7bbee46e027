// Package mentor talks to the text-generation backend behind the AI Mentor
// chat and keeps the chat log.
package mentor

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/sinaw-id/sinaw/internal/model"
)

// Service answers one learner question.
type Service interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// SystemInstruction sets the mentor persona for every request.
const SystemInstruction = `You are "AI Mentor" for SINAW, an e-learning platform focused on Digital Marketing. Your users are students, small business owners (UMKM), and beginners from Indonesia.
- Your tone should be encouraging, professional, and educational.
- Provide practical, actionable advice.
- Keep responses concise and easy to understand for a mobile chat interface.
- If asked about something outside digital marketing, gently steer the conversation back.
- Do not mention that you are an AI model. You are the AI Mentor.
- Your responses must be in Indonesian.`

// FallbackReply is shown in place of a reply when the backend fails.
const FallbackReply = "Maaf, terjadi sedikit kendala. Bisakah kamu mengulangi pertanyaanmu?"

// Greeting opens every new chat log.
const Greeting = "Halo! Saya AI Mentor. Ada yang bisa saya bantu seputar digital marketing hari ini?"

// Config selects and tunes the mentor backend.
type Config struct {
	APIKey      string
	Model       string
	Endpoint    string
	Temperature float64
	Rate        float64 // outbound requests per second, <= 0 disables limiting
	Burst       int
	DemoDelay   time.Duration
}

// NewService returns the live Gemini client when an API key is configured
// and the offline demo responder otherwise.
func NewService(cfg Config) Service {
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Printf("mentor: no API key configured, using demo replies")
		return NewDemoService(cfg.DemoDelay, nil)
	}
	log.Printf("mentor: using model %s", firstNonEmpty(cfg.Model, model.DefaultMentorModel))
	return NewGeminiClient(GeminiConfig{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Endpoint:    cfg.Endpoint,
		Temperature: cfg.Temperature,
		Rate:        cfg.Rate,
		Burst:       cfg.Burst,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
