package model

import "strings"

// Tier is the subscription level attached to a user.
type Tier string

const (
	TierFree  Tier = "Free"
	TierBasic Tier = "Basic"
	TierPro   Tier = "Pro"
)

// User is the authenticated learner shown on the profile screen.
type User struct {
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
	Avatar string `json:"avatar" yaml:"avatar"`
	Tier   Tier   `json:"subscription_status" yaml:"subscription_status"`
}

// FirstName returns the first word of the display name, used in greetings.
func (u User) FirstName() string {
	first, _, _ := strings.Cut(strings.TrimSpace(u.Name), " ")
	return first
}

// Video is one lesson inside a course.
type Video struct {
	Title    string `json:"title" yaml:"title"`
	Duration string `json:"duration" yaml:"duration"`
	VideoURL string `json:"video_url,omitempty" yaml:"video_url,omitempty"`
}

// Course is a catalog entry with its ordered lesson list.
type Course struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Category    string  `json:"category" yaml:"category"`
	Thumbnail   string  `json:"thumbnail" yaml:"thumbnail"`
	Description string  `json:"description" yaml:"description"`
	Videos      []Video `json:"videos" yaml:"videos"`
}

// Plan is a subscription offer on the plan picker.
type Plan struct {
	Name      string   `json:"name" yaml:"name"`
	Price     string   `json:"price" yaml:"price"`
	Features  []string `json:"features" yaml:"features"`
	Highlight bool     `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one entry of the mentor chat log.
type ChatMessage struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}
