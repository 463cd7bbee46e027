package model

import "time"

// Shared defaults used by both the terminal client and the API binaries.
const (
	DefaultSplashDuration    = 2 * time.Second
	DefaultDemoDelay         = 1500 * time.Millisecond
	DefaultMentorTimeout     = 45 * time.Second
	DefaultMentorModel       = "gemini-2.5-flash"
	DefaultMentorEndpoint    = "https://generativelanguage.googleapis.com/v1beta"
	DefaultMentorTemperature = 0.7
	DefaultMentorRate        = 1.0 // requests per second
	DefaultMentorBurst       = 3
)
