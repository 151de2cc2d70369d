package notifications

import "time"

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
)

type Position string

const (
	PositionTopCenter    Position = "top-center"
	PositionTopRight     Position = "top-right"
	PositionBottomCenter Position = "bottom-center"
	PositionBottomRight  Position = "bottom-right"
)

const (
	DefaultDuration = 4 * time.Second
	DefaultPosition = PositionTopCenter
)

// Toast is a transient message shown to one profile.
type Toast struct {
	ID        string        `json:"id"`
	ProfileID string        `json:"profile_id"`
	Type      Type          `json:"type"`
	Message   string        `json:"message"`
	Duration  time.Duration `json:"duration"`
	Position  Position      `json:"position"`
	CreatedAt time.Time     `json:"created_at"`
}

// ExpiresAt is when the toast should disappear from view.
func (t Toast) ExpiresAt() time.Time {
	return t.CreatedAt.Add(t.Duration)
}

// Expired reports whether the toast is no longer displayed at now.
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt())
}
