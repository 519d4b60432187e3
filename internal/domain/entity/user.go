package entity

import (
	"time"

	"github.com/google/uuid"
)

// Link platforms allowed on a user profile.
const (
	PlatformLinkedIn = "linkedin"
	PlatformGitHub   = "github"
	PlatformTwitter  = "twitter"
	PlatformPersonal = "personal"
	PlatformOther    = "other"
)

// Link is a single external profile link, stored as jsonb on the user row.
type Link struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// User is the owning identity for all vault entries.
// The demo deployment keeps at most one row, lazily created on first
// profile access.
type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Links     []Link    `json:"links"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
