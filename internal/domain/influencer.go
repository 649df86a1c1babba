package domain

import (
	"time"

	"github.com/lib/pq"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

// Platforms a creator can declare at registration. FACEBOOK is accepted only
// as a directory filter value; there is no creation path for it.
const (
	PlatformInstagram = "INSTAGRAM"
	PlatformTikTok    = "TIKTOK"
	PlatformYouTube   = "YOUTUBE"
	PlatformFacebook  = "FACEBOOK"
)

// IsRegistrablePlatform reports whether a platform value can appear on a new
// social account entry.
func IsRegistrablePlatform(p string) bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube:
		return true
	}
	return false
}

type Influencer struct {
	ID                  string           `json:"id" db:"id"`
	Name                string           `json:"name" db:"name"`
	Email               string           `json:"email" db:"email"`
	Phone               *string          `json:"phone" db:"phone"`
	Photo               *string          `json:"photo" db:"photo"`
	Bio                 *string          `json:"bio" db:"bio"`
	Niche               string           `json:"niche" db:"niche"`
	Department          string           `json:"department" db:"department"`
	Age                 *int             `json:"age" db:"age"`
	AudienceGender      *string          `json:"audienceGender" db:"audience_gender"`
	AudienceAgeRange    *string          `json:"audienceAgeRange" db:"audience_age_range"`
	HasProfessionalTeam bool             `json:"hasProfessionalTeam" db:"has_professional_team"`
	InfluencerType      *string          `json:"influencerType" db:"influencer_type"`
	Collaborations      pq.StringArray   `json:"collaborations" db:"collaborations"`
	Status              Status           `json:"status" db:"status"`
	CreatedAt           time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time        `json:"updatedAt" db:"updated_at"`
	Platforms           []SocialPlatform `json:"platforms" db:"-"`
}

// SocialPlatform is one social account entry owned by an Influencer. Rows are
// created only together with their parent and removed by cascade on delete.
type SocialPlatform struct {
	ID             string    `json:"id" db:"id"`
	InfluencerID   string    `json:"influencerId" db:"influencer_id"`
	Platform       string    `json:"platform" db:"platform"`
	Username       string    `json:"username" db:"username"`
	Followers      int       `json:"followers" db:"followers"`
	EngagementRate float64   `json:"engagementRate" db:"engagement_rate"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
