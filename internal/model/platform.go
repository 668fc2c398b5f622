package model

import "strings"

// platformUnknownStr is the string representation for unknown platform values.
const platformUnknownStr = "unknown"

// SocialPlatform represents the social network a post was published on.
type SocialPlatform string

// Social media platform constants.
const (
	// SocialPlatformUnknown represents an unknown platform.
	SocialPlatformUnknown SocialPlatform = ""
	// SocialPlatformTwitter represents Twitter/X.
	SocialPlatformTwitter SocialPlatform = "twitter"
	// SocialPlatformFacebook represents Facebook.
	SocialPlatformFacebook SocialPlatform = "facebook"
	// SocialPlatformInstagram represents Instagram.
	SocialPlatformInstagram SocialPlatform = "instagram"
	// SocialPlatformLinkedIn represents LinkedIn.
	SocialPlatformLinkedIn SocialPlatform = "linkedin"
	// SocialPlatformTelegram represents Telegram.
	SocialPlatformTelegram SocialPlatform = "telegram"
	// SocialPlatformReddit represents Reddit.
	SocialPlatformReddit SocialPlatform = "reddit"
	// SocialPlatformTikTok represents TikTok.
	SocialPlatformTikTok SocialPlatform = "tiktok"
	// SocialPlatformYouTube represents YouTube.
	SocialPlatformYouTube SocialPlatform = "youtube"
	// SocialPlatformWhatsApp represents WhatsApp channels and groups.
	SocialPlatformWhatsApp SocialPlatform = "whatsapp"
)

// String returns the string representation of the SocialPlatform.
func (p SocialPlatform) String() string {
	if p == SocialPlatformUnknown {
		return platformUnknownStr
	}
	return string(p)
}

// IsValid returns true if this is a known platform.
func (p SocialPlatform) IsValid() bool {
	switch p {
	case SocialPlatformTwitter, SocialPlatformFacebook, SocialPlatformInstagram,
		SocialPlatformLinkedIn, SocialPlatformTelegram, SocialPlatformReddit,
		SocialPlatformTikTok, SocialPlatformYouTube, SocialPlatformWhatsApp:
		return true
	default:
		return false
	}
}

// ParseSocialPlatform converts a string to SocialPlatform.
// Matching is case-insensitive and a few common aliases are accepted.
func ParseSocialPlatform(s string) SocialPlatform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "twitter", "x":
		return SocialPlatformTwitter
	case "facebook", "fb":
		return SocialPlatformFacebook
	case "instagram", "ig":
		return SocialPlatformInstagram
	case "linkedin":
		return SocialPlatformLinkedIn
	case "telegram":
		return SocialPlatformTelegram
	case "reddit":
		return SocialPlatformReddit
	case "tiktok":
		return SocialPlatformTikTok
	case "youtube":
		return SocialPlatformYouTube
	case "whatsapp":
		return SocialPlatformWhatsApp
	default:
		return SocialPlatformUnknown
	}
}
