package model

import "fmt"

// Origin identifies where a piece of content came from. The origin selects
// which vocabulary, which pattern set and which fusion policy apply.
type Origin string

const (
	// OriginJobPosting marks content built from a job listing.
	OriginJobPosting Origin = "job_posting"
	// OriginSocialPost marks content built from a social-media post.
	OriginSocialPost Origin = "social_post"
)

// String returns the string representation of the Origin.
func (o Origin) String() string {
	return string(o)
}

// IsValid returns true if this is a known origin.
func (o Origin) IsValid() bool {
	switch o {
	case OriginJobPosting, OriginSocialPost:
		return true
	default:
		return false
	}
}

// ParseOrigin converts a string to an Origin. The short forms "job" and
// "social" are accepted for command-line convenience.
func ParseOrigin(s string) (Origin, error) {
	switch s {
	case "job_posting", "job":
		return OriginJobPosting, nil
	case "social_post", "social":
		return OriginSocialPost, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrigin, s)
	}
}
