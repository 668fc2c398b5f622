package model

import "unicode/utf8"

// Engagement holds the public interaction counters of a social post.
// Each counter is optional; a nil pointer means the platform did not
// report it, which is different from a reported zero.
type Engagement struct {
	Likes     *int `json:"likes,omitempty" yaml:"likes,omitempty"`
	Shares    *int `json:"shares,omitempty" yaml:"shares,omitempty"`
	Comments  *int `json:"comments,omitempty" yaml:"comments,omitempty"`
	Followers *int `json:"followers,omitempty" yaml:"followers,omitempty"`
}

// LikesPerFollower returns likes divided by followers. The second return
// value is false when either counter is missing or followers is zero, in
// which case the ratio carries no signal.
func (e *Engagement) LikesPerFollower() (float64, bool) {
	if e == nil || e.Likes == nil || e.Followers == nil || *e.Followers == 0 {
		return 0, false
	}
	return float64(*e.Likes) / float64(*e.Followers), true
}

// ContentUnit is the single input to risk analysis.
type ContentUnit struct {
	// ID is an optional caller-supplied identifier carried into the result.
	ID string `json:"id,omitempty"`

	// Origin selects the scoring policy.
	Origin Origin `json:"origin"`

	// Text is the normalized (lowercased, joined) text. A nil Text is
	// invalid input; an empty string is valid and scores zero.
	Text *string `json:"text"`

	// Platform is the social platform the post was published on.
	Platform SocialPlatform `json:"platform,omitempty"`

	// Engagement is only meaningful for social posts.
	Engagement *Engagement `json:"engagement,omitempty"`

	// Body is the caller-supplied free text Text was built from, set when
	// Text joins several fields (a job description). When nil, Text itself
	// is the body.
	Body *string `json:"-"`
}

// BodyLen returns the length in characters of the analyzable body, or zero
// if absent. Length limits apply to the body, not to joined fields.
func (u ContentUnit) BodyLen() int {
	switch {
	case u.Body != nil:
		return utf8.RuneCountInString(*u.Body)
	case u.Text != nil:
		return utf8.RuneCountInString(*u.Text)
	default:
		return 0
	}
}

// JobPosting is a job listing as supplied by the caller. Any field may be
// empty.
type JobPosting struct {
	Title            string   `json:"title" yaml:"title"`
	Description      string   `json:"description" yaml:"description"`
	Company          string   `json:"company" yaml:"company"`
	Requirements     []string `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty" yaml:"responsibilities,omitempty"`
	ContactEmail     string   `json:"contact_email,omitempty" yaml:"contact_email,omitempty"`
	ContactPhone     string   `json:"contact_phone,omitempty" yaml:"contact_phone,omitempty"`
	Website          string   `json:"website,omitempty" yaml:"website,omitempty"`
}

// SocialPost is a social-media post as supplied by the caller.
type SocialPost struct {
	Text       *string        `json:"text" yaml:"text"`
	Platform   SocialPlatform `json:"platform,omitempty" yaml:"platform,omitempty"`
	Author     string         `json:"author,omitempty" yaml:"author,omitempty"`
	Engagement *Engagement    `json:"engagement,omitempty" yaml:"engagement,omitempty"`
}
