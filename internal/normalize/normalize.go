package normalize

import (
	"strings"

	"github.com/nao1215/scamscan/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer builds ContentUnits from job postings and social posts.
// A Normalizer is safe for concurrent use.
type Normalizer struct {
	stripHTML bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithStripHTML removes markup from job descriptions before joining.
// Descriptions scraped from job boards often arrive as HTML fragments.
func WithStripHTML(strip bool) Option {
	return func(n *Normalizer) {
		n.stripHTML = strip
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// JobText joins the posting fields in fixed order with single spaces and
// lowercases the result. Empty fields stay in place as empty strings.
func (n *Normalizer) JobText(job model.JobPosting) string {
	description := job.Description
	if n.stripHTML {
		description = StripHTML(description)
	}
	fields := []string{
		job.Title,
		description,
		job.Company,
		strings.Join(job.Requirements, " "),
		strings.Join(job.Responsibilities, " "),
		job.ContactEmail,
		job.ContactPhone,
		job.Website,
	}
	return Lower(strings.Join(fields, " "))
}

// FromJobPosting builds a ContentUnit for a job posting. A nil posting
// yields a unit without text, which analysis rejects as invalid input.
func (n *Normalizer) FromJobPosting(id string, job *model.JobPosting) model.ContentUnit {
	unit := model.ContentUnit{ID: id, Origin: model.OriginJobPosting}
	if job == nil {
		return unit
	}
	text := n.JobText(*job)
	unit.Text = &text
	body := job.Description
	if n.stripHTML {
		body = StripHTML(body)
	}
	unit.Body = &body
	return unit
}

// FromSocialPost builds a ContentUnit for a social post. Only the body
// text is analyzed; a nil body yields a unit without text.
func (n *Normalizer) FromSocialPost(id string, post *model.SocialPost) model.ContentUnit {
	unit := model.ContentUnit{ID: id, Origin: model.OriginSocialPost}
	if post == nil {
		return unit
	}
	unit.Platform = post.Platform
	unit.Engagement = post.Engagement
	if post.Text != nil {
		text := Lower(*post.Text)
		unit.Text = &text
	}
	return unit
}

// FromText builds a ContentUnit directly from raw text.
func (n *Normalizer) FromText(id string, origin model.Origin, raw string) model.ContentUnit {
	text := Lower(raw)
	return model.ContentUnit{ID: id, Origin: origin, Text: &text}
}

// Lower lowercases s with Unicode-aware case mapping.
// A Caser is stateful, so one is created per call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// StripHTML returns the text content of an HTML fragment with tags
// removed. Adjacent text nodes are separated by a single space and
// script and style contents are dropped.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var parts []string
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed fragment; keep what was read
			return strings.Join(parts, " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			if text := strings.TrimSpace(string(z.Text())); text != "" {
				parts = append(parts, text)
			}
		}
	}
}

func isRawTextTag(name string) bool {
	return name == "script" || name == "style"
}
