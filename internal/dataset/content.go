package dataset

import (
	"strconv"

	"github.com/nao1215/scamscan/internal/model"
	"github.com/nao1215/scamscan/internal/normalize"
)

// Record is one content item in a dataset file. Job postings either give
// the structured Job fields or a ready Text; social posts give Text.
type Record struct {
	ID         string            `json:"id,omitempty" yaml:"id,omitempty"`
	Origin     string            `json:"origin" yaml:"origin"`
	Text       *string           `json:"text,omitempty" yaml:"text,omitempty"`
	Platform   string            `json:"platform,omitempty" yaml:"platform,omitempty"`
	Author     string            `json:"author,omitempty" yaml:"author,omitempty"`
	Engagement *model.Engagement `json:"engagement,omitempty" yaml:"engagement,omitempty"`
	Job        *model.JobPosting `json:"job,omitempty" yaml:"job,omitempty"`
}

// LoadRecords reads content records from a JSON or YAML file.
func LoadRecords(path string) ([]Record, error) {
	data, format, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRecords(data, format)
}

// ParseRecords validates and decodes content records.
func ParseRecords(data []byte, format Format) ([]Record, error) {
	if err := validate("content.json", data, format); err != nil {
		return nil, err
	}
	var records []Record
	if err := decode(data, format, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Units converts records into content units. Records without an ID get
// their position as ID. An unknown origin is kept as given so that
// analysis reports it per record instead of rejecting the whole file.
func Units(records []Record, n *normalize.Normalizer) []model.ContentUnit {
	units := make([]model.ContentUnit, len(records))
	for i, rec := range records {
		id := rec.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		units[i] = rec.unit(id, n)
	}
	return units
}

func (rec Record) unit(id string, n *normalize.Normalizer) model.ContentUnit {
	origin, err := model.ParseOrigin(rec.Origin)
	if err != nil {
		return model.ContentUnit{ID: id, Origin: model.Origin(rec.Origin), Text: rec.Text}
	}

	switch origin {
	case model.OriginJobPosting:
		if rec.Job != nil {
			return n.FromJobPosting(id, rec.Job)
		}
		if rec.Text == nil {
			return model.ContentUnit{ID: id, Origin: origin}
		}
		return n.FromText(id, origin, *rec.Text)
	default:
		return n.FromSocialPost(id, &model.SocialPost{
			Text:       rec.Text,
			Platform:   model.ParseSocialPlatform(rec.Platform),
			Author:     rec.Author,
			Engagement: rec.Engagement,
		})
	}
}
