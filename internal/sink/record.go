package sink

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/imamik/stepform/internal/form"
)

// Record is the envelope written for every submission.
type Record struct {
	ID          string     `yaml:"id"`
	SubmittedAt time.Time  `yaml:"submitted_at"`
	Profile     form.State `yaml:"profile"`
}

// Namer is implemented by sinks that have a short name for logs and metrics.
type Namer interface {
	Name() string
}

// stamp holds the id and clock sources shared by the record-writing sinks.
type stamp struct {
	now   func() time.Time
	newID func() string
}

func defaultStamp() stamp {
	return stamp{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

func (s stamp) record(p form.State) Record {
	return Record{
		ID:          s.newID(),
		SubmittedAt: s.now().UTC(),
		Profile:     p,
	}
}

// FileName is the object/file name of a record: timestamp then id.
func (r Record) FileName() string {
	return fmt.Sprintf("%s-%s.yaml", r.SubmittedAt.UTC().Format("20060102T150405Z"), r.ID)
}

// Marshal renders the record as a YAML document with a comment header.
func (r Record) Marshal() ([]byte, error) {
	body, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(r))
	sb.WriteString("\n")
	sb.Write(body)
	return []byte(sb.String()), nil
}

// ParseRecord decodes a document written by Marshal.
func ParseRecord(data []byte) (Record, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("failed to parse record: %w", err)
	}
	return r, nil
}

func generateHeader(r Record) string {
	return fmt.Sprintf(`# stepform profile submission
# Generated by: stepform
# Submitted at: %s
# Submission ID: %s
`, r.SubmittedAt.Format(time.RFC3339), r.ID)
}
