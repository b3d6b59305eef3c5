package job

import (
	"fmt"
	"log"
	"strings"
)

// RawJob is a source-shaped record before normalization: arbitrary header
// names mapped to cell values, with skills carried separately when the
// source already delivered them as a list.
type RawJob struct {
	Fields map[string]string
	Skills []string
}

// NormalizeError reports a record that cannot become a Job. Callers drop
// the record and keep the load going.
type NormalizeError struct {
	Field string
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("normalize: required field %q missing", e.Field)
}

// Field aliases observed across source revisions. First present wins.
var (
	titleAliases    = []string{"job_title", "title"}
	companyAliases  = []string{"company", "company_name"}
	salaryAliases   = []string{"salary", "salary_range"}
	applyAliases    = []string{"application_url", "apply_link"}
	locationAliases = []string{"location"}
)

// Normalize resolves a raw record into the canonical Job. It fails when id,
// title or company cannot be resolved from any alias; everything else is
// optional and passes through as display text.
func Normalize(id string, raw RawJob) (Job, error) {
	if strings.TrimSpace(id) == "" {
		return Job{}, &NormalizeError{Field: "id"}
	}
	title := firstOf(raw.Fields, titleAliases)
	if title == "" {
		return Job{}, &NormalizeError{Field: "job_title"}
	}
	company := firstOf(raw.Fields, companyAliases)
	if company == "" {
		return Job{}, &NormalizeError{Field: "company"}
	}
	return Job{
		ID:                id,
		Title:             title,
		CompanyName:       company,
		Location:          firstOf(raw.Fields, locationAliases),
		SalaryDisplay:     firstOf(raw.Fields, salaryAliases),
		Description:       raw.Fields["description"],
		ApplicationURL:    firstOf(raw.Fields, applyAliases),
		Skills:            normalizeSkills(raw),
		YearsOfExperience: raw.Fields["years_of_experience"],
		ModeOfWorking:     raw.Fields["mode_of_working"],
		PostingDate:       raw.Fields["posting_date"],
		Category:          raw.Fields["category"],
		Industry:          raw.Fields["industry"],
	}, nil
}

// NormalizeAll converts a batch, dropping records that fail with a logged
// warning. A bad row never aborts the load.
func NormalizeAll(ids []string, raws []RawJob) []Job {
	out := make([]Job, 0, len(raws))
	for i, raw := range raws {
		var id string
		if i < len(ids) {
			id = ids[i]
		}
		j, err := Normalize(id, raw)
		if err != nil {
			log.Printf("warn: dropping record %d: %v", i+1, err)
			continue
		}
		out = append(out, j)
	}
	return out
}

func firstOf(fields map[string]string, aliases []string) string {
	for _, k := range aliases {
		if v := strings.TrimSpace(fields[k]); v != "" {
			return v
		}
	}
	return ""
}

// normalizeSkills prefers an already-split list; otherwise splits the raw
// cell on commas and trims each element. Absent skills yield an empty,
// non-nil slice so JSON renders [] rather than null.
func normalizeSkills(raw RawJob) []string {
	if raw.Skills != nil {
		return trimAll(raw.Skills)
	}
	cell := strings.TrimSpace(raw.Fields["skills"])
	if cell == "" {
		return []string{}
	}
	return trimAll(strings.Split(cell, ","))
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
