package jobsite

// JobPosting holds the structured fields extracted from a job-posting page.
// It is immutable once produced by an extractor.
type JobPosting struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
	SiteType    Site   `json:"site_type"`
}

// HasUsableDescription reports whether the description clears the minimum
// length gate.
func (p *JobPosting) HasUsableDescription() bool {
	return len(p.Description) >= MinDescriptionLength
}
