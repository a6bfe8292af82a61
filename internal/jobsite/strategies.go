package jobsite

// MinDescriptionLength is the usability floor for an extracted description.
// Anything shorter is treated as an extraction failure, not a sparse result.
const MinDescriptionLength = 50

// Strategy is one prioritized selector lookup for a field. Strategies are
// evaluated in order; the first non-empty, length-qualifying match wins.
// Keeping these data-driven lets new site variants be added without
// touching extraction control flow.
type Strategy struct {
	// Selector is the CSS selector to try.
	Selector string
	// Attr names an attribute to read instead of text content. Empty means
	// text content.
	Attr string
}

// FieldStrategies holds the ordered selector lists for each extracted field.
type FieldStrategies struct {
	Title       []Strategy
	Company     []Strategy
	Description []Strategy
}

// linkedInStrategies cover both authenticated and anonymous markup, which
// differ substantially. Anonymous selectors first since the headless path
// is usually logged out.
var linkedInStrategies = FieldStrategies{
	Title: []Strategy{
		{Selector: ".top-card-layout__title"},
		{Selector: ".topcard__title"},
		{Selector: ".job-details-jobs-unified-top-card__job-title h1"},
		{Selector: ".jobs-unified-top-card__job-title"},
		{Selector: "h1"},
	},
	Company: []Strategy{
		{Selector: "a.topcard__org-name-link"},
		{Selector: ".topcard__org-name-link"},
		{Selector: ".job-details-jobs-unified-top-card__company-name a"},
		{Selector: ".job-details-jobs-unified-top-card__company-name"},
		{Selector: ".jobs-unified-top-card__company-name"},
		{Selector: ".topcard__flavor"},
	},
	Description: []Strategy{
		{Selector: ".show-more-less-html__markup"},
		{Selector: ".description__text"},
		{Selector: "#job-details"},
		{Selector: ".jobs-description__content"},
		{Selector: ".jobs-box__html-content"},
		{Selector: ".jobs-description"},
	},
}

var indeedStrategies = FieldStrategies{
	Title: []Strategy{
		{Selector: "h1.jobsearch-JobInfoHeader-title"},
		{Selector: "[data-testid='jobsearch-JobInfoHeader-title']"},
		{Selector: "h1"},
	},
	Company: []Strategy{
		{Selector: "[data-testid='inlineHeader-companyName'] a"},
		{Selector: "[data-testid='inlineHeader-companyName']"},
		{Selector: "[data-company-name='true']"},
		{Selector: ".jobsearch-InlineCompanyRating div"},
	},
	Description: []Strategy{
		{Selector: "#jobDescriptionText"},
		{Selector: ".jobsearch-jobDescriptionText"},
		{Selector: ".jobsearch-JobComponent-description"},
	},
}

var glassdoorStrategies = FieldStrategies{
	Title: []Strategy{
		{Selector: "[data-test='job-title']"},
		{Selector: ".JobDetails_jobTitle__Rw_gn"},
		{Selector: "h1"},
	},
	Company: []Strategy{
		{Selector: "[data-test='employer-name']"},
		{Selector: ".EmployerProfile_employerName__Xemli"},
		{Selector: "[class*='EmployerProfile_employerName']"},
	},
	Description: []Strategy{
		{Selector: ".JobDetails_jobDescription__uW_fK"},
		{Selector: "[class*='JobDetails_jobDescription']"},
		{Selector: ".jobDescriptionContent"},
		{Selector: "#JobDescriptionContainer"},
	},
}

var monsterStrategies = FieldStrategies{
	Title: []Strategy{
		{Selector: "[data-testid='jobTitle']"},
		{Selector: "h1.job-title"},
		{Selector: "h1"},
	},
	Company: []Strategy{
		{Selector: "[data-testid='company']"},
		{Selector: ".job-company-name"},
		{Selector: "[class*='company-name']"},
	},
	Description: []Strategy{
		{Selector: "[data-testid='svx-description-container']"},
		{Selector: ".job-description"},
		{Selector: "[class*='description-container']"},
	},
}

var zipRecruiterStrategies = FieldStrategies{
	Title: []Strategy{
		{Selector: "h1.job_title"},
		{Selector: "[class*='job_title']"},
		{Selector: "h1"},
	},
	Company: []Strategy{
		{Selector: "a.hiring_company"},
		{Selector: ".hiring_company_text"},
		{Selector: "[class*='hiring_company']"},
	},
	Description: []Strategy{
		{Selector: ".job_description"},
		{Selector: "[class*='job_description']"},
		{Selector: "[class*='jobDescriptionSection']"},
	},
}

// genericStrategies are the last-resort heuristics for unrecognized boards.
var genericStrategies = FieldStrategies{
	Title: []Strategy{
		{Selector: "h1"},
		{Selector: "[class*='job-title']"},
		{Selector: "[class*='jobTitle']"},
		{Selector: "title"},
	},
	Company: []Strategy{
		{Selector: "[class*='company-name']"},
		{Selector: "[class*='companyName']"},
		{Selector: "[class*='employer']"},
		{Selector: "[itemprop='hiringOrganization']"},
	},
	Description: []Strategy{
		{Selector: "[class*='job-description']"},
		{Selector: "[class*='jobDescription']"},
		{Selector: "[id*='job-description']"},
		{Selector: "[itemprop='description']"},
		{Selector: "main"},
		{Selector: "article"},
	},
}

// StrategiesFor returns the ordered selector lists for a site.
func StrategiesFor(site Site) FieldStrategies {
	switch site {
	case SiteLinkedIn:
		return linkedInStrategies
	case SiteIndeed:
		return indeedStrategies
	case SiteGlassdoor:
		return glassdoorStrategies
	case SiteMonster:
		return monsterStrategies
	case SiteZipRecruiter:
		return zipRecruiterStrategies
	default:
		return genericStrategies
	}
}
