package wizard

import "github.com/imamik/stepform/internal/form"

// NotAvailable is shown on the review screen for empty values.
const NotAvailable = "N/A"

// ReviewEntry is one row of the review screen.
type ReviewEntry struct {
	Label string
	Value string
}

// Review builds the rows of the review screen for p.
func Review(p form.State) []ReviewEntry {
	return []ReviewEntry{
		{Label: "Full Name", Value: p.FullName()},
		{Label: "Email", Value: p.Email},
		{Label: "Occupation", Value: p.Occupation},
		{Label: "Company", Value: orNA(p.Company)},
		{Label: "Location", Value: p.City},
		{Label: "Website", Value: orNA(p.Website)},
		{Label: "LinkedIn", Value: orNA(p.LinkedIn)},
		{Label: "Bio", Value: p.Bio},
	}
}

func orNA(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
