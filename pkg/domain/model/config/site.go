package config

// Site holds the page branding shown by the frontend. It never affects
// figure geometry; deployments only use it to put their own name on the
// page around the chart.
type Site struct {
	Title   string
	Heading string
}

// DefaultSite returns the branding used when no site configuration is
// given.
func DefaultSite() *Site {
	return &Site{
		Title:   "DMM",
		Heading: "Double Materiality Map",
	}
}
