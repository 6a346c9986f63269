package model

// Experience is one entry of the experience timeline.
type Experience struct {
	Period      string `yaml:"period"`
	Role        string `yaml:"role"`
	Place       string `yaml:"place"`
	Description string `yaml:"description"`
}

// Tool is a skill shown in the tools showcase.
type Tool struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// Reference is an entry of the links and references section.
type Reference struct {
	Icon    string `yaml:"icon"`
	Title   string `yaml:"title"`
	Context string `yaml:"context,omitempty"`
	URL     string `yaml:"url"`
}

// ExternalLink is a plain outbound link.
type ExternalLink struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Landing is the static content of the landing page.
type Landing struct {
	SiteName string   `yaml:"site_name"`
	Rotator  []string `yaml:"rotator"`
	Header   struct {
		Title string `yaml:"title"`
		Text  string `yaml:"text"`
	} `yaml:"header"`
	Experience         []Experience `yaml:"experience"`
	Tools              []Tool       `yaml:"tools"`
	LinksAndReferences []Reference  `yaml:"links_and_references"`
	Music              struct {
		Alias string         `yaml:"alias"`
		Links []ExternalLink `yaml:"links"`
	} `yaml:"music"`
}
