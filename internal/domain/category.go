package domain

// Category is one entry of the remote catalog's category list. Slug is
// the stable identifier used for filtering.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}
