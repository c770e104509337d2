package models

// Portfolio represents a single published work entry. The full list of
// portfolios is persisted as one JSON array; field names match the stored
// document.
type Portfolio struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Client      string   `json:"client"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Images      []Image  `json:"images"`
	Videos      []Video  `json:"videos"`
}

// Image represents an uploaded image attached to a portfolio.
// URL is derived from the configured base URL at read time and is never
// persisted.
type Image struct {
	FileName  string `json:"file_name"`
	Alt       string `json:"alt"`
	Thumbnail bool   `json:"thumbnail"`
	Featured  bool   `json:"featured,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Video mirrors Image for video media. Videos have no upload path through
// the API; records are managed directly in the metadata document.
type Video struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
}

// PortfolioPreview is the reduced projection returned by the public
// preview listing.
type PortfolioPreview struct {
	ID     int     `json:"id"`
	Date   string  `json:"date"`
	Title  string  `json:"title"`
	Slug   string  `json:"slug"`
	Images []Image `json:"images"`
}
