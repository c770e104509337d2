package requests

// LoginRequest represents the admin login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreatePortfolioRequest carries the text fields of a multipart create
// request. Image fields follow the image_<n>_<field> convention and are
// parsed separately.
type CreatePortfolioRequest struct {
	Title       string `form:"title"`
	Slug        string `form:"slug"`
	Date        string `form:"date"`
	Description string `form:"description"`
	Location    string `form:"location"`
	Client      string `form:"client"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
}

// UpdatePortfolioRequest carries the text fields of a multipart update
// request. Empty fields mean "leave unchanged"; there is no way to clear
// a field to empty through the API.
type UpdatePortfolioRequest struct {
	Title       string `form:"title"`
	Slug        string `form:"slug"`
	Date        string `form:"date"`
	Description string `form:"description"`
	Location    string `form:"location"`
	Client      string `form:"client"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
}
