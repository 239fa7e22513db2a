package dto

// FeedQuery carries the raw feed filters from the query string. Limit
// stays a string here: out-of-range or non-integer values are ignored
// rather than rejected.
type FeedQuery struct {
	Category  string   `form:"category"`
	Location  string   `form:"location"`
	Search    string   `form:"search"`
	Remote    *bool    `form:"remote"`
	BudgetMin *float64 `form:"budget_min"`
	BudgetMax *float64 `form:"budget_max"`
	Limit     string   `form:"limit"`
}
