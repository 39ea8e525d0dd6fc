package dto

// SearchRequest is the parsed query string of the search endpoint.
// MaxResults is nil when the client did not send one.
type SearchRequest struct {
	Tag        string
	Query      string
	MaxResults *int
}
