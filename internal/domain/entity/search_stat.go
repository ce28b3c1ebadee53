package entity

// SearchStat is how many times a normalized search keyword has been requested.
type SearchStat struct {
	Query string
	Count int64
}
