package dto

import "doctorhub-api/pkg/response"

type TrendingSearchResponse struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type TrendingSearchListResponse struct {
	response.Envelope
	Searches []TrendingSearchResponse `json:"searches"`
	Count    int                      `json:"count"`
}
