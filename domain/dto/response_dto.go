package dto

import "tagtube/domain/model"

type SaveResponse struct {
	IsSaved bool `json:"isSaved"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SearchResponse struct {
	Results []model.VideoRecord `json:"results"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
