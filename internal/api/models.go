package api

import "github.com/sunr3d/fshare/models"

// POST /
type uploadResp struct {
	Link string `json:"link"`
	URL  string `json:"url"`
}

// GET /files
type listFilesResp struct {
	Entries []models.DateGroup `json:"entries"`
}

type filesPage struct {
	Groups []models.DateGroup
}

type healthResp struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
