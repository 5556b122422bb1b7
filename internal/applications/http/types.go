package http

import "github.com/InternFinder-SIH/internfinder-backend/internal/applications/domain"

type applyRequest struct {
	UserID       string `json:"userId"`
	InternshipID string `json:"internshipId"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Stipend      string `json:"stipend"`
	Status       string `json:"status"`
}

type unsaveRequest struct {
	UserID       string `json:"userId"`
	InternshipID string `json:"internshipId"`
}

type applyResponse struct {
	domain.ApplicationRecord
	Message string `json:"message"`
}
