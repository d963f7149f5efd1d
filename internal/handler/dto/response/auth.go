package response

import (
	"cuponera-backend/internal/usecase"
)

type SubjectResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Kind  string `json:"kind"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	User        *SubjectResponse `json:"user"`
}

func FromSubject(s *usecase.Subject) *SubjectResponse {
	return &SubjectResponse{
		ID:    s.ID.String(),
		Name:  s.Name,
		Email: s.Email,
		Role:  s.Role,
		Kind:  s.Kind,
	}
}
