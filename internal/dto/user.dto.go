package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// UserDTO is the user as the API shows it: no password, branches by summary.
type UserDTO struct {
	ID        string             `json:"id"`
	Name      string             `json:"user_name"`
	Email     string             `json:"user_email"`
	Phone     *string            `json:"phone_number"`
	Branches  []BranchSummaryDTO `json:"branchs"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type BranchSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"branch_name"`
	City string `json:"city"`
}

func NewUserDTO(u models.User) UserDTO {
	branches := make([]BranchSummaryDTO, 0, len(u.Branches))
	for _, b := range u.Branches {
		branches = append(branches, BranchSummaryDTO{ID: b.ID, Name: b.Name, City: b.City})
	}

	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Branches:  branches,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserDTO(u))
	}
	return out
}
