package dto

import (
	"github.com/allisson/forumhub/internal/user/domain"
	"github.com/allisson/forumhub/internal/user/usecase"
)

// ToCreateUserInput converts a CreateUserRequest to a use case input.
func ToCreateUserInput(req CreateUserRequest) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Profiles: req.Profiles,
	}
}

// ToUpdateUserInput converts an UpdateUserRequest to a use case input.
func ToUpdateUserInput(req UpdateUserRequest) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	}
}

// ToUserResponse converts a domain user to a response payload.
func ToUserResponse(user *domain.User) UserResponse {
	profiles := make([]ProfileResponse, 0, len(user.Profiles))
	for _, profile := range user.Profiles {
		profiles = append(profiles, ProfileResponse{ID: profile.ID, Name: profile.Name})
	}
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Profiles: profiles,
	}
}

// ToUserResponseList converts a list of domain users to response payloads.
func ToUserResponseList(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}
