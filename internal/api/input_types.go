package api

import "github.com/lufarias/vetor/internal/models"

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type registerInput struct {
	Name            string `json:"name" form:"name"`
	Cargo           string `json:"cargo" form:"cargo"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type forgotPasswordInput struct {
	Email string `json:"email" form:"email"`
}

type resetPasswordInput struct {
	Email           string `json:"email" form:"email"`
	Code            string `json:"code" form:"code"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type contentPayload struct {
	Name      string                   `json:"name" form:"name"`
	Audience  string                   `json:"audience" form:"audience"`
	Axis      string                   `json:"axis" form:"axis"`
	Text      string                   `json:"text" form:"text"`
	Documents []models.ContentDocument `json:"documents"`
	Videos    []string                 `json:"videos"`
}

type personPayload struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Cargo string `json:"cargo" form:"cargo"`
	Axis  string `json:"axis" form:"axis"`
	Photo string `json:"photo" form:"photo"`
}

type activityPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type traineeUpdatePayload struct {
	// RotationScore arrives as the raw text of the score field; empty keeps
	// the score unset.
	RotationScore string            `json:"rotation_score" form:"rotation_score"`
	Activities    []activityPayload `json:"activities"`
}
