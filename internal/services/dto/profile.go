package dto

import (
	"time"

	"devconnector_backend/internal/models"
)

// UpsertProfileRequest covers create and update. Status and skills are
// required; everything else is optional and only overwrites when present.
// Skills arrive as one comma-delimited string, as the front end sends them.
type UpsertProfileRequest struct {
	Status         string `json:"status" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type AddExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type AddEducationRequest struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required"`
	From         string `json:"from" validate:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ProfileUser is the owner's name and avatar populated from the user record.
type ProfileUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ProfileResponse struct {
	ID             string              `json:"id"`
	User           ProfileUser         `json:"user"`
	Company        string              `json:"company,omitempty"`
	Website        string              `json:"website,omitempty"`
	Location       string              `json:"location,omitempty"`
	Bio            string              `json:"bio,omitempty"`
	Status         string              `json:"status"`
	GithubUsername string              `json:"githubusername,omitempty"`
	Skills         []string            `json:"skills"`
	Social         models.SocialLinks  `json:"social"`
	Experience     []models.Experience `json:"experience"`
	Education      []models.Education  `json:"education"`
	Date           time.Time           `json:"date"`
}

// NewProfileResponse flattens the stored profile plus its jsonb sub-lists
// into the wire shape. Nil slices become empty arrays on the wire.
func NewProfileResponse(p *models.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:             p.ID,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		Status:         p.Status,
		GithubUsername: p.GithubUsername,
		Skills:         p.GetSkills(),
		Social:         p.GetSocial(),
		Experience:     p.GetExperience(),
		Education:      p.GetEducation(),
		Date:           p.CreatedAt,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.Experience == nil {
		resp.Experience = []models.Experience{}
	}
	if resp.Education == nil {
		resp.Education = []models.Education{}
	}

	resp.User.ID = p.UserID
	if p.User != nil {
		resp.User.Name = p.User.Name
		resp.User.Avatar = p.User.Avatar
	}
	return resp
}
