package dto

import (
	"time"

	"devconnector_backend/internal/models"
)

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

type PostResponse struct {
	ID     string        `json:"id"`
	User   string        `json:"user"`
	Text   string        `json:"text"`
	Name   string        `json:"name"`
	Avatar string        `json:"avatar"`
	Likes  []models.Like `json:"likes"`
	Date   time.Time     `json:"date"`
}

func NewPostResponse(p *models.Post) *PostResponse {
	likes := p.GetLikes()
	if likes == nil {
		likes = []models.Like{}
	}
	return &PostResponse{
		ID:     p.ID,
		User:   p.UserID,
		Text:   p.Text,
		Name:   p.Name,
		Avatar: p.Avatar,
		Likes:  likes,
		Date:   p.CreatedAt,
	}
}
