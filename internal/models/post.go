package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Like marks that a user liked a post. At most one entry per user id.
type Like struct {
	User string `json:"user"`
}

// Post carries the author's name and avatar as a snapshot taken at creation
// time; later profile edits do not flow back into existing posts.
type Post struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index"`
	Text   string `gorm:"not null"`
	Name   string
	Avatar string
	Likes  datatypes.JSON `gorm:"type:jsonb"`
}

func (p *Post) GetLikes() []Like {
	var likes []Like
	if len(p.Likes) > 0 {
		_ = json.Unmarshal(p.Likes, &likes)
	}
	return likes
}

func (p *Post) SetLikes(likes []Like) {
	data, _ := json.Marshal(likes)
	p.Likes = datatypes.JSON(data)
}

// LikedBy reports whether the user already has a like entry on the post.
func (p *Post) LikedBy(userID string) bool {
	for _, like := range p.GetLikes() {
		if like.User == userID {
			return true
		}
	}
	return false
}

// AddLike prepends a like entry for the user.
func (p *Post) AddLike(userID string) {
	p.SetLikes(append([]Like{{User: userID}}, p.GetLikes()...))
}

// RemoveLike drops the user's like entry; missing entries are a no-op.
func (p *Post) RemoveLike(userID string) {
	likes := p.GetLikes()
	idx := -1
	for i, like := range likes {
		if like.User == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	p.SetLikes(append(likes[:idx], likes[idx+1:]...))
}
