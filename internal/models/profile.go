package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Experience is an embedded sub-record of Profile, stored inside the
// profile's jsonb experience column. Newest entries sit at the head.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education follows the same lifecycle rules as Experience.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Profile struct {
	BaseModel
	UserID         string `gorm:"type:uuid;uniqueIndex;not null"`
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string `gorm:"not null"`
	GithubUsername string
	Skills         datatypes.JSON `gorm:"type:jsonb"`
	Social         datatypes.JSON `gorm:"type:jsonb"`
	Experience     datatypes.JSON `gorm:"type:jsonb"`
	Education      datatypes.JSON `gorm:"type:jsonb"`

	// Relations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

func (p *Profile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

func (p *Profile) GetSocial() SocialLinks {
	var social SocialLinks
	if len(p.Social) > 0 {
		_ = json.Unmarshal(p.Social, &social)
	}
	return social
}

func (p *Profile) SetSocial(social SocialLinks) {
	data, _ := json.Marshal(social)
	p.Social = datatypes.JSON(data)
}

func (p *Profile) GetExperience() []Experience {
	var experience []Experience
	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &experience)
	}
	return experience
}

func (p *Profile) SetExperience(experience []Experience) {
	data, _ := json.Marshal(experience)
	p.Experience = datatypes.JSON(data)
}

func (p *Profile) GetEducation() []Education {
	var education []Education
	if len(p.Education) > 0 {
		_ = json.Unmarshal(p.Education, &education)
	}
	return education
}

func (p *Profile) SetEducation(education []Education) {
	data, _ := json.Marshal(education)
	p.Education = datatypes.JSON(data)
}

// AddExperience inserts the entry at the head of the list, most recent first.
func (p *Profile) AddExperience(exp Experience) {
	p.SetExperience(append([]Experience{exp}, p.GetExperience()...))
}

// RemoveExperience deletes the entry with the given id. A missing id is a
// no-op: the index search returns a -1 sentinel and nothing is spliced.
func (p *Profile) RemoveExperience(id string) {
	entries := p.GetExperience()
	idx := -1
	for i, e := range entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	p.SetExperience(append(entries[:idx], entries[idx+1:]...))
}

// AddEducation inserts the entry at the head of the list, most recent first.
func (p *Profile) AddEducation(edu Education) {
	p.SetEducation(append([]Education{edu}, p.GetEducation()...))
}

// RemoveEducation deletes the entry with the given id; missing ids are a no-op.
func (p *Profile) RemoveEducation(id string) {
	entries := p.GetEducation()
	idx := -1
	for i, e := range entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	p.SetEducation(append(entries[:idx], entries[idx+1:]...))
}
