package services

import (
	"strings"

	"devconnector_backend/internal/models"
	"devconnector_backend/internal/repositories"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type ProfileService interface {
	GetMine(userID string) (*dto.ProfileResponse, error)
	Upsert(userID string, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)
	GetAll() ([]*dto.ProfileResponse, error)
	GetByUserID(userID string) (*dto.ProfileResponse, error)
	DeleteAccount(userID string) error

	AddExperience(userID string, req *dto.AddExperienceRequest) (*dto.ProfileResponse, error)
	DeleteExperience(userID, expID string) (*dto.ProfileResponse, error)
	AddEducation(userID string, req *dto.AddEducationRequest) (*dto.ProfileResponse, error)
	DeleteEducation(userID, eduID string) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *ProfileServiceImpl) GetMine(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNoProfile
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// ParseSkills splits the comma-delimited skills string, trimming whitespace
// around each entry. Order is preserved and empty entries are kept as-is.
func ParseSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// Upsert creates the profile when absent, otherwise applies a partial update:
// only fields present in the request overwrite stored values. The social
// sub-object is rebuilt from the request on every call. Repeating the same
// request yields the same document.
func (s *ProfileServiceImpl) Upsert(userID string, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	social := models.SocialLinks{
		Youtube:   req.Youtube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		Linkedin:  req.Linkedin,
		Instagram: req.Instagram,
	}

	apply := func(p *models.Profile) {
		p.Status = req.Status
		p.SetSkills(ParseSkills(req.Skills))
		p.SetSocial(social)
		if req.Company != "" {
			p.Company = req.Company
		}
		if req.Website != "" {
			p.Website = req.Website
		}
		if req.Location != "" {
			p.Location = req.Location
		}
		if req.Bio != "" {
			p.Bio = req.Bio
		}
		if req.GithubUsername != "" {
			p.GithubUsername = req.GithubUsername
		}
	}

	_, err := s.profileRepo.FindByUserID(userID)
	if err == nil {
		updated, err := s.profileRepo.MutateByUserID(userID, func(p *models.Profile) error {
			apply(p)
			return nil
		})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return dto.NewProfileResponse(updated), nil
	}
	if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{UserID: userID}
	apply(profile)
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	created, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(created), nil
}

func (s *ProfileServiceImpl) GetAll() ([]*dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, dto.NewProfileResponse(&profiles[i]))
	}
	return out, nil
}

// GetByUserID distinguishes a malformed user id (404) from a well-formed id
// with no profile (400); both respond "Profile not found".
func (s *ProfileServiceImpl) GetByUserID(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrInvalidID):
			return nil, apperrors.ErrMalformedProfileID
		case apperrors.Is(err, repositories.ErrProfileNotFound):
			return nil, apperrors.ErrProfileNotFound
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return dto.NewProfileResponse(profile), nil
}

// DeleteAccount removes the profile and the user record. Posts deliberately
// survive account deletion.
func (s *ProfileServiceImpl) DeleteAccount(userID string) error {
	if err := s.profileRepo.DeleteByUserID(userID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.Delete(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) AddExperience(userID string, req *dto.AddExperienceRequest) (*dto.ProfileResponse, error) {
	exp := models.Experience{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
	// current entries carry no end date
	if exp.Current {
		exp.To = ""
	}

	return s.mutateProfile(userID, func(p *models.Profile) error {
		p.AddExperience(exp)
		return nil
	})
}

func (s *ProfileServiceImpl) DeleteExperience(userID, expID string) (*dto.ProfileResponse, error) {
	return s.mutateProfile(userID, func(p *models.Profile) error {
		p.RemoveExperience(expID)
		return nil
	})
}

func (s *ProfileServiceImpl) AddEducation(userID string, req *dto.AddEducationRequest) (*dto.ProfileResponse, error) {
	edu := models.Education{
		ID:           uuid.NewString(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
	if edu.Current {
		edu.To = ""
	}

	return s.mutateProfile(userID, func(p *models.Profile) error {
		p.AddEducation(edu)
		return nil
	})
}

func (s *ProfileServiceImpl) DeleteEducation(userID, eduID string) (*dto.ProfileResponse, error) {
	return s.mutateProfile(userID, func(p *models.Profile) error {
		p.RemoveEducation(eduID)
		return nil
	})
}

func (s *ProfileServiceImpl) mutateProfile(userID string, fn func(*models.Profile) error) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.MutateByUserID(userID, fn)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNoProfile
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}
