package services

import (
	"sort"

	"devconnector_backend/internal/models"
	"devconnector_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes mirroring the contracts of the GORM
// implementations, including the malformed-id classification.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, err := f.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(userID string) error {
	delete(f.users, userID)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile // keyed by user id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.Profile{}}
}

func (f *fakeProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, repositories.ErrInvalidID
	}
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) FindAll() ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProfileRepo) Create(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) Save(profile *models.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) DeleteByUserID(userID string) error {
	delete(f.profiles, userID)
	return nil
}

func (f *fakeProfileRepo) MutateByUserID(userID string, fn func(*models.Profile) error) (*models.Profile, error) {
	profile, err := f.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := fn(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

type fakePostRepo struct {
	posts []*models.Post // insertion order
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{}
}

func (f *fakePostRepo) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	f.posts = append(f.posts, post)
	return nil
}

// FindAll returns newest first, matching the real repository's ordering.
func (f *fakePostRepo) FindAll() ([]models.Post, error) {
	out := make([]models.Post, 0, len(f.posts))
	for i := len(f.posts) - 1; i >= 0; i-- {
		out = append(out, *f.posts[i])
	}
	return out, nil
}

func (f *fakePostRepo) FindByID(id string) (*models.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrPostNotFound
}

func (f *fakePostRepo) Delete(id string) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePostRepo) Mutate(id string, fn func(*models.Post) error) (*models.Post, error) {
	post, err := f.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := fn(post); err != nil {
		return nil, err
	}
	return post, nil
}
