package services

import (
	"devconnector_backend/internal/models"
	"devconnector_backend/internal/repositories"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"
)

type PostService interface {
	Create(userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	List() ([]*dto.PostResponse, error)
	Get(id string) (*dto.PostResponse, error)
	Delete(id, userID string) error
	Like(id, userID string) ([]models.Like, error)
	Unlike(id, userID string) ([]models.Like, error)
}

type PostServiceImpl struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create snapshots the author's name and avatar onto the post. The snapshot
// is taken once; later profile edits do not touch existing posts.
func (s *PostServiceImpl) Create(userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) || apperrors.Is(err, repositories.ErrInvalidID) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	post := &models.Post{
		UserID: userID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPostResponse(post), nil
}

// List returns all posts newest first.
func (s *PostServiceImpl) List() ([]*dto.PostResponse, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, dto.NewPostResponse(&posts[i]))
	}
	return out, nil
}

func (s *PostServiceImpl) Get(id string) (*dto.PostResponse, error) {
	post, err := s.findPost(id)
	if err != nil {
		return nil, err
	}
	return dto.NewPostResponse(post), nil
}

// Delete checks existence before ownership: a missing post is a 404 even for
// a non-owner, since authorizing access to a nonexistent resource is
// meaningless.
func (s *PostServiceImpl) Delete(id, userID string) error {
	post, err := s.findPost(id)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return apperrors.ErrNotPostOwner
	}

	if err := s.postRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PostServiceImpl) Like(id, userID string) ([]models.Like, error) {
	post, err := s.postRepo.Mutate(id, func(p *models.Post) error {
		if p.LikedBy(userID) {
			return apperrors.ErrAlreadyLiked
		}
		p.AddLike(userID)
		return nil
	})
	if err != nil {
		return nil, s.classify(err)
	}
	return post.GetLikes(), nil
}

func (s *PostServiceImpl) Unlike(id, userID string) ([]models.Like, error) {
	post, err := s.postRepo.Mutate(id, func(p *models.Post) error {
		if !p.LikedBy(userID) {
			return apperrors.ErrNotYetLiked
		}
		p.RemoveLike(userID)
		return nil
	})
	if err != nil {
		return nil, s.classify(err)
	}
	likes := post.GetLikes()
	if likes == nil {
		likes = []models.Like{}
	}
	return likes, nil
}

func (s *PostServiceImpl) findPost(id string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, s.classify(err)
	}
	return post, nil
}

// classify maps repository errors onto API errors, keeping the malformed-id
// and not-found cases internally distinct.
func (s *PostServiceImpl) classify(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrInvalidID):
		return apperrors.ErrMalformedPostID
	case apperrors.Is(err, repositories.ErrPostNotFound):
		return apperrors.ErrPostNotFound
	default:
		if _, ok := apperrors.AsAppError(err); ok {
			return err
		}
		return apperrors.InternalError(err)
	}
}
