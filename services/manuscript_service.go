package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrManuscriptNotFound = errors.New("manuscript not found")
	ErrNotPermitted       = errors.New("not permitted")
)

type ManuscriptService struct {
	DB       *gorm.DB
	Repo     *repository.ManuscriptRepository
	UserRepo *repository.UserRepository
}

func NewManuscriptService(db *gorm.DB, repo *repository.ManuscriptRepository, userRepo *repository.UserRepository) *ManuscriptService {
	return &ManuscriptService{DB: db, Repo: repo, UserRepo: userRepo}
}

// ----- Author views -----

type AuthorPapers struct {
	Pending []entity.Manuscript `json:"pending"`
	History []entity.Manuscript `json:"history"`
}

// PapersForAuthor splits the author's manuscripts into in-flight and decided.
func (s *ManuscriptService) PapersForAuthor(authorID uint) (*AuthorPapers, error) {
	all, err := s.Repo.ListByAuthor(authorID)
	if err != nil {
		return nil, err
	}

	out := &AuthorPapers{Pending: []entity.Manuscript{}, History: []entity.Manuscript{}}
	for _, m := range all {
		switch m.Status {
		case entity.StatusRejected, entity.StatusAccepted, entity.StatusPublished:
			out.History = append(out.History, m)
		default:
			out.Pending = append(out.Pending, m)
		}
	}
	return out, nil
}

// ----- Editor views -----

type EditorWorklists struct {
	PendingAssign  []entity.Manuscript `json:"pendingAssign"`
	PendingReview  []entity.Manuscript `json:"pendingReview"`
	RejectedReview []entity.Manuscript `json:"rejectedReview"`
	Reviewed       []entity.Manuscript `json:"reviewed"`
	Experts        []entity.User       `json:"experts"`
}

func (s *ManuscriptService) WorklistsForEditor() (*EditorWorklists, error) {
	out := &EditorWorklists{}
	var err error
	if out.PendingAssign, err = s.Repo.ListByStatus(entity.StatusPendingAssign); err != nil {
		return nil, err
	}
	if out.PendingReview, err = s.Repo.ListByStatus(entity.StatusPendingReview); err != nil {
		return nil, err
	}
	if out.RejectedReview, err = s.Repo.ListByStatus(entity.StatusRejectedReview); err != nil {
		return nil, err
	}
	if out.Reviewed, err = s.Repo.ListByStatus(entity.StatusReviewed); err != nil {
		return nil, err
	}
	if out.Experts, err = s.UserRepo.ListByRole(entity.RoleExpert); err != nil {
		return nil, err
	}
	return out, nil
}

// ----- Expert / chief views -----

func (s *ManuscriptService) QueueForExpert(expertID uint) ([]entity.Manuscript, error) {
	return s.Repo.ListForExpert(expertID)
}

func (s *ManuscriptService) AcceptedPapers() ([]entity.Manuscript, error) {
	return s.Repo.ListByStatus(entity.StatusAccepted)
}

func (s *ManuscriptService) PublishedPapers() ([]entity.Manuscript, error) {
	return s.Repo.ListPublished()
}

// ----- Download gate -----

// FileForDownload enforces per-role access to the manuscript file: authors
// see their own, editors see all, experts see what they were assigned,
// the chief sees accepted and published.
func (s *ManuscriptService) FileForDownload(userID uint, role entity.Role, manuscriptID uint) (string, error) {
	m, err := s.Repo.FindByID(manuscriptID)
	if err != nil {
		return "", ErrManuscriptNotFound
	}

	allowed := false
	switch role {
	case entity.RoleAuthor:
		allowed = m.AuthorID == userID
	case entity.RoleEditor:
		allowed = true
	case entity.RoleExpert:
		allowed = m.ExpertID != nil && *m.ExpertID == userID
	case entity.RoleChief:
		allowed = m.Status == entity.StatusAccepted || m.Status == entity.StatusPublished
	}
	if !allowed {
		return "", ErrNotPermitted
	}
	return m.FilePath, nil
}
