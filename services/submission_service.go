package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// SubmissionService is the author's multi-step submission wizard. Each step
// writes into the author's single draft row; Confirm validates the draft as
// a whole before anything touches the manuscripts table.
type SubmissionService struct {
	DB   *gorm.DB
	Repo *repository.ManuscriptRepository
}

func NewSubmissionService(db *gorm.DB, repo *repository.ManuscriptRepository) *SubmissionService {
	return &SubmissionService{DB: db, Repo: repo}
}

func (s *SubmissionService) draft(authorID uint) *entity.SubmissionDraft {
	d, err := s.Repo.FindDraft(authorID)
	if err != nil {
		return &entity.SubmissionDraft{AuthorID: authorID}
	}
	return d
}

func (s *SubmissionService) Draft(authorID uint) (*entity.SubmissionDraft, error) {
	return s.Repo.FindDraft(authorID)
}

func (s *SubmissionService) SetTitle(authorID uint, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required")
	}
	d := s.draft(authorID)
	d.Title = title
	return s.Repo.SaveDraft(d)
}

func (s *SubmissionService) SetAuthorName(authorID uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("author name is required")
	}
	d := s.draft(authorID)
	d.AuthorName = name
	return s.Repo.SaveDraft(d)
}

func (s *SubmissionService) SetKeywords(authorID uint, keywords string) error {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return errors.New("keywords are required")
	}
	d := s.draft(authorID)
	d.Keywords = keywords
	return s.Repo.SaveDraft(d)
}

func (s *SubmissionService) AttachFile(authorID uint, filePath string) error {
	if filePath == "" {
		return errors.New("file is required")
	}
	d := s.draft(authorID)
	d.FilePath = filePath
	return s.Repo.SaveDraft(d)
}

// Confirm validates the whole draft, creates the manuscript and drops the
// draft in one transaction. The error names every missing step.
func (s *SubmissionService) Confirm(authorID uint) (*entity.Manuscript, error) {
	d, err := s.Repo.FindDraft(authorID)
	if err != nil {
		return nil, errors.New("no submission in progress")
	}

	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.AuthorName) == "" {
		missing = append(missing, "author name")
	}
	if strings.TrimSpace(d.Keywords) == "" {
		missing = append(missing, "keywords")
	}
	if d.FilePath == "" {
		missing = append(missing, "manuscript file")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("submission incomplete: %s", strings.Join(missing, ", "))
	}

	m := &entity.Manuscript{
		Title:      strings.TrimSpace(d.Title),
		AuthorName: strings.TrimSpace(d.AuthorName),
		Keywords:   strings.TrimSpace(d.Keywords),
		FilePath:   d.FilePath,
		Status:     entity.StatusPendingAssign,
		AuthorID:   authorID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return s.Repo.DeleteDraft(tx, authorID)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
