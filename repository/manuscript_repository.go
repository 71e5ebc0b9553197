package repository

import (
	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ManuscriptRepository struct {
	DB *gorm.DB
}

func NewManuscriptRepository(db *gorm.DB) *ManuscriptRepository {
	return &ManuscriptRepository{DB: db}
}

// ---------------- Manuscripts ----------------

func (r *ManuscriptRepository) Create(m *entity.Manuscript) error {
	return r.DB.Create(m).Error
}

func (r *ManuscriptRepository) FindByID(id uint) (*entity.Manuscript, error) {
	var m entity.Manuscript
	if err := r.DB.Preload("Review").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ManuscriptRepository) ListByStatus(status entity.ManuscriptStatus) ([]entity.Manuscript, error) {
	var ms []entity.Manuscript
	err := r.DB.Preload("Review").Where("status = ?", status).Order("id").Find(&ms).Error
	return ms, err
}

func (r *ManuscriptRepository) ListByAuthor(authorID uint) ([]entity.Manuscript, error) {
	var ms []entity.Manuscript
	err := r.DB.Preload("Review").Where("author_id = ?", authorID).Order("id").Find(&ms).Error
	return ms, err
}

// ListForExpert returns the expert's review queue.
func (r *ManuscriptRepository) ListForExpert(expertID uint) ([]entity.Manuscript, error) {
	var ms []entity.Manuscript
	err := r.DB.Where("expert_id = ? AND status = ?", expertID, entity.StatusPendingReview).
		Order("id").Find(&ms).Error
	return ms, err
}

func (r *ManuscriptRepository) ListPublished() ([]entity.Manuscript, error) {
	var ms []entity.Manuscript
	err := r.DB.Where("status = ?", entity.StatusPublished).Order("sort_num").Find(&ms).Error
	return ms, err
}

// UpdateStatusGuard moves a manuscript from one status to another atomically,
// applying extra column updates alongside. Zero rows affected means the
// manuscript was not in the expected state.
func (r *ManuscriptRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to entity.ManuscriptStatus, extra map[string]any) (int64, error) {
	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	res := tx.Model(&entity.Manuscript{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// UpdateStatusGuardForExpert additionally requires the acting expert to be
// the one assigned.
func (r *ManuscriptRepository) UpdateStatusGuardForExpert(tx *gorm.DB, id, expertID uint, from, to entity.ManuscriptStatus) (int64, error) {
	res := tx.Model(&entity.Manuscript{}).
		Where("id = ? AND status = ? AND expert_id = ?", id, from, expertID).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Reviews ----------------

// SaveReview upserts the manuscript's single review row; the latest verdict
// overwrites the previous one.
func (r *ManuscriptRepository) SaveReview(tx *gorm.DB, review *entity.Review) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "manuscript_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "opinion", "reject_reason", "updated_at"}),
	}).Create(review).Error
}

func (r *ManuscriptRepository) ClearRejectReason(tx *gorm.DB, manuscriptID uint) error {
	return tx.Model(&entity.Review{}).
		Where("manuscript_id = ?", manuscriptID).
		Update("reject_reason", "").Error
}

// ---------------- Submission drafts ----------------

func (r *ManuscriptRepository) FindDraft(authorID uint) (*entity.SubmissionDraft, error) {
	var d entity.SubmissionDraft
	if err := r.DB.Where("author_id = ?", authorID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveDraft upserts the author's single draft row.
func (r *ManuscriptRepository) SaveDraft(d *entity.SubmissionDraft) error {
	if d.ID != 0 {
		return r.DB.Save(d).Error
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "author_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "author_name", "keywords", "file_path", "updated_at"}),
	}).Create(d).Error
}

// DeleteDraft removes the row for good; a soft-deleted draft would still
// hold the author's unique slot.
func (r *ManuscriptRepository) DeleteDraft(tx *gorm.DB, authorID uint) error {
	return tx.Unscoped().Where("author_id = ?", authorID).Delete(&entity.SubmissionDraft{}).Error
}
