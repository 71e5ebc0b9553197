package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

var (
	ErrInvalidTransition = errors.New("manuscript is not in the required state")
	ErrNotAssigned       = errors.New("manuscript is not assigned to this expert")
	ErrInvalidScore      = errors.New("score must be between 0 and 100")
	ErrOpinionRequired   = errors.New("opinion is required and must be at most 200 characters")
	ErrReasonRequired    = errors.New("reject reason is required and must be at most 200 characters")
)

// ----- Editor actions -----

// Assign hands a fresh submission to an expert.
func (s *ManuscriptService) Assign(manuscriptID, expertID uint) error {
	expert, err := s.UserRepo.FindByID(expertID)
	if err != nil || expert.Role != entity.RoleExpert {
		return errors.New("expert not found")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, manuscriptID,
			entity.StatusPendingAssign, entity.StatusPendingReview,
			map[string]any{"expert_id": expertID})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

// Reassign sends a declined manuscript to another (or the same) expert and
// clears the previous reject reason.
func (s *ManuscriptService) Reassign(manuscriptID, expertID uint) error {
	expert, err := s.UserRepo.FindByID(expertID)
	if err != nil || expert.Role != entity.RoleExpert {
		return errors.New("expert not found")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, manuscriptID,
			entity.StatusRejectedReview, entity.StatusPendingReview,
			map[string]any{"expert_id": expertID})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return s.Repo.ClearRejectReason(tx, manuscriptID)
	})
}

// Decide is the editor's final accept/reject call on a reviewed manuscript.
func (s *ManuscriptService) Decide(manuscriptID uint, accept bool) error {
	to := entity.StatusRejected
	if accept {
		to = entity.StatusAccepted
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, manuscriptID,
			entity.StatusReviewed, to, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

// ----- Expert actions -----

// Review records the assigned expert's score and opinion.
func (s *ManuscriptService) Review(expertID, manuscriptID uint, score int, opinion string) error {
	if score < 0 || score > 100 {
		return ErrInvalidScore
	}
	opinion = strings.TrimSpace(opinion)
	if opinion == "" || len([]rune(opinion)) > 200 {
		return ErrOpinionRequired
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuardForExpert(tx, manuscriptID, expertID,
			entity.StatusPendingReview, entity.StatusReviewed)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotAssigned
		}
		return s.Repo.SaveReview(tx, &entity.Review{
			ManuscriptID: manuscriptID,
			Score:        score,
			Opinion:      opinion,
			RejectReason: "",
		})
	})
}

// RejectReview lets the assigned expert decline with a reason.
func (s *ManuscriptService) RejectReview(expertID, manuscriptID uint, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" || len([]rune(reason)) > 200 {
		return ErrReasonRequired
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuardForExpert(tx, manuscriptID, expertID,
			entity.StatusPendingReview, entity.StatusRejectedReview)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotAssigned
		}
		return s.Repo.SaveReview(tx, &entity.Review{
			ManuscriptID: manuscriptID,
			Score:        0,
			Opinion:      "",
			RejectReason: reason,
		})
	})
}

// ----- Chief actions -----

// Publish finalizes an accepted manuscript with its print order.
func (s *ManuscriptService) Publish(manuscriptID uint, sortNum int) error {
	today := time.Now()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, manuscriptID,
			entity.StatusAccepted, entity.StatusPublished,
			map[string]any{"sort_num": sortNum, "publish_time": today})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
