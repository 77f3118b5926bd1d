package service

import (
	"context"
	"errors"
	"time"

	"github.com/supportly-beer/supportly-backend/internal/audit"
	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/repository"
)

var ErrFaqNotFound = errors.New("faq entry not found")

// faqServiceImpl implements FaqService.
type faqServiceImpl struct {
	faqs repository.FaqRepository
}

// NewFaqService creates a new FAQ service.
func NewFaqService(faqs repository.FaqRepository) FaqService {
	return &faqServiceImpl{faqs: faqs}
}

// GetEntry returns a single FAQ entry.
func (s *faqServiceImpl) GetEntry(ctx context.Context, id int64) (*domain.FaqDTO, error) {
	entry, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFaqNotFound) {
			return nil, ErrFaqNotFound
		}
		return nil, err
	}
	dto := entry.ToDTO()
	return &dto, nil
}

// ListEntries returns a page of FAQ entries.
func (s *faqServiceImpl) ListEntries(ctx context.Context, start, limit int) ([]domain.FaqDTO, error) {
	entries, err := s.faqs.List(ctx, start*limit, limit)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.FaqDTO, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, entries[i].ToDTO())
	}
	return dtos, nil
}

// CreateEntry creates a new FAQ entry.
func (s *faqServiceImpl) CreateEntry(ctx context.Context, creatorID int64, req *domain.CreateFaqRequest) error {
	entry := &domain.FaqModel{
		Title:     req.Title,
		Text:      req.Text,
		CreatedAt: time.Now().UnixMilli(),
		CreatorID: creatorID,
	}
	if err := s.faqs.Create(ctx, entry); err != nil {
		return err
	}

	audit.LogWithDetail(ctx, audit.ActionFaqCreate, creatorID, req.Title, "faq entry created")
	return nil
}
