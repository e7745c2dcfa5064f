package services

import (
	"errors"
	"strings"

	"github.com/lufarias/vetor/internal/models"
)

var (
	ErrContentNotFound     = errors.New("content not found")
	ErrContentNameRequired = errors.New("content name required")
	ErrInvalidAudience     = errors.New("invalid audience")
	ErrInvalidAxis         = errors.New("invalid axis")
)

type ContentRepository interface {
	FindByID(itemID uint) (models.ContentItem, error)
	List(nameQuery string, audiences []string, axis string) ([]models.ContentItem, error)
	Create(item *models.ContentItem) error
	Save(item *models.ContentItem) error
}

type ContentService struct {
	contents ContentRepository
}

func NewContentService(contents ContentRepository) *ContentService {
	return &ContentService{contents: contents}
}

// ContentFilter carries the portal search form: a case-insensitive substring
// on the name plus optional exact category filters, all ANDed.
type ContentFilter struct {
	Query    string
	Audience string
	Axis     string
}

// ListForViewer applies the filter within the audiences the viewer role may
// see. Filtering for an audience outside the viewer's visibility yields an
// empty list rather than an error.
func (service *ContentService) ListForViewer(role string, filter ContentFilter) ([]models.ContentItem, error) {
	audiences := VisibleAudiences(role)
	if filter.Audience != "" {
		if !CanViewAudience(role, filter.Audience) {
			return []models.ContentItem{}, nil
		}
		audiences = []string{filter.Audience}
	}
	return service.contents.List(filter.Query, audiences, strings.TrimSpace(filter.Axis))
}

func (service *ContentService) Create(item models.ContentItem) (models.ContentItem, error) {
	if err := validateContentItem(&item); err != nil {
		return models.ContentItem{}, err
	}
	item.ID = 0
	if err := service.contents.Create(&item); err != nil {
		return models.ContentItem{}, err
	}
	return item, nil
}

// Update replaces the stored item wholesale, keeping the identifier.
func (service *ContentService) Update(itemID uint, item models.ContentItem) (models.ContentItem, error) {
	existing, err := service.contents.FindByID(itemID)
	if err != nil {
		return models.ContentItem{}, ErrContentNotFound
	}
	if err := validateContentItem(&item); err != nil {
		return models.ContentItem{}, err
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := service.contents.Save(&item); err != nil {
		return models.ContentItem{}, err
	}
	return item, nil
}

func validateContentItem(item *models.ContentItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return ErrContentNameRequired
	}
	if !models.IsValidAudience(item.Audience) {
		return ErrInvalidAudience
	}
	if !models.IsValidAxis(item.Axis) {
		return ErrInvalidAxis
	}
	if item.Documents == nil {
		item.Documents = []models.ContentDocument{}
	}
	if item.Videos == nil {
		item.Videos = []string{}
	}
	return nil
}
