package db

import (
	"strings"

	"github.com/lufarias/vetor/internal/models"
	"gorm.io/gorm"
)

type ContentRepository struct {
	database *gorm.DB
}

func NewContentRepository(database *gorm.DB) *ContentRepository {
	return &ContentRepository{database: database}
}

func (repo *ContentRepository) CountItems() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ContentItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ContentRepository) FindByID(itemID uint) (models.ContentItem, error) {
	var item models.ContentItem
	if err := repo.database.First(&item, itemID).Error; err != nil {
		return models.ContentItem{}, err
	}
	return item, nil
}

// List applies the name substring and exact category predicates in the query
// itself; name matching is case-insensitive. Results keep insertion order.
func (repo *ContentRepository) List(nameQuery string, audiences []string, axis string) ([]models.ContentItem, error) {
	query := repo.database.Model(&models.ContentItem{}).Order("id ASC")

	if trimmed := strings.TrimSpace(nameQuery); trimmed != "" {
		pattern := "%" + strings.ToLower(trimmed) + "%"
		query = query.Where("lower(name) LIKE ?", pattern)
	}
	if len(audiences) > 0 {
		query = query.Where("audience IN ?", audiences)
	}
	if axis != "" {
		query = query.Where("axis = ?", axis)
	}

	items := make([]models.ContentItem, 0)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *ContentRepository) Create(item *models.ContentItem) error {
	return repo.database.Create(item).Error
}

func (repo *ContentRepository) Save(item *models.ContentItem) error {
	return repo.database.Save(item).Error
}
