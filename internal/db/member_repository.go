package db

import (
	"github.com/lufarias/vetor/internal/models"
	"gorm.io/gorm"
)

type MemberRepository struct {
	database *gorm.DB
}

func NewMemberRepository(database *gorm.DB) *MemberRepository {
	return &MemberRepository{database: database}
}

func (repo *MemberRepository) CountMembers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Member{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *MemberRepository) List() ([]models.Member, error) {
	members := make([]models.Member, 0)
	if err := repo.database.Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (repo *MemberRepository) Create(member *models.Member) error {
	return repo.database.Create(member).Error
}
