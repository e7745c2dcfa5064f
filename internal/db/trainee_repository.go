package db

import (
	"github.com/lufarias/vetor/internal/models"
	"gorm.io/gorm"
)

type TraineeRepository struct {
	database *gorm.DB
}

func NewTraineeRepository(database *gorm.DB) *TraineeRepository {
	return &TraineeRepository{database: database}
}

func (repo *TraineeRepository) CountTrainees() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Trainee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *TraineeRepository) FindByID(traineeID uint) (models.Trainee, error) {
	var trainee models.Trainee
	if err := repo.database.First(&trainee, traineeID).Error; err != nil {
		return models.Trainee{}, err
	}
	return trainee, nil
}

func (repo *TraineeRepository) List() ([]models.Trainee, error) {
	trainees := make([]models.Trainee, 0)
	if err := repo.database.Order("id ASC").Find(&trainees).Error; err != nil {
		return nil, err
	}
	return trainees, nil
}

func (repo *TraineeRepository) Create(trainee *models.Trainee) error {
	return repo.database.Create(trainee).Error
}

func (repo *TraineeRepository) Save(trainee *models.Trainee) error {
	return repo.database.Save(trainee).Error
}
