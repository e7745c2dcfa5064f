package models

import "time"

type TraineeActivity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type Trainee struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Email         string
	Photo         string
	RotationScore *float64          `gorm:"type:real"`
	Activities    []TraineeActivity `gorm:"serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func DefaultTraineeCatalog() []Trainee {
	return []Trainee{
		{Name: "Gabriel Oliveira", Activities: []TraineeActivity{}},
		{Name: "Helena Rocha", Activities: []TraineeActivity{}},
		{Name: "Igor Almeida", Activities: []TraineeActivity{}},
		{Name: "Julia Martins", Activities: []TraineeActivity{}},
	}
}
