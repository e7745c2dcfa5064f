package db

import "gorm.io/gorm"

type Repositories struct {
	Accounts *AccountRepository
	Contents *ContentRepository
	Members  *MemberRepository
	Trainees *TraineeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(database),
		Contents: NewContentRepository(database),
		Members:  NewMemberRepository(database),
		Trainees: NewTraineeRepository(database),
	}
}
