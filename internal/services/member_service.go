package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lufarias/vetor/internal/models"
)

// Cargo options of the add-member form. "membro" and "gerente" create member
// profiles; "trainee" creates a trainee profile instead.
const (
	CargoMembro  = "membro"
	CargoGerente = "gerente"
	CargoTrainee = "trainee"
)

var (
	ErrPersonNameRequired = errors.New("person name required")
	ErrInvalidCargo       = errors.New("invalid cargo")
	ErrAxisRequired       = errors.New("axis required for members and managers")
	ErrTraineeNotFound    = errors.New("trainee not found")
)

type MemberDirectoryRepository interface {
	List() ([]models.Member, error)
	Create(member *models.Member) error
}

type TraineeDirectoryRepository interface {
	FindByID(traineeID uint) (models.Trainee, error)
	List() ([]models.Trainee, error)
	Create(trainee *models.Trainee) error
	Save(trainee *models.Trainee) error
}

type MemberService struct {
	members  MemberDirectoryRepository
	trainees TraineeDirectoryRepository
}

func NewMemberService(members MemberDirectoryRepository, trainees TraineeDirectoryRepository) *MemberService {
	return &MemberService{members: members, trainees: trainees}
}

type PersonInput struct {
	Name  string
	Email string
	Cargo string
	Axis  string
	Photo string
}

// AddPerson routes the add-member form: trainees get a trainee profile,
// everyone else a member profile with a required axis.
func (service *MemberService) AddPerson(input PersonInput) (*models.Member, *models.Trainee, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, nil, ErrPersonNameRequired
	}

	switch input.Cargo {
	case CargoTrainee:
		trainee := models.Trainee{
			Name:       input.Name,
			Email:      strings.TrimSpace(input.Email),
			Photo:      input.Photo,
			Activities: []models.TraineeActivity{},
			CreatedAt:  time.Now(),
		}
		if err := service.trainees.Create(&trainee); err != nil {
			return nil, nil, err
		}
		return nil, &trainee, nil

	case CargoMembro, CargoGerente:
		if !models.IsValidAxis(input.Axis) {
			return nil, nil, ErrAxisRequired
		}
		cargoLabel := "Membro"
		if input.Cargo == CargoGerente {
			cargoLabel = "Gerente"
		}
		member := models.Member{
			Name:      input.Name,
			Email:     strings.TrimSpace(input.Email),
			Axis:      input.Axis,
			Cargo:     cargoLabel,
			Photo:     input.Photo,
			CreatedAt: time.Now(),
		}
		if err := service.members.Create(&member); err != nil {
			return nil, nil, err
		}
		return &member, nil, nil

	default:
		return nil, nil, ErrInvalidCargo
	}
}

func (service *MemberService) ListMembers() ([]models.Member, error) {
	return service.members.List()
}

func (service *MemberService) ListTrainees() ([]models.Trainee, error) {
	return service.trainees.List()
}

type ActivityInput struct {
	ID        string
	Name      string
	Completed bool
}

// UpdateTrainee replaces the rotation score and the activity list. The score
// comes in as free text: empty or unparseable leaves it unset, out-of-range
// values are clamped to [0, 10]. Activities submitted without an identifier
// get a fresh one.
func (service *MemberService) UpdateTrainee(traineeID uint, scoreRaw string, activities []ActivityInput) (models.Trainee, error) {
	trainee, err := service.trainees.FindByID(traineeID)
	if err != nil {
		return models.Trainee{}, ErrTraineeNotFound
	}

	trainee.RotationScore = ParseRotationScore(scoreRaw)

	next := make([]models.TraineeActivity, 0, len(activities))
	for _, activity := range activities {
		name := strings.TrimSpace(activity.Name)
		if name == "" {
			continue
		}
		id := strings.TrimSpace(activity.ID)
		if id == "" {
			id = uuid.NewString()
		}
		next = append(next, models.TraineeActivity{
			ID:        id,
			Name:      name,
			Completed: activity.Completed,
		})
	}
	trainee.Activities = next

	if err := service.trainees.Save(&trainee); err != nil {
		return models.Trainee{}, err
	}
	return trainee, nil
}
