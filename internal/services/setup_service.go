package services

import (
	"fmt"
	"time"

	"github.com/lufarias/vetor/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type SetupAccountRepository interface {
	CountAccounts() (int64, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(account *models.Account) error
}

type SetupContentRepository interface {
	CountItems() (int64, error)
	Create(item *models.ContentItem) error
}

type SetupMemberRepository interface {
	CountMembers() (int64, error)
	Create(member *models.Member) error
}

type SetupTraineeRepository interface {
	CountTrainees() (int64, error)
	Create(trainee *models.Trainee) error
}

type SetupService struct {
	accounts  SetupAccountRepository
	contents  SetupContentRepository
	members   SetupMemberRepository
	trainees  SetupTraineeRepository
	orgDomain string
}

func NewSetupService(
	accounts SetupAccountRepository,
	contents SetupContentRepository,
	members SetupMemberRepository,
	trainees SetupTraineeRepository,
	orgDomain string,
) *SetupService {
	return &SetupService{
		accounts:  accounts,
		contents:  contents,
		members:   members,
		trainees:  trainees,
		orgDomain: orgDomain,
	}
}

// AdminBootstrap is an extra account admitted into the seed registry from the
// environment, on top of the demo accounts.
type AdminBootstrap struct {
	Name     string
	Email    string
	Password string
}

// EnsureSeedData loads the demo registry and catalogs into empty tables.
// Populated tables are left untouched, so a restart never duplicates data.
func (service *SetupService) EnsureSeedData(admin AdminBootstrap) error {
	if err := service.seedAccounts(admin); err != nil {
		return err
	}
	if err := service.seedContents(); err != nil {
		return err
	}
	if err := service.seedMembers(); err != nil {
		return err
	}
	return service.seedTrainees()
}

func (service *SetupService) seedAccounts(admin AdminBootstrap) error {
	count, err := service.accounts.CountAccounts()
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := models.DefaultSeedAccounts()
	if email := NormalizeAuthEmail(admin.Email); email != "" && admin.Password != "" {
		name := admin.Name
		if name == "" {
			name = "Admin"
		}
		seeds = append(seeds, models.SeedAccount{
			Name:     name,
			Email:    email,
			Cargo:    "Administrador",
			Password: admin.Password,
		})
	}

	for _, seed := range seeds {
		email := NormalizeAuthEmail(seed.Email)
		if email == "" {
			continue
		}
		exists, err := service.accounts.ExistsByNormalizedEmail(email)
		if err != nil {
			return fmt.Errorf("check seed account %s: %w", email, err)
		}
		if exists {
			continue
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", email, err)
		}
		account := models.Account{
			Name:         seed.Name,
			Email:        email,
			Cargo:        seed.Cargo,
			Role:         ResolveRole(service.orgDomain, email),
			PasswordHash: string(passwordHash),
			CreatedAt:    time.Now(),
		}
		if err := service.accounts.Create(&account); err != nil {
			return fmt.Errorf("create seed account %s: %w", email, err)
		}
	}
	return nil
}

func (service *SetupService) seedContents() error {
	count, err := service.contents.CountItems()
	if err != nil {
		return fmt.Errorf("count content items: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, item := range models.DefaultContentCatalog() {
		item := item
		if err := service.contents.Create(&item); err != nil {
			return fmt.Errorf("create seed content %s: %w", item.Name, err)
		}
	}
	return nil
}

func (service *SetupService) seedMembers() error {
	count, err := service.members.CountMembers()
	if err != nil {
		return fmt.Errorf("count members: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, member := range models.DefaultMemberCatalog() {
		member := member
		member.CreatedAt = time.Now()
		if err := service.members.Create(&member); err != nil {
			return fmt.Errorf("create seed member %s: %w", member.Name, err)
		}
	}
	return nil
}

func (service *SetupService) seedTrainees() error {
	count, err := service.trainees.CountTrainees()
	if err != nil {
		return fmt.Errorf("count trainees: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, trainee := range models.DefaultTraineeCatalog() {
		trainee := trainee
		trainee.CreatedAt = time.Now()
		if err := service.trainees.Create(&trainee); err != nil {
			return fmt.Errorf("create seed trainee %s: %w", trainee.Name, err)
		}
	}
	return nil
}
