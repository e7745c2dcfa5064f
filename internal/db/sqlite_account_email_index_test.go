package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lufarias/vetor/internal/models"
)

func TestOpenSQLiteCreatesCaseInsensitiveAccountEmailUniqueIndex(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "vetor-email-index.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	firstAccount := models.Account{
		Name:         "QA First",
		Email:        "QA-Test@Vetor.Local",
		Cargo:        "Analista",
		Role:         models.RoleTrainee,
		PasswordHash: "hash-1",
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&firstAccount).Error; err != nil {
		t.Fatalf("create first account: %v", err)
	}

	secondAccount := models.Account{
		Name:         "QA Second",
		Email:        "qa-test@vetor.local",
		Cargo:        "Analista",
		Role:         models.RoleTrainee,
		PasswordHash: "hash-2",
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&secondAccount).Error; err == nil {
		t.Fatal("expected duplicate normalized email insert to fail")
	}
}
