package services

import (
	"testing"
	"time"

	"law_office_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name to isolate tests while keeping a shared cache
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		TranslateError: true,
	})
	assert.NoError(t, err)

	err = testDB.Exec("PRAGMA journal_mode=WAL;").Error
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Client{},
		&models.PhysicalPerson{},
		&models.LegalEntity{},
		&models.Lawyer{},
		&models.Status{},
		&models.Court{},
		&models.CaseCategory{},
		&models.Case{},
		&models.Document{},
		&models.Hearing{},
		&models.Task{},
	)
	assert.NoError(t, err)

	return testDB
}

func strPtr(s string) *string { return &s }

func seedLawyer(t *testing.T, dbConn *gorm.DB, id int, oab string) {
	err := dbConn.Create(&models.Lawyer{ID: id, Name: "Dra. Teste", OAB: oab}).Error
	assert.NoError(t, err)
}

func seedStatus(t *testing.T, dbConn *gorm.DB, id int) {
	err := dbConn.Create(&models.Status{ID: id, Description: "Em Andamento"}).Error
	assert.NoError(t, err)
}

func seedClient(t *testing.T, dbConn *gorm.DB, id int, name string) {
	now := time.Now()
	err := dbConn.Create(&models.Client{ID: id, Name: name, RegisteredAt: &now}).Error
	assert.NoError(t, err)
}

func seedCase(t *testing.T, dbConn *gorm.DB, id, clientID, lawyerID, statusID int) {
	err := dbConn.Create(&models.Case{
		ID:       id,
		ClientID: clientID,
		LawyerID: lawyerID,
		StatusID: statusID,
		OpenedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}).Error
	assert.NoError(t, err)
}
