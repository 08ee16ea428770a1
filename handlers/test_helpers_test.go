package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"law_office_app_go/db"
	"law_office_app_go/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
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

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func seedCaseGraph(t *testing.T, testDB *gorm.DB) {
	now := time.Now()
	assert.NoError(t, testDB.Create(&models.Client{ID: 1, Name: "Ana", RegisteredAt: &now}).Error)
	assert.NoError(t, testDB.Create(&models.Lawyer{ID: 1, Name: "Dra. Teste", OAB: "11111SC"}).Error)
	assert.NoError(t, testDB.Create(&models.Status{ID: 1, Description: "Em Andamento"}).Error)
	assert.NoError(t, testDB.Create(&models.Case{
		ID:       1,
		ClientID: 1,
		LawyerID: 1,
		StatusID: 1,
		OpenedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
}
