package services

import (
	"context"
	"fmt"
	"time"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

func ptr(s string) *string { return &s }

// SeedReferenceData populates the lookup tables used by the case form when
// they are empty. Existing rows are left untouched so a restarted server
// never duplicates data.
func SeedReferenceData(ctx context.Context, dbConn *gorm.DB) error {
	return dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedStatuses(tx); err != nil {
			return fmt.Errorf("failed to seed statuses: %w", err)
		}
		if err := seedCategories(tx); err != nil {
			return fmt.Errorf("failed to seed case categories: %w", err)
		}
		if err := seedCourts(tx); err != nil {
			return fmt.Errorf("failed to seed courts: %w", err)
		}
		if err := seedLawyers(tx); err != nil {
			return fmt.Errorf("failed to seed lawyers: %w", err)
		}
		return nil
	})
}

func seedStatuses(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Status{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	descriptions := map[int]string{
		301: "Em Andamento",
		302: "Concluído",
		303: "Arquivado",
		304: "Pendente",
		305: "Suspenso",
		306: "Recurso",
		307: "Em Julgamento",
	}
	for id := 301; id <= 307; id++ {
		status := models.Status{ID: id, Description: descriptions[id], ModifiedAt: &now}
		if err := tx.Create(&status).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.CaseCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	descriptions := map[int]string{
		401: "Cível - Cobrança",
		402: "Criminal - Furto",
		403: "Trabalhista - Rescisão Indireta",
		404: "Família - Divórcio",
		405: "Tributário - Restituição de Imposto",
		406: "Ambiental - Licenciamento",
		407: "Consumidor - Vício de Produto",
		408: "Administrativo - Concurso Público",
	}
	for id := 401; id <= 408; id++ {
		category := models.CaseCategory{ID: id, Description: descriptions[id], Active: true}
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCourts(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Court{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	courts := []models.Court{
		{ID: 201, Name: "1ª Vara Cível", City: ptr("Florianópolis"), State: ptr("SC")},
		{ID: 202, Name: "2ª Vara Criminal", City: ptr("Florianópolis"), State: ptr("SC")},
		{ID: 203, Name: "Vara do Trabalho", City: ptr("São José"), State: ptr("SC")},
		{ID: 204, Name: "Vara de Família", City: ptr("Palhoça"), State: ptr("SC")},
		{ID: 205, Name: "Vara da Fazenda Pública", City: ptr("Florianópolis"), State: ptr("SC")},
		{ID: 206, Name: "3ª Vara Cível", City: ptr("Joinville"), State: ptr("SC")},
		{ID: 207, Name: "Juizado Especial Cível", City: ptr("Blumenau"), State: ptr("SC")},
		{ID: 208, Name: "Vara Ambiental", City: ptr("Chapecó"), State: ptr("SC")},
	}
	for _, court := range courts {
		if err := tx.Create(&court).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedLawyers(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Lawyer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	lawyers := []models.Lawyer{
		{ID: 101, Name: "Dr. Roberto Santos", OAB: "12345SC", Phone: ptr("48999110101"), Email: ptr("roberto.santos@adv.br"), Specialty: ptr("Direito Civil")},
		{ID: 102, Name: "Dra. Fernanda Lima", OAB: "23456SC", Phone: ptr("48999220202"), Email: ptr("fernanda.lima@adv.br"), Specialty: ptr("Direito Penal")},
		{ID: 103, Name: "Dr. Marcos Oliveira", OAB: "34567SC", Phone: ptr("48999330303"), Email: ptr("marcos.oliveira@adv.br"), Specialty: ptr("Direito Trabalhista")},
		{ID: 104, Name: "Dra. Juliana Costa", OAB: "45678SC", Phone: ptr("48999440404"), Email: ptr("juliana.costa@adv.br"), Specialty: ptr("Direito de Família")},
		{ID: 105, Name: "Dr. André Pereira", OAB: "56789SC", Phone: ptr("48999550505"), Email: ptr("andre.pereira@adv.br"), Specialty: ptr("Direito Tributário")},
		{ID: 106, Name: "Dra. Camila Rodrigues", OAB: "67890SC", Phone: ptr("48999660606"), Email: ptr("camila.rodrigues@adv.br"), Specialty: ptr("Direito Ambiental")},
		{ID: 107, Name: "Dr. Paulo Almeida", OAB: "78901SC", Phone: ptr("48999770707"), Email: ptr("paulo.almeida@adv.br"), Specialty: ptr("Direito do Consumidor")},
	}
	for _, lawyer := range lawyers {
		if err := tx.Create(&lawyer).Error; err != nil {
			return err
		}
	}
	return nil
}
