package services

import (
	"context"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

// LookupOption is the id/name shape shared by the reference-table endpoints
type LookupOption struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// LawyerOption includes the bar number alongside the id/name pair
type LawyerOption struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
	OAB  string `json:"oab"`
}

// ListLawyers returns all lawyers ordered by name
func ListLawyers(ctx context.Context, dbConn *gorm.DB) ([]LawyerOption, error) {
	var options []LawyerOption
	err := dbConn.WithContext(ctx).
		Model(&models.Lawyer{}).
		Select("id_advogado AS id, nome, oab").
		Order("nome ASC").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []LawyerOption{}
	}
	return options, nil
}

// ListStatuses returns all case statuses ordered by description
func ListStatuses(ctx context.Context, dbConn *gorm.DB) ([]LookupOption, error) {
	return listLookup(ctx, dbConn, &models.Status{}, "id_status AS id, descricao AS nome", "descricao ASC")
}

// ListCourts returns all courts ordered by name
func ListCourts(ctx context.Context, dbConn *gorm.DB) ([]LookupOption, error) {
	return listLookup(ctx, dbConn, &models.Court{}, "id_vara_judicial AS id, nome_vara AS nome", "nome_vara ASC")
}

// ListCaseCategories returns the active case categories ordered by description
func ListCaseCategories(ctx context.Context, dbConn *gorm.DB) ([]LookupOption, error) {
	var options []LookupOption
	err := dbConn.WithContext(ctx).
		Model(&models.CaseCategory{}).
		Select("id_categoria_caso AS id, descricao AS nome").
		Where("ativo = ?", true).
		Order("descricao ASC").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []LookupOption{}
	}
	return options, nil
}

func listLookup(ctx context.Context, dbConn *gorm.DB, model interface{}, selectExpr, orderExpr string) ([]LookupOption, error) {
	var options []LookupOption
	err := dbConn.WithContext(ctx).
		Model(model).
		Select(selectExpr).
		Order(orderExpr).
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []LookupOption{}
	}
	return options, nil
}
