package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// DocumentsPerClientCase counts documents per client/process combination
type DocumentsPerClientCase struct {
	ClientName     string  `gorm:"column:cliente_nome" json:"cliente_nome"`
	ProcessNumber  *string `gorm:"column:numero_processo" json:"numero_processo"`
	TotalDocuments int64   `gorm:"column:total_documentos" json:"total_documentos"`
}

// CasesPerLawyerStatus counts cases per lawyer/status combination
type CasesPerLawyerStatus struct {
	LawyerName        string `gorm:"column:advogado_nome" json:"advogado_nome"`
	StatusDescription string `gorm:"column:status_descricao" json:"status_descricao"`
	TotalCases        int64  `gorm:"column:total_casos" json:"total_casos"`
}

// HearingsPerClientLawyer counts hearings per client/lawyer combination
type HearingsPerClientLawyer struct {
	ClientName    string `gorm:"column:cliente_nome" json:"cliente_nome"`
	LawyerName    string `gorm:"column:advogado_nome" json:"advogado_nome"`
	TotalHearings int64  `gorm:"column:total_audiencias" json:"total_audiencias"`
}

// Reports bundles the three aggregates served by the reports page
type Reports struct {
	DocumentsPerClientCase  []DocumentsPerClientCase  `json:"report_data_docs_clientes_casos"`
	CasesPerLawyerStatus    []CasesPerLawyerStatus    `json:"report_data_casos_advogado_status"`
	HearingsPerClientLawyer []HearingsPerClientLawyer `json:"report_data_audiencias_cliente_advogado"`
}

// BuildReports runs the three report aggregations
func BuildReports(ctx context.Context, dbConn *gorm.DB) (*Reports, error) {
	reports := &Reports{
		DocumentsPerClientCase:  []DocumentsPerClientCase{},
		CasesPerLawyerStatus:    []CasesPerLawyerStatus{},
		HearingsPerClientLawyer: []HearingsPerClientLawyer{},
	}
	conn := dbConn.WithContext(ctx)

	err := conn.Raw(`
		SELECT cl.nome AS cliente_nome, c.numero_processo, COUNT(d.id_documento) AS total_documentos
		FROM Documento d
		JOIN Caso c ON d.id_caso = c.id_caso
		JOIN Cliente cl ON c.id_cliente = cl.id_cliente
		GROUP BY cl.nome, c.numero_processo
		ORDER BY cl.nome, c.numero_processo`).
		Scan(&reports.DocumentsPerClientCase).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build documents report: %w", err)
	}

	err = conn.Raw(`
		SELECT adv.nome AS advogado_nome, s.descricao AS status_descricao, COUNT(c.id_caso) AS total_casos
		FROM Caso c
		JOIN Advogado adv ON c.id_advogado = adv.id_advogado
		JOIN Status s ON c.id_status = s.id_status
		GROUP BY adv.nome, s.descricao
		ORDER BY adv.nome, s.descricao`).
		Scan(&reports.CasesPerLawyerStatus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build cases report: %w", err)
	}

	err = conn.Raw(`
		SELECT cl.nome AS cliente_nome, adv.nome AS advogado_nome, COUNT(a.id_audiencia) AS total_audiencias
		FROM Audiencia a
		JOIN Caso c ON a.id_caso = c.id_caso
		JOIN Cliente cl ON c.id_cliente = cl.id_cliente
		JOIN Advogado adv ON c.id_advogado = adv.id_advogado
		GROUP BY cl.nome, adv.nome
		ORDER BY cl.nome, adv.nome`).
		Scan(&reports.HearingsPerClientLawyer).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build hearings report: %w", err)
	}

	return reports, nil
}

// ExportReportsWorkbook renders the three reports into an xlsx workbook, one
// sheet per report.
func ExportReportsWorkbook(ctx context.Context, dbConn *gorm.DB) (*bytes.Buffer, error) {
	reports, err := BuildReports(ctx, dbConn)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	// Sheet 1: documents per client and process
	sheetDocs := "Documentos por Cliente"
	f.SetSheetName("Sheet1", sheetDocs)
	writeHeader(f, sheetDocs, headerStyle, "Cliente", "Número do Processo", "Total de Documentos")
	for i, row := range reports.DocumentsPerClientCase {
		process := ""
		if row.ProcessNumber != nil {
			process = *row.ProcessNumber
		}
		writeRow(f, sheetDocs, i+2, row.ClientName, process, row.TotalDocuments)
	}

	// Sheet 2: cases per lawyer and status
	sheetCases := "Casos por Advogado"
	if _, err := f.NewSheet(sheetCases); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	writeHeader(f, sheetCases, headerStyle, "Advogado", "Status", "Total de Casos")
	for i, row := range reports.CasesPerLawyerStatus {
		writeRow(f, sheetCases, i+2, row.LawyerName, row.StatusDescription, row.TotalCases)
	}

	// Sheet 3: hearings per client and lawyer
	sheetHearings := "Audiências"
	if _, err := f.NewSheet(sheetHearings); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	writeHeader(f, sheetHearings, headerStyle, "Cliente", "Advogado", "Total de Audiências")
	for i, row := range reports.HearingsPerClientLawyer {
		writeRow(f, sheetHearings, i+2, row.ClientName, row.LawyerName, row.TotalHearings)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func writeHeader(f *excelize.File, sheet string, style int, titles ...string) {
	for i, title := range titles {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, value)
	}
}
