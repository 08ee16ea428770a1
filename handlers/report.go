package handlers

import (
	"net/http"
	"time"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// ExportReportsHandler streams the three reports as an xlsx workbook
func ExportReportsHandler(c echo.Context) error {
	buf, err := services.ExportReportsWorkbook(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}

	fileName := "relatorios_" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
