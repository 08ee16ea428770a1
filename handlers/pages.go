package handlers

import (
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/logging"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// ClientsPageHandler serves the clients page props: the full client list with
// subtype documents.
func ClientsPageHandler(c echo.Context) error {
	list, err := services.ListClientRows(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"clientes": list})
}

// CasesPageHandler serves the cases page props: the joined case list
func CasesPageHandler(c echo.Context) error {
	list, err := services.ListCases(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"cases": list})
}

// DocumentsPageHandler serves the documents page props: metadata list, most
// recent first.
func DocumentsPageHandler(c echo.Context) error {
	list, err := services.ListDocuments(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"documents": list})
}

// ReportsPageHandler serves the reports page props: the three aggregates
func ReportsPageHandler(c echo.Context) error {
	reports, err := services.BuildReports(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reports)
}

// AIPageHandler serves the document Q&A page props: available models plus the
// document filename list. A model listing failure degrades to an empty list
// so the page still loads when the generation service is down.
func AIPageHandler(c echo.Context) error {
	ctx := c.Request().Context()

	models, err := services.Ollama.ListModels(ctx)
	if err != nil {
		logging.Log.Warn().Err(err).Msg("model listing unavailable")
		models = []services.ModelOption{}
	}

	documents, err := services.ListDocumentOptions(ctx, db.DB)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ollama_models": models,
		"documents":     documents,
	})
}
