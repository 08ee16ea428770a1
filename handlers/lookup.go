package handlers

import (
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetLawyersHandler lists lawyers for the case form dropdown
func GetLawyersHandler(c echo.Context) error {
	list, err := services.ListLawyers(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetStatusesHandler lists case statuses
func GetStatusesHandler(c echo.Context) error {
	list, err := services.ListStatuses(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetCourtsHandler lists courts
func GetCourtsHandler(c echo.Context) error {
	list, err := services.ListCourts(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetCaseCategoriesHandler lists the active case categories
func GetCaseCategoriesHandler(c echo.Context) error {
	list, err := services.ListCaseCategories(c.Request().Context(), db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
