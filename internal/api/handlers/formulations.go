package handlers

import (
	"net/http"

	"github.com/Omar0902/SDOM/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ListFormulations handles GET /api/v1/formulations: the static menu of
// every pluggable sub-formulation a Formulations file (§6) can select.
func ListFormulations(c *gin.Context) {
	c.JSON(http.StatusOK, models.FormulationsResponse{
		Formulations: []models.FormulationInfo{
			{Axis: "hydro", Name: "RunOfRiver"},
			{Axis: "hydro", Name: "MonthlyBudget"},
			{Axis: "hydro", Name: "DailyBudget"},
			{Axis: "trade", Name: "Disabled"},
			{Axis: "trade", Name: "PriceNetLoad"},
			{Axis: "resilience", Name: "Disabled"},
			{Axis: "resilience", Name: "Enabled"},
		},
	})
}
