package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"innsync/internal/app/dto"
	chartapp "innsync/internal/app/handlers/tapechart"
)

type ChartHandler struct {
	Chart *chartapp.GetChartHandler
}

func (h ChartHandler) Get(c *gin.Context) {
	rng, err := rangeFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	propertyID := c.Param("id")
	chart, err := h.Chart.Handle(c.Request.Context(), chartapp.ChartQuery{PropertyID: propertyID, Range: rng})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapChart(propertyID, chart))
}

func (h ChartHandler) Occupancy(c *gin.Context) {
	rng, err := rangeFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	propertyID := c.Param("id")
	chart, err := h.Chart.Handle(c.Request.Context(), chartapp.ChartQuery{PropertyID: propertyID, Range: rng})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapOccupancy(propertyID, chart.Summary))
}

var _ ChartHTTP = ChartHandler{}
