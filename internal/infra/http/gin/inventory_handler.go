package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"innsync/internal/app/dto"
	inventoryapp "innsync/internal/app/handlers/inventory"
	"innsync/internal/domain/channels"
)

type InventoryHandler struct {
	Build *inventoryapp.BuildHandler
}

func (h InventoryHandler) Get(c *gin.Context) {
	rng, err := rangeFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var channel channels.Channel
	if raw := c.Query("channel"); raw != "" {
		channel, err = channels.Parse(raw)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	propertyID := c.Param("id")
	lines, err := h.Build.Handle(c.Request.Context(), inventoryapp.BuildQuery{
		PropertyID: propertyID,
		Range:      rng,
		Channel:    channel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapInventory(propertyID, string(rng.From), string(rng.To), lines))
}

var _ InventoryHTTP = InventoryHandler{}
