package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	syncapp "innsync/internal/app/handlers/sync"
	"innsync/internal/domain/channels"
)

type SyncHandler struct {
	Sync *syncapp.Handler
}

func (h SyncHandler) Trigger(c *gin.Context) {
	rng, err := rangeFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	channel, err := channels.Parse(c.Param("channel"))
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.Sync.Handle(c.Request.Context(), syncapp.Command{
		PropertyID: c.Param("id"),
		Range:      rng,
		Channel:    channel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadGateway
	}
	c.JSON(status, res)
}

var _ SyncHTTP = SyncHandler{}
