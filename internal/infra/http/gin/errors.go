package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"innsync/internal/domain/calendar"
	"innsync/internal/domain/channels"
	domaininventory "innsync/internal/domain/inventory"
)

// respondError maps domain errors onto HTTP statuses: bad input is the
// caller's fault, an empty inventory window is unprocessable, everything
// else is a server failure.
func respondError(c *gin.Context, err error) {
	var validation *domaininventory.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
		return
	}
	if errors.Is(err, calendar.ErrInvalidRange) || errors.Is(err, channels.ErrUnknownChannel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var noAvail *domaininventory.NoAvailabilityError
	if errors.As(err, &noAvail) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": noAvail.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// rangeFromQuery reads the from/to query pair, both required.
func rangeFromQuery(c *gin.Context) (calendar.Range, error) {
	from, err := calendar.ParseDay(c.Query("from"))
	if err != nil {
		return calendar.Range{}, err
	}
	to, err := calendar.ParseDay(c.Query("to"))
	if err != nil {
		return calendar.Range{}, err
	}
	rng := calendar.Range{From: from, To: to}
	if err := rng.Validate(); err != nil {
		return calendar.Range{}, err
	}
	return rng, nil
}
