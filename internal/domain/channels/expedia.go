package channels

import (
	"fmt"
	"strings"

	"innsync/internal/domain/inventory"
)

const expediaARNamespace = "http://www.expediaconnect.com/EQC/AR/2007/02"

// buildExpediaPayload renders an EQC AvailRateUpdateRQ body:
// AvailRateUpdateRQ / AvailRateUpdate / RoomType / RatePlan / DateRange,
// Inventory, Rate.
func buildExpediaPayload(propertyID string, lines []inventory.Line, opts ExportOptions) Payload {
	ratePlanID := opts.ExpediaRatePlanID
	if ratePlanID == "" {
		ratePlanID = "1"
	}
	// EQC identifies the property by Expedia's own hotel id, not ours.
	if opts.ExpediaHotelID != "" {
		propertyID = opts.ExpediaHotelID
	}
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<AvailRateUpdateRQ xmlns=\"%s\">\n", expediaARNamespace)
	fmt.Fprintf(&b, "  <AvailRateUpdate propertyId=\"%s\">\n", escapeXML(propertyID))
	for _, l := range lines {
		fmt.Fprintf(&b, "    <RoomType id=\"%s\">\n", escapeXML(l.ExternalID))
		fmt.Fprintf(&b, "      <RatePlan id=\"%s\">\n", escapeXML(ratePlanID))
		fmt.Fprintf(&b, "        <DateRange date=\"%s\" />\n", escapeXML(string(l.Date)))
		fmt.Fprintf(&b, "        <Inventory>%d</Inventory>\n", clampRoomsToSell(l.RoomsToSell))
		fmt.Fprintf(&b, "        <Rate>%s</Rate>\n", l.Price.Format2())
		b.WriteString("      </RatePlan>\n")
		b.WriteString("    </RoomType>\n")
	}
	b.WriteString("  </AvailRateUpdate>\n")
	b.WriteString("</AvailRateUpdateRQ>")
	return Payload{
		Channel:     Expedia,
		ContentType: "text/xml",
		Body:        []byte(b.String()),
		Records:     len(lines),
	}
}
