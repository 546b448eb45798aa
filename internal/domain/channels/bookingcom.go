package channels

import (
	"fmt"
	"strings"

	"innsync/internal/domain/inventory"
)

// buildBookingPayload renders the B.XML availability request body:
// request / room[id] / date[from,to] / currencycode, rate[id], price,
// roomstosell, closed.
func buildBookingPayload(lines []inventory.Line, opts ExportOptions) Payload {
	currency := opts.Currency
	if currency == "" {
		currency = "PLN"
	}
	var b strings.Builder
	b.WriteString("<request>\n")
	if opts.BookingHotelID != "" {
		fmt.Fprintf(&b, "  <hotel_id>%s</hotel_id>\n", escapeXML(opts.BookingHotelID))
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "  <room id=\"%s\">\n", escapeXML(l.ExternalID))
		fmt.Fprintf(&b, "    <date from=\"%s\" to=\"%s\">\n", escapeXML(string(l.Date)), escapeXML(string(l.Date)))
		fmt.Fprintf(&b, "      <currencycode>%s</currencycode>\n", escapeXML(currency))
		if opts.BookingRateID != "" {
			fmt.Fprintf(&b, "      <rate id=\"%s\"/>\n", escapeXML(opts.BookingRateID))
		}
		fmt.Fprintf(&b, "      <price>%s</price>\n", l.Price.Format2())
		fmt.Fprintf(&b, "      <roomstosell>%d</roomstosell>\n", clampRoomsToSell(l.RoomsToSell))
		b.WriteString("      <closed>0</closed>\n")
		b.WriteString("    </date>\n")
		b.WriteString("  </room>\n")
	}
	b.WriteString("</request>")
	return Payload{
		Channel:     BookingCom,
		ContentType: "application/xml",
		Body:        []byte(b.String()),
		Records:     len(lines),
	}
}
