package storefront

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/catalog"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice groups thousands: 4949 -> "4,949".
func FormatPrice(v int64) string {
	return pricePrinter.Sprintf("%d", v)
}

// OrderMessage is the composed order text and what it was built from.
type OrderMessage struct {
	Text           string
	Total          int64
	HasCustomImage bool
}

// ComposeOrderMessage renders the order text sent to the order number. The
// layout is read by the seller's WhatsApp and must not change.
func ComposeOrderMessage(d CustomerDetails, items []OrderLine) OrderMessage {
	var b strings.Builder

	b.WriteString("🎨 *New Order from SLM Paintings*\n\n")
	b.WriteString("👤 *Customer Details*\n")
	fmt.Fprintf(&b, "Name: %s\n", d.FullName)
	fmt.Fprintf(&b, "Phone: %s\n", d.Phone)
	fmt.Fprintf(&b, "WhatsApp: %s\n", d.WhatsApp)
	fmt.Fprintf(&b, "Address: %s\n", d.Address)
	fmt.Fprintf(&b, "ZIP: %s\n\n", d.ZipCode)

	if hasLocation(d) {
		fmt.Fprintf(&b, "Location: %.6f, %.6f\n", *d.Latitude, *d.Longitude)
		if d.City != "" || d.State != "" {
			b.WriteString("City/State: ")
			b.WriteString(d.City)
			if d.State != "" {
				b.WriteString(", ")
				b.WriteString(d.State)
			}
			b.WriteString("\n\n")
		}
	}

	b.WriteString("📦 *Order Items*\n")

	msg := OrderMessage{}
	for i, item := range items {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, item.Name())
		fmt.Fprintf(&b, "   Size: %s\n", catalog.SizeLabel(item.Size))
		fmt.Fprintf(&b, "   Frame: %s\n", catalog.FrameLabel(item.Frame))
		fmt.Fprintf(&b, "   Price: ₹%s\n", FormatPrice(item.Price))
		if item.CustomImage != "" {
			b.WriteString("   (Custom image uploaded)\n")
			msg.HasCustomImage = true
		}
		msg.Total += item.Price
	}

	fmt.Fprintf(&b, "\n💰 *Total: ₹%s*", FormatPrice(msg.Total))

	msg.Text = b.String()
	return msg
}

// A zero coordinate counts as missing.
func hasLocation(d CustomerDetails) bool {
	return d.Latitude != nil && d.Longitude != nil && *d.Latitude != 0 && *d.Longitude != 0
}

// ComposeImageNotice is the short text sent to the operator when an order has
// a custom image. The image itself is not carried by the link.
func ComposeImageNotice(d CustomerDetails, orderID int64) string {
	return fmt.Sprintf("📸 *Custom Order Image*\n\nCustomer: %s\nPhone: %s\nOrder ID: %d\n\nPlease find the custom painting image attached above.",
		d.FullName, d.Phone, orderID)
}
