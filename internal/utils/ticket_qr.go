package utils

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// TicketQRCodePNG renders a ticket code as a PNG QR image and returns it
// base64 encoded for embedding in a JSON response.
func TicketQRCodePNG(ticketCode string, size int) (string, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(ticketCode, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("failed to encode ticket QR code: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
