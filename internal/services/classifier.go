package services

import (
	"strings"

	"back_qr/internal/models"
)

// Classify inspects a QR payload and reports what kind of content it
// holds. Matching is case-insensitive and ordered; the first rule that
// matches wins and anything unrecognized is plain text. The function
// never fails, and Data always echoes the input unmodified.
func Classify(data string) models.QRInfo {
	info := models.QRInfo{
		Type:        "text",
		Description: "Plain text",
		Data:        data,
	}

	lower := strings.ToLower(data)
	upper := strings.ToUpper(data)

	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		info.Type = "url"
		info.Description = "Website URL"
	case strings.HasPrefix(lower, "mailto:"):
		info.Type = "email"
		info.Description = "Email address"
	case strings.HasPrefix(lower, "tel:"):
		info.Type = "phone"
		info.Description = "Phone number"
	case strings.HasPrefix(lower, "sms:"):
		info.Type = "sms"
		info.Description = "SMS message"
	case strings.HasPrefix(lower, "wifi:"):
		info.Type = "wifi"
		info.Description = "WiFi credentials"
	case strings.Contains(upper, "BEGIN:VCARD"):
		info.Type = "vcard"
		info.Description = "Contact card"
	case strings.Contains(upper, "BEGIN:VEVENT"):
		info.Type = "event"
		info.Description = "Calendar event"
	}

	return info
}
