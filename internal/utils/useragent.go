package utils

import (
	"strings"

	ua "github.com/mssola/user_agent"
)

// DeviceInfo holds the parts of a User-Agent string worth logging
type DeviceInfo struct {
	DeviceType string `json:"device_type"` // mobile, tablet, desktop, unknown
	OS         string `json:"os"`
	Browser    string `json:"browser"`
	IsBot      bool   `json:"is_bot"`
}

// ParseUserAgent parses a User-Agent string. Guests mostly arrive from a
// phone camera after scanning a room QR code, so mobile detection matters.
func ParseUserAgent(userAgent string) DeviceInfo {
	if userAgent == "" {
		return DeviceInfo{DeviceType: "unknown", OS: "Unknown", Browser: "Unknown"}
	}

	parser := ua.New(userAgent)
	name, version := parser.Browser()
	browser := name
	if version != "" {
		browser = name + " " + version
	}

	os := parser.OS()
	if os == "" {
		os = "Unknown"
	}

	return DeviceInfo{
		DeviceType: deviceType(parser),
		OS:         os,
		Browser:    browser,
		IsBot:      parser.Bot(),
	}
}

func deviceType(parser *ua.UserAgent) string {
	if !parser.Mobile() {
		return "desktop"
	}
	lower := strings.ToLower(parser.UA())
	for _, hint := range []string{"ipad", "tablet", "kindle", "sm-t"} {
		if strings.Contains(lower, hint) {
			return "tablet"
		}
	}
	return "mobile"
}
