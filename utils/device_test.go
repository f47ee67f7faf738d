package utils

import (
	"strings"
	"testing"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestParseUserAgent(t *testing.T) {
	browser, os, device := ParseUserAgent(chromeUA)
	if browser != "Chrome" {
		t.Errorf("expected Chrome, got %q", browser)
	}
	if !strings.Contains(os, "Windows") {
		t.Errorf("expected Windows OS, got %q", os)
	}
	if device != "Desktop" {
		t.Errorf("expected Desktop, got %q", device)
	}
}

func TestParseUserAgentEmpty(t *testing.T) {
	browser, os, device := ParseUserAgent("")
	if browser != "Unknown Browser" || os != "Unknown OS" || device != "Desktop" {
		t.Errorf("unexpected defaults: %q %q %q", browser, os, device)
	}
}

func TestDescribeClient(t *testing.T) {
	desc := DescribeClient(chromeUA)
	if !strings.Contains(desc, "Chrome on") || !strings.Contains(desc, "(Desktop)") {
		t.Errorf("unexpected description: %q", desc)
	}
}
