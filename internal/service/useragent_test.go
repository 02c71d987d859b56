package service

import "testing"

func TestParseUserAgent(t *testing.T) {
	cases := []struct {
		name    string
		ua      string
		browser string
		os      string
	}{
		{
			name:    "chrome on windows",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
			browser: "Chrome",
			os:      "Windows",
		},
		{
			name:    "edge takes precedence over chrome",
			ua:      "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91",
			browser: "Edge",
			os:      "Windows",
		},
		{
			name:    "firefox on linux",
			ua:      "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			browser: "Firefox",
			os:      "Linux",
		},
		{
			name:    "safari on iphone",
			ua:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) Version/17.2 Safari/604.1",
			browser: "Safari",
			os:      "iOS",
		},
		{
			name:    "opera on mac",
			ua:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Chrome/120.0.0.0 Safari/537.36 OPR/106.0.0.0",
			browser: "Opera",
			os:      "macOS",
		},
		{
			name:    "curl has no os marker",
			ua:      "curl/8.4.0",
			browser: "curl",
			os:      "Unknown",
		},
		{
			name:    "android webview",
			ua:      "Mozilla/5.0 (Linux; Android 14; Pixel 8) Chrome/120.0.0.0 Mobile Safari/537.36",
			browser: "Chrome",
			os:      "Android",
		},
		{
			name:    "empty",
			ua:      "   ",
			browser: "Unknown",
			os:      "Unknown",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			browser, os := ParseUserAgent(tc.ua)
			if browser != tc.browser {
				t.Fatalf("browser want %q got %q", tc.browser, browser)
			}
			if os != tc.os {
				t.Fatalf("os want %q got %q", tc.os, os)
			}
		})
	}
}
