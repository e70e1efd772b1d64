package useragent

import (
	"net"
	"net/http"
	"strings"
)

type marker struct {
	token string
	name  string
}

// Checked in order; Edge and Chrome both claim Safari.
var browsers = []marker{
	{"Edg/", "Edge"},
	{"Firefox/", "Firefox"},
	{"Chrome/", "Chrome"},
	{"Safari/", "Safari"},
}

var systems = []marker{
	{"Android", "Android"},
	{"iPhone", "iOS"},
	{"iPad", "iOS"},
	{"Windows", "Windows"},
	{"Mac OS X", "macOS"},
	{"Linux", "Linux"},
}

// Client labels a spectator's User-Agent as "Browser on OS" for log lines.
func Client(ua string) string {
	if ua == "" {
		return "unknown client"
	}
	return match(ua, browsers, "unknown browser") + " on " + match(ua, systems, "unknown OS")
}

func match(ua string, markers []marker, fallback string) string {
	for _, m := range markers {
		if strings.Contains(ua, m.token) {
			return m.name
		}
	}
	return fallback
}

// RemoteIP gets the client address, preferring proxy headers
func RemoteIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
