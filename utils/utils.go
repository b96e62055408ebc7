package utils

import (
	"log"
	"net/http"
	"strings"
	"unicode"
)

// LogRequest logs the request and hides some header fields because of security reasons
func LogRequest(req *http.Request) {
	if req == nil {
		return
	}

	method := req.Method
	path := req.URL.Path

	header := make(map[string][]string)
	for key, value := range req.Header {
		var logValue []string
		//do not log signatures, api keys, cookies and Authorization
		if key == "Authorization" || key == "Cookie" || key == "Svix-Signature" ||
			key == "Webhook-Signature" || key == "Stripe-Signature" || key == "Admin-Api-Key" {
			logValue = append(logValue, "---")
		} else {
			logValue = value
		}
		header[key] = logValue
	}
	log.Printf("%s %s %s", method, path, header)
}

// Slugify makes a url-safe slug out of a display name - lowercased, with
// every run of non-alphanumeric characters collapsed to a single dash
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true //suppress a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
