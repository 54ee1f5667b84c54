package lib

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Todas las entradas se tratan como no confiables, venga o no el remitente
// autenticado.

const (
	// MaxEmailLength per addressing-standard convention
	MaxEmailLength = 254
	// MaxPhoneLength límite razonable para un número de teléfono
	MaxPhoneLength = 20
)

var (
	stripPolicy = bluemonday.StrictPolicy()
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex  = regexp.MustCompile(`[^\d+\s\-()]`)
)

// SanitizeText removes HTML markup, trims whitespace and bounds the result
// to maxLength runes.
func SanitizeText(text string, maxLength int) string {
	if text == "" {
		return ""
	}

	// bluemonday escapa el texto restante; se revierte para almacenar texto
	// plano y evitar un doble escape al renderizar
	stripped := html.UnescapeString(stripPolicy.Sanitize(text))
	stripped = strings.TrimSpace(stripped)

	return TruncateRunes(stripped, maxLength)
}

// SanitizeUserInput escapes characters that are dangerous on raw-text render
// paths that do not go through an auto-escaping renderer.
func SanitizeUserInput(input string) string {
	if input == "" {
		return ""
	}

	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
		"/", "&#x2F;",
	)

	return replacer.Replace(input)
}

// SanitizeEmail validates and normalizes an email address.
func SanitizeEmail(email string) (string, error) {
	if email == "" {
		return "", nil
	}

	trimmed := strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(trimmed) {
		return "", fmt.Errorf("invalid email format")
	}

	return TruncateRunes(trimmed, MaxEmailLength), nil
}

// SanitizePhone strips everything that is not a digit, +, space, dash or
// parentheses.
func SanitizePhone(phone string) string {
	if phone == "" {
		return ""
	}

	cleaned := phoneRegex.ReplaceAllString(phone, "")
	return TruncateRunes(cleaned, MaxPhoneLength)
}

// TruncateRunes bounds s to max runes without splitting a rune in half.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
