// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email lowercases and trims an email address for storage and lookup.
// Emails are compared case-insensitively throughout the app.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// TaskStatus canonicalizes a task status string, accepting the common
// unaccented spellings that show up in spreadsheets and chat commands.
func TaskStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "não iniciada", "nao iniciada":
		return "não iniciada"
	case "em andamento":
		return "em andamento"
	case "concluída", "concluida":
		return "concluída"
	case "congelada":
		return "congelada"
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// Priority canonicalizes a task priority ("media" → "média").
func Priority(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baixa":
		return "baixa"
	case "média", "media":
		return "média"
	case "alta":
		return "alta"
	}
	return strings.ToLower(strings.TrimSpace(s))
}
