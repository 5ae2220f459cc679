// internal/app/system/commands/dates.go
package commands

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Written-out Portuguese numbers accepted in relative dates ("daqui dois
// dias").
var numberWords = map[string]int{
	"um": 1, "uma": 1,
	"dois": 2, "duas": 2,
	"três": 3, "tres": 3,
	"quatro": 4,
	"cinco":  5,
	"seis":   6,
	"sete":   7,
	"oito":   8,
	"nove":   9,
	"dez":    10,
	"quinze": 15,
	"vinte":  20,
	"trinta": 30,
}

var (
	relativeRe = regexp.MustCompile(`^(?:daqui(?: a)?|em|dentro de)\s+(\S+)\s+(dias?|semanas?|m[eê]s(?:es)?)$`)
	literalRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?$`)
)

// ParseDate understands the date phrases users type in chat commands:
// "amanhã", "daqui dois dias", "em 3 semanas", "15/10/2025". Ambiguous
// dates resolve to the future: "15/10" with no year means the next
// October 15th. Returns false when the phrase is not understood.
func ParseDate(txt string, now time.Time) (time.Time, bool) {
	txt = strings.ToLower(strings.TrimSpace(txt))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch txt {
	case "hoje":
		return today, true
	case "amanhã", "amanha":
		return today.AddDate(0, 0, 1), true
	case "depois de amanhã", "depois de amanha":
		return today.AddDate(0, 0, 2), true
	}

	if m := relativeRe.FindStringSubmatch(txt); m != nil {
		n, ok := parseNumber(m[1])
		if !ok {
			return time.Time{}, false
		}
		switch {
		case strings.HasPrefix(m[2], "dia"):
			return today.AddDate(0, 0, n), true
		case strings.HasPrefix(m[2], "semana"):
			return today.AddDate(0, 0, 7*n), true
		default: // mês, mes, meses
			return today.AddDate(0, n, 0), true
		}
	}

	if m := literalRe.FindStringSubmatch(txt); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}

		year := today.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		if m[3] == "" && d.Before(today) {
			d = d.AddDate(1, 0, 0)
		}
		return d, true
	}

	return time.Time{}, false
}

func parseNumber(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n, true
	}
	n, ok := numberWords[s]
	return n, ok
}
