package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stockboard/internal/core"
)

// groupIndian inserts Indian-style digit separators: the last three digits
// form one group, everything before that groups in pairs (1234567 ->
// "12,34,567").
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// formatGrouped renders an integer with Indian digit grouping.
func formatGrouped(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := groupIndian(strconv.FormatInt(v, 10))
	if neg {
		return "-" + s
	}
	return s
}

// formatRupees renders a whole-rupee amount with the currency prefix.
func formatRupees(v int64) string {
	if v < 0 {
		return "-₹" + groupIndian(strconv.FormatInt(-v, 10))
	}
	return "₹" + groupIndian(strconv.FormatInt(v, 10))
}

// formatRupeesFloat renders a possibly fractional rupee amount. The
// fractional part is kept as-is, without rounding.
func formatRupeesFloat(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := groupIndian(intPart)
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		return "-₹" + out
	}
	return "₹" + out
}

// badgeClass maps a health badge to its CSS class.
func badgeClass(b core.Badge) string {
	switch b {
	case core.BadgeHealthy:
		return "badge-healthy"
	case core.BadgeWatch:
		return "badge-watch"
	default:
		return "badge-low"
	}
}

// formatGrowth renders the growth tile figure ("+12.4%").
func formatGrowth(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	if pct >= 0 {
		return "+" + s + "%"
	}
	return s + "%"
}

// sanitizeInput trims whitespace and strips control characters except
// tab, newline and carriage return.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(buf)
}
