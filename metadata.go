package estimate

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/vijayhardaha/estimate-generator-cli/internal/currency"
	"github.com/vijayhardaha/estimate-generator-cli/internal/dateutil"
	"github.com/vijayhardaha/estimate-generator-cli/internal/numutil"
)

// organizeMetadata maps the flat front-matter fields into typed groups.
// Only the known field set is consulted; unrecognized front-matter keys
// never reach the renderer. Every string field defaults to empty, the
// date defaults to the current date, and financial fields default to
// 0 (currency to "usd").
func organizeMetadata(fields map[string]string, now time.Time) (Metadata, error) {
	meta := Metadata{
		Client: Client{
			Name:     fields["clientName"],
			Company:  fields["clientCompany"],
			Location: fields["clientLocation"],
			Email:    fields["clientEmail"],
		},
		Developer: Developer{
			Name:     fields["devName"],
			Email:    fields["devEmail"],
			Skype:    fields["devSkype"],
			Twitter:  fields["devTwitter"],
			Website:  fields["devWebsite"],
			Location: fields["devLocation"],
		},
		Project: Project{
			Title:       fields["title"],
			Description: descriptionMarkup(fields["description"]),
			Notes:       notesMarkup(fields["notes"]),
		},
		Parameters: Parameters{
			Currency:   currency.DefaultCode,
			ServiceTax: numutil.LenientNumber(fields["serviceTax"]),
			Tax:        numutil.LenientNumber(fields["tax"]),
			OtherFee:   numutil.LenientNumber(fields["otherFee"]),
			Discount:   numutil.LenientNumber(fields["discount"]),
		},
	}

	if code := strings.TrimSpace(fields["currency"]); code != "" {
		meta.Parameters.Currency = code
	}

	date, err := resolveDisplayDate(fields["date"], now)
	if err != nil {
		return Metadata{}, err
	}
	meta.Project.Date = date

	return meta, nil
}

// resolveDisplayDate formats the configured date for display, falling
// back to the current date when none is set.
func resolveDisplayDate(value string, now time.Time) (string, error) {
	if strings.TrimSpace(value) == "" {
		return dateutil.Current(dateutil.DefaultFormat, now)
	}
	return dateutil.Format(value, dateutil.DefaultFormat)
}

// descriptionMarkup turns newline-delimited free text into paragraph
// fragments. Blank-only input yields an empty string, not markup.
func descriptionMarkup(text string) string {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(line))
	}
	return b.String()
}

// notesMarkup turns newline-delimited free text into an ordered list
// under a "Notes" heading. Blank-only input yields an empty string.
func notesMarkup(text string) string {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<h3>Notes</h3><ol>")
	for _, line := range lines {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(line))
	}
	b.WriteString("</ol>")
	return b.String()
}

// nonBlankLines splits text on newlines and drops blank lines.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
