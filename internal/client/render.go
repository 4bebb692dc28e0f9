package client

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-address-book/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(9)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// renderContacts draws contacts as a bordered table, one row per contact
// with all of its emails joined.
func renderContacts(contacts []models.ContactResponse) string {
	if len(contacts) == 0 {
		return helpStyle.Render("no contacts")
	}

	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{c.ID, c.Name, strings.Join(c.Emails, ", "), c.Phone, c.Address})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "NAME", "EMAILS", "PHONE", "ADDRESS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func renderContact(c models.ContactResponse) string {
	lines := []string{
		labelStyle.Render("id") + c.ID,
		labelStyle.Render("name") + c.Name,
		labelStyle.Render("email") + c.Email,
	}
	for i, email := range c.Emails {
		if i == 0 {
			continue
		}
		lines = append(lines, labelStyle.Render("")+email)
	}
	lines = append(lines,
		labelStyle.Render("phone")+c.Phone,
		labelStyle.Render("address")+c.Address,
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
