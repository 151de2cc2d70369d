package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrymomot/userdash/pkg/directory"
)

// UsersTable renders a directory listing as a bordered table followed by
// the "showing N of M" line.
func UsersTable(listing directory.Listing) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("ID", "NAME", "EMAIL", "CITY", "COMPANY")

	for _, u := range listing.Users {
		t.Row(strconv.Itoa(u.ID), u.Name, u.Email, u.Address.City, u.Company.Name)
	}

	return t.String() + "\n" + dimStyle.Render(summary(listing))
}

func summary(l directory.Listing) string {
	if l.Filtered {
		return fmt.Sprintf("Showing %d of %d users matching %q", l.Shown, l.Total, l.Query)
	}
	return fmt.Sprintf("Showing %d users", l.Total)
}
