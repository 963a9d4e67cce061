package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/folio-labs/portfolio-backend/internal/contacts/domain"
	"github.com/folio-labs/portfolio-backend/internal/notify"
)

// notification renders the owner's email for a new submission. Visitor
// input is HTML-escaped before it lands in the HTML part.
func notification(c domain.Contact) notify.Message {
	text := fmt.Sprintf("Name: %s\nEmail: %s\nProject Type: %s\nBudget: %s\n\nMessage:\n%s",
		c.Name, c.Email, c.ProjectType, c.Budget, c.Message)

	var b strings.Builder
	b.WriteString("<h3>New Contact Submission</h3>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(c.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(c.Email))
	fmt.Fprintf(&b, "<p><strong>Project Type:</strong> %s</p>\n", html.EscapeString(c.ProjectType))
	fmt.Fprintf(&b, "<p><strong>Budget:</strong> %s</p>\n", html.EscapeString(c.Budget))
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", strings.ReplaceAll(html.EscapeString(c.Message), "\n", "<br>"))

	return notify.Message{
		FromName: "Portfolio Contact",
		ReplyTo:  c.Email,
		Subject:  "New Contact from " + c.Name,
		Text:     text,
		HTML:     b.String(),
	}
}
