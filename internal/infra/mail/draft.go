package mail

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/gomail.v2"
)

// FromAddress appears on rendered drafts. Drafts are handed to the agent
// for copy/paste or download; nothing here ever dials SMTP.
const FromAddress = "outreach@thelanguagepeople.com"

type FollowUpData struct {
	FirstName string
	Company   string
	Notes     string
}

var followUpTemplate = template.Must(template.New("followup").Parse(
	`Hi {{.FirstName}},

Thank you for taking the time to speak with me about language services for {{.Company}}.

{{if .Notes}}As discussed, {{.Notes}}

{{end}}If you have any questions or would like to explore next steps, simply reply to this email and our team will be happy to help.

Best regards,
The Language People Team`))

type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ComposeFollowUp renders the deterministic follow-up draft. All three
// inputs are required but any may be the empty string; the output is
// always non-empty.
func ComposeFollowUp(firstName, company, notes string) (Draft, error) {
	data := FollowUpData{
		FirstName: firstName,
		Company:   company,
		Notes:     strings.TrimSpace(notes),
	}

	var body bytes.Buffer
	if err := followUpTemplate.Execute(&body, data); err != nil {
		return Draft{}, fmt.Errorf("failed to render follow-up template: %w", err)
	}

	subject := "Following up on our conversation"
	if company != "" {
		subject += " - " + company
	}

	return Draft{Subject: subject, Body: body.String()}, nil
}

// BuildMessage assembles a draft as a mail message so it can be rendered
// as a downloadable .eml file.
func BuildMessage(to string, d Draft) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", FromAddress)
	if to != "" {
		m.SetHeader("To", to)
	}
	m.SetHeader("Subject", d.Subject)
	m.SetBody("text/plain", d.Body)
	return m
}

// RenderEML serializes the message in RFC822 form.
func RenderEML(m *gomail.Message) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render draft: %w", err)
	}
	return buf.Bytes(), nil
}
