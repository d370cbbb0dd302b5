package email

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Contact Form Submission</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
    <p><strong>Name:</strong> {{.SenderName}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.SenderEmail}}">{{.SenderEmail}}</a></p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <div style="background: white; padding: 15px; border-radius: 4px; border-left: 4px solid #007bff;">
      {{.Message}}
    </div>
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 20px;">
    This message was sent from your portfolio contact form.
  </p>
</div>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

// messagePolicy lets line breaks through and nothing else.
var messagePolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br")
	return p
}()

// RenderContactBody renders the HTML body forwarded to the site owner.
func RenderContactBody(data ContactEmailData) (string, error) {
	var body bytes.Buffer
	err := contactTmpl.Execute(&body, struct {
		SenderName  string
		SenderEmail string
		Subject     string
		Message     template.HTML
	}{
		SenderName:  data.SenderName,
		SenderEmail: data.SenderEmail,
		Subject:     data.Subject,
		Message:     messageHTML(data.Message),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func messageHTML(msg string) template.HTML {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	withBreaks := strings.ReplaceAll(html.EscapeString(msg), "\n", "<br>")
	return template.HTML(messagePolicy.Sanitize(withBreaks))
}
