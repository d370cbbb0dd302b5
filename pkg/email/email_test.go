package email

import (
	"bytes"
	"context"
	"testing"

	"portfolio-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessageHeaders(t *testing.T) {
	m := buildMessage(Message{
		From:     "owner@example.com",
		To:       "owner@example.com",
		ReplyTo:  "jane@example.com",
		Subject:  "Portfolio Contact: Project inquiry",
		HTMLBody: "<p>hi</p>",
	})

	assert.Equal(t, []string{"owner@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"owner@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"jane@example.com"}, m.GetHeader("Reply-To"))
	assert.Equal(t, []string{"Portfolio Contact: Project inquiry"}, m.GetHeader("Subject"))

	var raw bytes.Buffer
	_, err := m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "Content-Type: text/html")
}

func TestBuildMessageOmitsEmptyReplyTo(t *testing.T) {
	m := buildMessage(Message{From: "a@b.co", To: "a@b.co", Subject: "x"})
	assert.Empty(t, m.GetHeader("Reply-To"))
}

func TestSMTPSenderSkipsCancelledContext(t *testing.T) {
	// Nothing listens on port 1; reaching the dialer would yield a different error.
	s := NewSMTPSender(&config.Config{SMTPHost: "127.0.0.1", SMTPPort: 1, SMTPUsername: "u", SMTPPassword: "p"})
	assert.Equal(t, "127.0.0.1", s.Host())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Send(ctx, Message{From: "a@b.co", To: "a@b.co", Subject: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderContactBody(t *testing.T) {
	body, err := RenderContactBody(ContactEmailData{
		SenderName:  "Jane Doe",
		SenderEmail: "jane@example.com",
		Subject:     "Project inquiry",
		Message:     "line one\nline two\r\nline three",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, `href="mailto:jane@example.com"`)
	assert.Contains(t, body, "Project inquiry")
	assert.Regexp(t, `line one<br/?>line two<br/?>line three`, body)
}

func TestRenderContactBodyEscapesInput(t *testing.T) {
	body, err := RenderContactBody(ContactEmailData{
		SenderName:  "<b>Mallory</b>",
		SenderEmail: "m@example.com",
		Subject:     "Hello <i>there</i>",
		Message:     "<script>alert(1)</script>\n<img src=x onerror=alert(2)>",
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<img")
	assert.NotContains(t, body, "<b>Mallory")
	assert.NotContains(t, body, "<i>there")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "&lt;b&gt;Mallory")
	assert.Regexp(t, `<br/?>`, body)
}
