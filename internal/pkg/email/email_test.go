package email

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFieldsEscapesAndSorts(t *testing.T) {
	out := RenderFields("New contact message", map[string]string{
		"subject": "Fees <2025>",
		"name":    "Ali",
		"message": "line one\nline two",
	})

	assert.Contains(t, out, "Fees &lt;2025&gt;")
	assert.Contains(t, out, "line one<br>line two")
	assert.Less(t, strings.Index(out, ">message<"), strings.Index(out, ">name<"))
	assert.Less(t, strings.Index(out, ">name<"), strings.Index(out, ">subject<"))
}

func TestUnconfiguredNotifierOnlyLogs(t *testing.T) {
	var buf bytes.Buffer
	n := NewSMTPNotifier(SMTPConfig{}, zerolog.New(&buf))

	require.NoError(t, n.SendInquiryNotification("New visit request", map[string]string{"name": "Sara"}))
	assert.Contains(t, buf.String(), "inquiry notification not sent")
}

func TestBuildMessageHeaders(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{FromName: "GCMS Website", FromEmail: "web@gcms.edu.pk"}, zerolog.Nop())
	msg := string(n.buildMessage("office@gcms.edu.pk", "Hello", "<p>x</p>"))

	assert.True(t, strings.HasPrefix(msg, "From: GCMS Website <web@gcms.edu.pk>\r\n"))
	assert.Contains(t, msg, "To: office@gcms.edu.pk\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>x</p>"))
}
