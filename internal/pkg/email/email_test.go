package email

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestUnconfiguredServiceSkipsSending(t *testing.T) {
	var buf bytes.Buffer
	svc := NewEmailService(SMTPConfig{}, zerolog.New(&buf))

	if err := svc.SendInterviewStatusEmail("c@example.com", "Cara", "Backend Engineer", "Selected"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.SendAccountDecisionEmail("r@example.com", "Rob", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "SMTP credentials not configured") {
		t.Errorf("expected a warning to be logged, got %q", buf.String())
	}
}

func TestBuildMessage(t *testing.T) {
	svc := &EmailServiceImpl{config: SMTPConfig{FromName: "Hiring", FromEmail: "jobs@example.com"}}
	msg := string(svc.buildMessage("c@example.com", "Hello", "<p>hi</p>"))

	if !strings.HasPrefix(msg, "From: Hiring <jobs@example.com>\r\nTo: c@example.com\r\nSubject: Hello\r\n") {
		t.Errorf("unexpected header block: %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\n<p>hi</p>") {
		t.Errorf("body not separated from headers: %q", msg)
	}
}
