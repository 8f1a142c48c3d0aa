package email

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		msg     Message
		wantErr bool
	}{
		{
			name: "html only",
			from: "noreply@example.com",
			msg:  Message{To: []string{"a@example.com"}, Subject: "Hi", HTMLBody: "<p>hi</p>"},
		},
		{
			name: "text and html",
			from: "noreply@example.com",
			msg:  Message{To: []string{"a@example.com"}, Subject: "Hi", TextBody: "hi", HTMLBody: "<p>hi</p>"},
		},
		{
			name:    "missing from",
			from:    "  ",
			msg:     Message{To: []string{"a@example.com"}, Subject: "Hi", TextBody: "hi"},
			wantErr: true,
		},
		{
			name:    "missing subject",
			from:    "noreply@example.com",
			msg:     Message{To: []string{"a@example.com"}, Subject: "   ", TextBody: "hi"},
			wantErr: true,
		},
		{
			name:    "missing body",
			from:    "noreply@example.com",
			msg:     Message{To: []string{"a@example.com"}, Subject: "Hi"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildMessage(tt.from, tt.msg)
			if tt.wantErr {
				var invalid ErrInvalidMessage
				if !errors.As(err, &invalid) {
					t.Fatalf("err = %v, want ErrInvalidMessage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildMessage: %v", err)
			}
			if got == nil {
				t.Fatal("message is nil")
			}
		})
	}
}

func TestCleanAddrs(t *testing.T) {
	got := cleanAddrs([]string{" a@example.com ", "", "  ", "b@example.com"})
	if len(got) != 2 || got[0] != "a@example.com" || got[1] != "b@example.com" {
		t.Errorf("cleanAddrs = %v", got)
	}
}

func TestSend_Disabled(t *testing.T) {
	c, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = c.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "Hi", TextBody: "hi"})
	var disabled ErrDisabled
	if !errors.As(err, &disabled) {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
}

func TestSMTPTimeoutDefault(t *testing.T) {
	if got := (Config{}).SMTPTimeout(); got != 10*time.Second {
		t.Errorf("SMTPTimeout = %v, want 10s", got)
	}
	if got := (Config{SMTPTimeoutSeconds: 3}).SMTPTimeout(); got != 3*time.Second {
		t.Errorf("SMTPTimeout = %v, want 3s", got)
	}
}
