package mailer

import (
	"slices"
	"sync"
)

// MockMailer satisfies Mailer by recording deliveries instead of dialing
// SMTP. Tests inspect what would have gone out through SentEmails.
type MockMailer struct {
	mu   sync.Mutex
	sent []SentEmail
}

// SentEmail is one recorded delivery.
type SentEmail struct {
	Recipient    string
	TemplateFile string
	Data         any
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, SentEmail{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

// SentEmails returns the recorded deliveries in send order.
func (m *MockMailer) SentEmails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.sent)
}

// Reset discards the recorded deliveries.
func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = nil
}
