// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

// Package mailer sends contact-form notifications through the Resend API.
// The message body is a right-to-left Arabic HTML summary of the submitted
// form, delivered to the site owner with the visitor's address as reply-to.
package mailer

import (
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ContactMessage is a submitted contact form.
type ContactMessage struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	ServiceType string
}

// Sender delivers contact notifications. Implemented by Mailer; handlers
// take the interface so tests can substitute a recorder.
type Sender interface {
	SendContact(msg *ContactMessage) error
}

// Mailer sends notification emails via Resend.
type Mailer struct {
	client *resend.Client
	from   string
	to     string
}

// New creates a Mailer. Returns nil when apiKey is empty, allowing the app
// to run without outbound email; callers must tolerate a nil Sender.
func New(apiKey, from, to string) *Mailer {
	if apiKey == "" {
		return nil
	}
	return &Mailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// SendContact delivers a contact-form notification to the site owner.
func (m *Mailer) SendContact(msg *ContactMessage) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("رسالة جديدة: %s", msg.Subject),
		Html:    contactHTML(msg),
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}

// contactHTML renders the RTL notification body. All visitor-supplied
// values are HTML-escaped.
func contactHTML(msg *ContactMessage) string {
	var b strings.Builder

	b.WriteString(`<div dir="rtl" style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">`)
	b.WriteString(`<h2 style="color: #10b981;">رسالة جديدة من نموذج الاتصال</h2>`)

	b.WriteString(`<div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	fmt.Fprintf(&b, `<p><strong>الاسم:</strong> %s</p>`, html.EscapeString(msg.Name))
	fmt.Fprintf(&b, `<p><strong>البريد الإلكتروني:</strong> %s</p>`, html.EscapeString(msg.Email))
	if msg.Phone != "" {
		fmt.Fprintf(&b, `<p><strong>رقم الهاتف:</strong> %s</p>`, html.EscapeString(msg.Phone))
	}
	if msg.ServiceType != "" {
		fmt.Fprintf(&b, `<p><strong>نوع الخدمة:</strong> %s</p>`, html.EscapeString(msg.ServiceType))
	}
	fmt.Fprintf(&b, `<p><strong>الموضوع:</strong> %s</p>`, html.EscapeString(msg.Subject))
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: #ffffff; padding: 20px; border-left: 4px solid #10b981; margin: 20px 0;">`)
	b.WriteString(`<p><strong>الرسالة:</strong></p>`)
	fmt.Fprintf(&b, `<p style="white-space: pre-wrap;">%s</p>`, html.EscapeString(msg.Message))
	b.WriteString(`</div>`)

	b.WriteString(`<hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">`)
	b.WriteString(`<p style="color: #666; font-size: 12px;">تم إرسال هذه الرسالة من نموذج الاتصال في الموقع</p>`)
	b.WriteString(`</div>`)

	return b.String()
}
