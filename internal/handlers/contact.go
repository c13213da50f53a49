// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"analystsite/internal/mailer"
)

// Contact handles the public contact form. Error and success messages are
// Arabic because they are rendered verbatim by the site.
type Contact struct {
	sender mailer.Sender
}

// NewContact creates a new Contact handler group. sender may be nil when
// outbound email is not configured.
func NewContact(sender mailer.Sender) *Contact {
	return &Contact{sender: sender}
}

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	ServiceType string `json:"service_type"`

	ServiceTypeAlias string `json:"serviceType"`
}

// Submit handles POST /contact.
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ServiceType == "" {
		req.ServiceType = req.ServiceTypeAlias
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "الرجاء ملء جميع الحقول المطلوبة")
		return
	}

	if c.sender == nil {
		slog.Warn("contact form submitted but email is not configured")
		writeError(w, http.StatusServiceUnavailable, "نموذج الاتصال غير متاح حالياً")
		return
	}

	msg := &mailer.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		ServiceType: req.ServiceType,
	}
	if err := c.sender.SendContact(msg); err != nil {
		slog.Error("contact email failed", "error", err)
		writeError(w, http.StatusInternalServerError, "حدث خطأ أثناء إرسال الرسالة. يرجى المحاولة مرة أخرى.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "تم إرسال الرسالة بنجاح",
	})
}
