package worker

// email_worker.go
// Processes email jobs from QueueEmail.
// Sends invoice PDFs to customer emails via SMTP.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/josebazania/restaurantepos/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// InvoiceSender is implemented by *infra.Mailer.
type InvoiceSender interface {
	SendInvoice(to, subject, body, pdfPath string) error
}

// EmailWorker processes email jobs from QueueEmail.
type EmailWorker struct {
	mailer InvoiceSender
}

func NewEmailWorker(mailer InvoiceSender) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends an email with the PDF invoice as attachment. Jobs are
// dropped, not failed, while SMTP is not configured.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("email_worker: invalid payload: %w", err)
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email, skipping")
		return nil
	}

	err := w.mailer.SendInvoice(payload.ToEmail, payload.Subject, payload.Body, payload.PDFPath)
	if errors.Is(err, infra.ErrMailerDisabled) {
		log.Warn().Str("to", payload.ToEmail).Msg("email_worker: SMTP not configured, dropping job")
		return nil
	}
	if err != nil {
		return fmt.Errorf("email_worker: send to %s: %w", payload.ToEmail, err)
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: invoice sent successfully")
	return nil
}
