package worker

// invoice_worker.go
// Renders the invoice PDF of a recorded sale and, when the checkout carried a
// customer email, hands the file over to the email queue.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/josebazania/restaurantepos/internal/infra"
	"github.com/josebazania/restaurantepos/internal/model"

	"github.com/rs/zerolog/log"
)

// InvoiceJobPayload is the job envelope sent to QueueInvoice. Sales only
// live in process memory, so the job carries the full snapshot.
type InvoiceJobPayload struct {
	Sale          model.Sale `json:"sale"`
	CustomerEmail string     `json:"customer_email,omitempty"`
}

// EmailEnqueuer is implemented by *Dispatcher.
type EmailEnqueuer interface {
	EnqueueEmail(ctx context.Context, payload EmailJobPayload) error
}

type InvoiceWorker struct {
	storagePath string
	emails      EmailEnqueuer
}

func NewInvoiceWorker(storagePath string, emails EmailEnqueuer) *InvoiceWorker {
	return &InvoiceWorker{storagePath: storagePath, emails: emails}
}

func (w *InvoiceWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload InvoiceJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("invoice_worker: invalid payload: %w", err)
	}

	path, err := infra.GenerateInvoicePDF(payload.Sale, w.storagePath)
	if err != nil {
		return fmt.Errorf("invoice_worker: render %s: %w", payload.Sale.ID, err)
	}
	log.Info().Str("sale_id", payload.Sale.ID).Str("path", path).Msg("invoice_worker: PDF generated")

	if payload.CustomerEmail == "" {
		return nil
	}
	return w.emails.EnqueueEmail(ctx, EmailJobPayload{
		ToEmail: payload.CustomerEmail,
		Subject: fmt.Sprintf("%s - Factura %s", infra.InvoiceIssuer.Brand, payload.Sale.ID),
		Body:    fmt.Sprintf("Gracias por su visita. Adjuntamos la factura de su consumo por $%s.", payload.Sale.Total.StringFixed(2)),
		PDFPath: path,
	})
}
