package service

import (
	"bytes"
	"context"

	"github.com/josebazania/restaurantepos/internal/infra"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"
)

type InvoiceService interface {
	// Render returns the PDF bytes and the download file name of a sale.
	Render(ctx context.Context, saleID string) ([]byte, string, error)
}

type invoiceService struct {
	st *repository.State
}

func NewInvoiceService(st *repository.State) InvoiceService {
	return &invoiceService{st: st}
}

func (s *invoiceService) Render(_ context.Context, saleID string) ([]byte, string, error) {
	var sale model.Sale
	err := s.st.Run(func() (err error) {
		sale, err = s.st.Sales.FindByID(saleID)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := infra.RenderInvoice(&buf, sale); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), infra.InvoiceFileName(sale), nil
}
