package service

import (
	"context"
	"fmt"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	recentSalesLimit = 5
	firstReportHour  = 9
	lastReportHour   = 20
)

type ReportService interface {
	Dashboard(ctx context.Context) dto.DashboardResponse
	// SalesByHour buckets sale totals by local hour, 9:00 through 20:00.
	// Sales outside that window are not counted.
	SalesByHour(ctx context.Context) []dto.HourlySales
	PaymentTotals(ctx context.Context) []dto.PaymentTotal
}

type reportService struct {
	st *repository.State
}

func NewReportService(st *repository.State) ReportService {
	return &reportService{st: st}
}

func (s *reportService) Dashboard(_ context.Context) dto.DashboardResponse {
	var resp dto.DashboardResponse
	_ = s.st.Run(func() error {
		sales := s.st.Sales.List()
		total := decimal.Zero
		for _, sale := range sales {
			total = total.Add(sale.Total)
		}
		low := 0
		for _, p := range s.st.Products.List() {
			if p.StockLevel() != model.StockAvailable {
				low++
			}
		}
		recent := sales
		if len(recent) > recentSalesLimit {
			recent = recent[:recentSalesLimit]
		}
		resp = dto.DashboardResponse{
			SalesTotal:    total,
			SalesCount:    len(sales),
			LowStockCount: low,
			KitchenOrders: kitchenOrders(s.st),
			RecentSales:   recent,
		}
		if sess, ok := s.st.Sessions.Active(); ok {
			resp.Session = &sess
		}
		return nil
	})
	return resp
}

func (s *reportService) SalesByHour(_ context.Context) []dto.HourlySales {
	buckets := make([]dto.HourlySales, 0, lastReportHour-firstReportHour+1)
	for h := firstReportHour; h <= lastReportHour; h++ {
		buckets = append(buckets, dto.HourlySales{Hour: fmt.Sprintf("%d:00", h), Total: decimal.Zero})
	}
	_ = s.st.Run(func() error {
		for _, sale := range s.st.Sales.List() {
			h := sale.CreatedAt.Local().Hour()
			if h < firstReportHour || h > lastReportHour {
				continue
			}
			b := &buckets[h-firstReportHour]
			b.Total = b.Total.Add(sale.Total)
		}
		return nil
	})
	return buckets
}

func (s *reportService) PaymentTotals(_ context.Context) []dto.PaymentTotal {
	out := make([]dto.PaymentTotal, len(model.PaymentMethods))
	index := make(map[model.PaymentMethod]int, len(model.PaymentMethods))
	for i, m := range model.PaymentMethods {
		out[i] = dto.PaymentTotal{Method: m, Total: decimal.Zero}
		index[m] = i
	}
	_ = s.st.Run(func() error {
		for _, sale := range s.st.Sales.List() {
			if i, ok := index[sale.PaymentMethod]; ok {
				out[i].Total = out[i].Total.Add(sale.Total)
			}
		}
		return nil
	})
	return out
}
