package services

import (
	"backend/repository"

	"github.com/shopspring/decimal"
)

type SalesService struct {
	Repo *repository.OrderRepository
}

func NewSalesService(repo *repository.OrderRepository) *SalesService {
	return &SalesService{Repo: repo}
}

type TypeStats struct {
	Count      int64           `json:"count"`
	Sales      decimal.Decimal `json:"sales"`
	Ratio      decimal.Decimal `json:"ratio"`      // share of order count, percent
	SalesRatio decimal.Decimal `json:"salesRatio"` // share of revenue, percent
}

type SalesStats struct {
	Date        string                    `json:"date"`
	TotalOrders int64                     `json:"totalOrders"`
	TotalSales  decimal.Decimal           `json:"totalSales"`
	Takeout     TypeStats                 `json:"takeout"`
	DineIn      TypeStats                 `json:"dinein"`
	DishStats   []repository.DishSalesRow `json:"dishStats"`
}

// StatsByDate aggregates a day's sales. Returns nil when the day had no
// orders.
func (s *SalesService) StatsByDate(date string) (*SalesStats, error) {
	row, err := s.Repo.SalesByDate(date)
	if err != nil {
		return nil, err
	}
	if row.TotalOrders == 0 {
		return nil, nil
	}

	dishRows, err := s.Repo.DishSalesByDate(date)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	countBase := decimal.NewFromInt(row.TotalOrders)
	ratio := func(n int64) decimal.Decimal {
		return decimal.NewFromInt(n).Mul(hundred).Div(countBase).Round(1)
	}
	salesRatio := func(n decimal.Decimal) decimal.Decimal {
		if row.TotalSales.IsZero() {
			return decimal.Zero
		}
		return n.Mul(hundred).Div(row.TotalSales).Round(1)
	}

	return &SalesStats{
		Date:        date,
		TotalOrders: row.TotalOrders,
		TotalSales:  row.TotalSales.Round(2),
		Takeout: TypeStats{
			Count: row.TakeoutCount, Sales: row.TakeoutSales.Round(2),
			Ratio: ratio(row.TakeoutCount), SalesRatio: salesRatio(row.TakeoutSales),
		},
		DineIn: TypeStats{
			Count: row.DineinCount, Sales: row.DineinSales.Round(2),
			Ratio: ratio(row.DineinCount), SalesRatio: salesRatio(row.DineinSales),
		},
		DishStats: dishRows,
	}, nil
}
