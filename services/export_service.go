package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
)

// ExportService writes one CSV file per day of orders. It also runs once at
// process shutdown for today's orders.
type ExportService struct {
	Repo  *repository.OrderRepository
	Dir   string
	Clock *Clock
}

func NewExportService(repo *repository.OrderRepository, dir string, clock *Clock) *ExportService {
	return &ExportService{Repo: repo, Dir: dir, Clock: clock}
}

var exportHeader = []string{
	"Order No", "Type", "Placed At", "Total",
	"Table", "Room Fee", "Room Fee Amount", "Takeout Time", "Takeout Address",
	"Phone", "Status", "Items",
}

func orderTypeLabel(t entity.OrderType) string {
	if t == entity.OrderDineIn {
		return "Dine-in"
	}
	return "Takeout"
}

// ExportByDate writes <dir>/<date>_orders.csv and returns its path.
func (s *ExportService) ExportByDate(date string) (string, error) {
	orders, err := s.Repo.ListByDate(date)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("%s_orders.csv", date))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return "", err
	}

	for i := range orders {
		o := &orders[i]
		lines, err := s.Repo.GetItemLines(o.ID)
		if err != nil {
			return "", err
		}
		descs := make([]string, 0, len(lines))
		for _, l := range lines {
			sub := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
			descs = append(descs, fmt.Sprintf("%s x %d = %s", l.Name, l.Quantity, sub.StringFixed(2)))
		}

		roomFee := "no"
		roomFeeAmount := "0.00"
		if o.HasRoomFee {
			roomFee = "yes"
			roomFeeAmount = PrivateRoomFee.StringFixed(2)
		}

		record := []string{
			o.OrderNo,
			orderTypeLabel(o.OrderType),
			o.PlacedAt.Format("2006-01-02 15:04:05"),
			o.TotalAmount.StringFixed(2),
			o.TableNum,
			roomFee,
			roomFeeAmount,
			o.TakeoutTime,
			o.TakeoutAddress,
			o.Phone,
			string(o.Status),
			strings.Join(descs, "; "),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	return path, w.Error()
}

// ExportToday is the shutdown hook target.
func (s *ExportService) ExportToday() (string, error) {
	return s.ExportByDate(s.Clock.Now().Format("2006-01-02"))
}
