package http

import (
	"github.com/moisescpp/tierno-oficial/internal/adapters/wire"
	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/commands"
	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/queries"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/catalog"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
)

// orderRequest is the body of order create and edit calls. Product lines
// carry no prices; the server prices them from the catalog.
type orderRequest struct {
	ID           string               `json:"id,omitempty"`
	CustomerName string               `json:"customerName"`
	Address      string               `json:"address"`
	DeliveryTime string               `json:"deliveryTime"`
	TimeFormat   string               `json:"timeFormat"`
	DeliveryDate string               `json:"deliveryDate"`
	Products     []productLineRequest `json:"products"`
	Phone        string               `json:"phone,omitempty"`
	Notes        string               `json:"notes,omitempty"`
}

type productLineRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

type markDeliveredRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

type moveOrderRequest struct {
	Position int `json:"position"`
}

// resequenceRequest optionally carries the operator's full visit order for
// the date. An empty body keeps the current order and only closes gaps.
type resequenceRequest struct {
	OrderIDs []string `json:"orderIds"`
}

func (r resequenceRequest) ids() ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(r.OrderIDs))
	for _, raw := range r.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r orderRequest) lines() []commands.ProductLine {
	lines := make([]commands.ProductLine, 0, len(r.Products))
	for _, p := range r.Products {
		lines = append(lines, commands.ProductLine{
			Name:     p.Name,
			Quantity: p.Quantity,
			Unit:     p.Unit,
		})
	}
	return lines
}

func (r orderRequest) createParams(id kernel.UUID) (commands.CreateOrderParams, error) {
	format, err := order.TimeFormatFromString(r.TimeFormat)
	if err != nil {
		return commands.CreateOrderParams{}, err
	}
	date, err := kernel.DateFromString(r.DeliveryDate)
	if err != nil {
		return commands.CreateOrderParams{}, err
	}

	return commands.CreateOrderParams{
		OrderID:      id,
		CustomerName: r.CustomerName,
		Address:      r.Address,
		DeliveryTime: r.DeliveryTime,
		TimeFormat:   format,
		DeliveryDate: date,
		Lines:        r.lines(),
		Phone:        r.Phone,
		Notes:        r.Notes,
	}, nil
}

func (r orderRequest) editParams(id kernel.UUID) (commands.EditOrderParams, error) {
	params, err := r.createParams(id)
	if err != nil {
		return commands.EditOrderParams{}, err
	}
	return commands.EditOrderParams(params), nil
}

// totalsPayload renders money totals as decimal strings.
type totalsPayload struct {
	Total     string `json:"total"`
	Delivered string `json:"delivered"`
	Pending   string `json:"pending"`
}

func totalsJSON(totals services.Totals) totalsPayload {
	return totalsPayload{
		Total:     totals.Total.String(),
		Delivered: totals.Delivered.String(),
		Pending:   totals.Pending.String(),
	}
}

type daySchedulePayload struct {
	Date           string        `json:"date"`
	Orders         []wire.Order  `json:"orders"`
	Totals         totalsPayload `json:"totals"`
	DeliveredCount int           `json:"deliveredCount"`
}

func dayScheduleJSON(day queries.DayScheduleResponse) daySchedulePayload {
	return daySchedulePayload{
		Date:           day.Date.String(),
		Orders:         wire.FromDomainSlice(day.Orders),
		Totals:         totalsJSON(day.Totals),
		DeliveredCount: day.DeliveredCount,
	}
}

type weekSchedulePayload struct {
	WeekStart string               `json:"weekStart"`
	WeekEnd   string               `json:"weekEnd"`
	Label     string               `json:"label"`
	Days      []daySchedulePayload `json:"days"`
	Totals    totalsPayload        `json:"totals"`
}

func weekScheduleJSON(week queries.WeekScheduleResponse) weekSchedulePayload {
	days := make([]daySchedulePayload, 0, len(week.Days))
	for _, day := range week.Days {
		days = append(days, dayScheduleJSON(day))
	}
	return weekSchedulePayload{
		WeekStart: week.WeekStart.String(),
		WeekEnd:   week.WeekEnd.String(),
		Label:     week.WeekStart.WeekRange(),
		Days:      days,
		Totals:    totalsJSON(week.Totals),
	}
}

type weekSummaryPayload struct {
	WeekStart      string        `json:"weekStart"`
	WeekEnd        string        `json:"weekEnd"`
	Label          string        `json:"label"`
	OrderCount     int           `json:"orderCount"`
	DeliveredCount int           `json:"deliveredCount"`
	Totals         totalsPayload `json:"totals"`
}

type summaryPayload struct {
	OrderCount int                  `json:"orderCount"`
	Totals     totalsPayload        `json:"totals"`
	Dates      []string             `json:"dates"`
	Weeks      []weekSummaryPayload `json:"weeks"`
}

func summaryJSON(summary queries.ScheduleSummaryResponse) summaryPayload {
	dates := make([]string, 0, len(summary.Dates))
	for _, date := range summary.Dates {
		dates = append(dates, date.String())
	}
	weeks := make([]weekSummaryPayload, 0, len(summary.Weeks))
	for _, week := range summary.Weeks {
		weeks = append(weeks, weekSummaryPayload{
			WeekStart:      week.WeekStart.String(),
			WeekEnd:        week.WeekEnd.String(),
			Label:          week.WeekStart.WeekRange(),
			OrderCount:     week.OrderCount,
			DeliveredCount: week.DeliveredCount,
			Totals:         totalsJSON(week.Totals),
		})
	}
	return summaryPayload{
		OrderCount: summary.OrderCount,
		Totals:     totalsJSON(summary.Totals),
		Dates:      dates,
		Weeks:      weeks,
	}
}

// catalogItemPayload is one product of the catalog as offered to the order
// form: its name, the units it is sold in, and the price of each unit.
type catalogItemPayload struct {
	Name   string            `json:"name"`
	Units  []string          `json:"units"`
	Prices map[string]string `json:"prices"`
}

func catalogJSON(cat catalog.Catalog) ([]catalogItemPayload, error) {
	items := cat.Items()
	payload := make([]catalogItemPayload, 0, len(items))
	for _, item := range items {
		units, err := cat.Units(item.Name())
		if err != nil {
			return nil, err
		}
		prices := make(map[string]string, len(units))
		for _, unit := range units {
			price, err := cat.UnitPrice(item.Name(), unit)
			if err != nil {
				return nil, err
			}
			prices[unit] = price.String()
		}
		payload = append(payload, catalogItemPayload{
			Name:   item.Name(),
			Units:  units,
			Prices: prices,
		})
	}
	return payload, nil
}
