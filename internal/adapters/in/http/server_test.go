package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "github.com/moisescpp/tierno-oficial/internal/adapters/in/http"
	"github.com/moisescpp/tierno-oficial/internal/adapters/out/memstore"
	"github.com/moisescpp/tierno-oficial/internal/adapters/wire"
	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/commands"
	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/queries"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/catalog"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopRefresh struct {
	suspended bool
}

func (r *noopRefresh) Suspend() { r.suspended = true }
func (r *noopRefresh) Resume()  { r.suspended = false }

func newTestServer() (*echo.Echo, *noopRefresh) {
	store := memstore.NewInMemoryOrderStore()
	cat := catalog.DefaultCatalog()
	refresh := &noopRefresh{}

	server := apphttp.NewServer(apphttp.ServerParams{
		Store:                  store,
		Catalog:                cat,
		CreateOrderHandler:     commands.NewCreateOrderCommandHandler(store, cat),
		EditOrderHandler:       commands.NewEditOrderCommandHandler(store, cat),
		MarkDeliveredHandler:   commands.NewMarkDeliveredCommandHandler(store),
		DeleteOrderHandler:     commands.NewDeleteOrderCommandHandler(store),
		MoveOrderHandler:       commands.NewMoveOrderCommandHandler(store),
		ResequenceRouteHandler: commands.NewResequenceRouteCommandHandler(store),
		DayScheduleHandler:     queries.NewGetDayScheduleQueryHandler(store),
		WeekScheduleHandler:    queries.NewGetWeekScheduleQueryHandler(store),
		ScheduleSummaryHandler: queries.NewGetScheduleSummaryQueryHandler(store),
		Refresh:                refresh,
	})

	e := echo.New()
	server.RegisterRoutes(e)
	return e, refresh
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createOrderBody(date string) string {
	return fmt.Sprintf(`{
		"customerName": "Doña Marta",
		"address": "Calle 45 #12-30",
		"deliveryTime": "8:00",
		"timeFormat": "AM",
		"deliveryDate": %q,
		"products": [{"name": "Arepas de maíz", "quantity": 10, "unit": "unidades"}],
		"phone": "3001234567"
	}`, date)
}

func decodeOrders(t *testing.T, rec *httptest.ResponseRecorder) []wire.Order {
	t.Helper()
	var orders []wire.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	return orders
}

func TestCreateOrder(t *testing.T) {
	t.Run("creates and returns the full set", func(t *testing.T) {
		e, _ := newTestServer()

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06"))

		require.Equal(t, http.StatusCreated, rec.Code)
		orders := decodeOrders(t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, 1, orders[0].RouteOrder)
		assert.Equal(t, "15000", orders[0].TotalAmount)
		assert.NotEmpty(t, orders[0].ID)
		assert.NotEmpty(t, orders[0].CreatedAt)
	})

	t.Run("appends to the day's route", func(t *testing.T) {
		e, _ := newTestServer()
		doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06"))

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06"))

		orders := decodeOrders(t, rec)
		require.Len(t, orders, 2)
		assert.Equal(t, 2, orders[1].RouteOrder)
	})

	t.Run("rejects an unknown catalog item", func(t *testing.T) {
		e, _ := newTestServer()
		body := strings.Replace(createOrderBody("2025-01-06"), "Arepas de maíz", "Tamales", 1)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", body)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		e, _ := newTestServer()
		body := strings.Replace(createOrderBody("2025-01-06"), "Doña Marta", "", 1)

		rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEditOrder(t *testing.T) {
	t.Run("rewrites details and reprices", func(t *testing.T) {
		e, _ := newTestServer()
		created := decodeOrders(t, doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06")))

		body := strings.Replace(createOrderBody("2025-01-06"),
			`{"name": "Arepas de maíz", "quantity": 10, "unit": "unidades"}`,
			`{"name": "Queso tipo paisa", "quantity": 1, "unit": "kilo"}`, 1)
		rec := doJSON(t, e, http.MethodPut, "/api/v1/orders/"+created[0].ID, body)

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decodeOrders(t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, "18000", orders[0].TotalAmount)
		assert.Equal(t, 1, orders[0].RouteOrder)
	})

	t.Run("moves the order at a date change", func(t *testing.T) {
		e, _ := newTestServer()
		created := decodeOrders(t, doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06")))
		doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-07"))

		rec := doJSON(t, e, http.MethodPut, "/api/v1/orders/"+created[0].ID, createOrderBody("2025-01-07"))

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decodeOrders(t, rec)
		require.Len(t, orders, 2)
		moved := orders[1]
		assert.Equal(t, created[0].ID, moved.ID)
		assert.Equal(t, "2025-01-07", moved.DeliveryDate)
		assert.Equal(t, 2, moved.RouteOrder)
	})

	t.Run("an unknown order is 404", func(t *testing.T) {
		e, _ := newTestServer()

		rec := doJSON(t, e, http.MethodPut,
			"/api/v1/orders/1b4e28ba-2fa1-11d2-883f-0016d3cca427", createOrderBody("2025-01-06"))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMarkDelivered(t *testing.T) {
	e, _ := newTestServer()
	created := decodeOrders(t, doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06")))

	rec := doJSON(t, e, http.MethodPost,
		"/api/v1/orders/"+created[0].ID+"/delivered", `{"paymentMethod": "transfer"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeOrders(t, rec)
	assert.True(t, orders[0].IsDelivered)
	assert.Equal(t, "transfer", orders[0].PaymentMethod)

	t.Run("delivery without a payment method is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost,
			"/api/v1/orders/"+created[0].ID+"/delivered", `{"paymentMethod": ""}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteOrder(t *testing.T) {
	e, _ := newTestServer()
	created := decodeOrders(t, doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06")))

	rec := doJSON(t, e, http.MethodDelete, "/api/v1/orders/"+created[0].ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeOrders(t, rec))

	t.Run("deleting again is still OK", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodDelete, "/api/v1/orders/"+created[0].ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("a malformed id is 400", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodDelete, "/api/v1/orders/not-a-uuid", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouteEndpoints(t *testing.T) {
	e, _ := newTestServer()
	first := decodeOrders(t, doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06")))[0]
	second := decodeOrders(t, doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06")))[1]

	t.Run("move swaps the pair", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost,
			"/api/v1/orders/"+second.ID+"/position", `{"position": 1}`)

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decodeOrders(t, rec)
		require.Len(t, orders, 2)
		assert.Equal(t, second.ID, orders[0].ID)
		assert.Equal(t, 1, orders[0].RouteOrder)
		assert.Equal(t, first.ID, orders[1].ID)
		assert.Equal(t, 2, orders[1].RouteOrder)
	})

	t.Run("resequence follows the submitted visit order", func(t *testing.T) {
		body := fmt.Sprintf(`{"orderIds": [%q, %q]}`, first.ID, second.ID)
		rec := doJSON(t, e, http.MethodPost, "/api/v1/routes/2025-01-06/resequence", body)

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decodeOrders(t, rec)
		require.Len(t, orders, 2)
		assert.Equal(t, first.ID, orders[0].ID)
		assert.Equal(t, 1, orders[0].RouteOrder)
		assert.Equal(t, second.ID, orders[1].ID)
		assert.Equal(t, 2, orders[1].RouteOrder)

		rec = doJSON(t, e, http.MethodPost, "/api/v1/routes/2025-01-06/resequence",
			fmt.Sprintf(`{"orderIds": [%q, %q]}`, second.ID, first.ID))
		require.Equal(t, http.StatusOK, rec.Code)
		orders = decodeOrders(t, rec)
		assert.Equal(t, second.ID, orders[0].ID)
		assert.Equal(t, 1, orders[0].RouteOrder)
	})

	t.Run("an incomplete visit order is 400", func(t *testing.T) {
		body := fmt.Sprintf(`{"orderIds": [%q]}`, first.ID)
		rec := doJSON(t, e, http.MethodPost, "/api/v1/routes/2025-01-06/resequence", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("resequence closes the gap a delete leaves", func(t *testing.T) {
		doJSON(t, e, http.MethodDelete, "/api/v1/orders/"+second.ID, "")

		rec := doJSON(t, e, http.MethodPost, "/api/v1/routes/2025-01-06/resequence", "")

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decodeOrders(t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, 1, orders[0].RouteOrder)
	})

	t.Run("a malformed date is 400", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/api/v1/routes/06-01-2025/resequence", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestScheduleEndpoints(t *testing.T) {
	e, _ := newTestServer()
	doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-06"))
	createdRec := doJSON(t, e, http.MethodPost, "/api/v1/orders", createOrderBody("2025-01-08"))
	created := decodeOrders(t, createdRec)
	doJSON(t, e, http.MethodPost, "/api/v1/orders/"+created[1].ID+"/delivered", `{"paymentMethod": "cash"}`)

	t.Run("day schedule", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/schedule/days/2025-01-06", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var day struct {
			Date           string       `json:"date"`
			Orders         []wire.Order `json:"orders"`
			Totals         struct{ Total, Delivered, Pending string }
			DeliveredCount int `json:"deliveredCount"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &day))
		assert.Equal(t, "2025-01-06", day.Date)
		assert.Len(t, day.Orders, 1)
		assert.Equal(t, "15000", day.Totals.Total)
		assert.Equal(t, "15000", day.Totals.Pending)
	})

	t.Run("week schedule groups both days", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/schedule/weeks/2025-01-08", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var week struct {
			WeekStart string `json:"weekStart"`
			WeekEnd   string `json:"weekEnd"`
			Label     string `json:"label"`
			Days      []struct {
				Date string `json:"date"`
			} `json:"days"`
			Totals struct{ Total, Delivered, Pending string }
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &week))
		assert.Equal(t, "2025-01-06", week.WeekStart)
		assert.Equal(t, "2025-01-12", week.WeekEnd)
		assert.Equal(t, "2025-01-06 - 2025-01-12", week.Label)
		require.Len(t, week.Days, 2)
		assert.Equal(t, "30000", week.Totals.Total)
		assert.Equal(t, "15000", week.Totals.Delivered)
		assert.Equal(t, "15000", week.Totals.Pending)
	})

	t.Run("summary reports the week", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/schedule/summary", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var summary struct {
			OrderCount int `json:"orderCount"`
			Weeks      []struct {
				WeekStart      string `json:"weekStart"`
				OrderCount     int    `json:"orderCount"`
				DeliveredCount int    `json:"deliveredCount"`
			} `json:"weeks"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, 2, summary.OrderCount)
		require.Len(t, summary.Weeks, 1)
		assert.Equal(t, 1, summary.Weeks[0].DeliveredCount)
	})
}

func TestGetCatalog(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(t, e, http.MethodGet, "/api/v1/catalog", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []struct {
		Name   string            `json:"name"`
		Units  []string          `json:"units"`
		Prices map[string]string `json:"prices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotEmpty(t, items)

	byName := make(map[string]map[string]string)
	for _, item := range items {
		require.NotEmpty(t, item.Units)
		byName[item.Name] = item.Prices
	}
	assert.Equal(t, "1500", byName["Arepas de maíz"]["unidades"])
	assert.Equal(t, "18000", byName["Queso tipo paisa"]["kilo"])
}

func TestRefreshEndpoints(t *testing.T) {
	e, refresh := newTestServer()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/refresh/suspend", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, refresh.suspended)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/refresh/resume", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, refresh.suspended)
}
