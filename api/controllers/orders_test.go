package controllers

import (
	"net/http"
	"testing"

	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/pkg/enums"
)

func TestOrdersListNewestFirst(t *testing.T) {
	s := newShopper(t)
	logg := testLogger()
	serve(t, CheckoutBuyNow(logg), s, call{method: http.MethodPost, target: "/", body: `{"book_id":7}`})
	placed := serve(t, CheckoutSubmit(logg), s, call{method: http.MethodPost, target: "/", body: validSubmission})
	expectStatus(t, placed, http.StatusCreated)
	var order orders.Order
	decodeData(t, placed, &order)

	resp := serve(t, OrdersList(logg), s, call{method: http.MethodGet, target: "/"})
	expectStatus(t, resp, http.StatusOK)
	var body struct {
		Orders []orders.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	decodeData(t, resp, &body)
	if body.Count != 3 || len(body.Orders) != 3 {
		t.Fatalf("expected two samples plus one new order, got %d", body.Count)
	}
	if body.Orders[0].ID != order.ID || body.Orders[1].ID != "ORD-2024-001" {
		t.Fatalf("unexpected order %s first", body.Orders[0].ID)
	}
}

func TestOrdersGet(t *testing.T) {
	s := newShopper(t)
	logg := testLogger()

	resp := serve(t, OrdersGet(logg), s, call{method: http.MethodGet, target: "/", params: map[string]string{"orderId": "ORD-2024-002"}})
	expectStatus(t, resp, http.StatusOK)
	var order orders.Order
	decodeData(t, resp, &order)
	if order.Status != enums.OrderStatusShipping {
		t.Fatalf("expected shipping status got %s", order.Status)
	}

	resp = serve(t, OrdersGet(logg), s, call{method: http.MethodGet, target: "/", params: map[string]string{"orderId": "ORD-404"}})
	expectErrorCode(t, resp, http.StatusNotFound, "NOT_FOUND")
}

func TestOrdersListPages(t *testing.T) {
	s := newShopper(t)
	logg := testLogger()

	resp := serve(t, OrdersList(logg), s, call{method: http.MethodGet, target: "/?limit=1"})
	expectStatus(t, resp, http.StatusOK)
	var first orders.Page
	decodeData(t, resp, &first)
	if first.Count != 1 || first.Total != 2 || first.NextCursor == "" {
		t.Fatalf("unexpected first page %+v", first)
	}

	resp = serve(t, OrdersList(logg), s, call{method: http.MethodGet, target: "/?limit=1&cursor=" + first.NextCursor})
	expectStatus(t, resp, http.StatusOK)
	var second orders.Page
	decodeData(t, resp, &second)
	if second.Count != 1 || second.Orders[0].ID != "ORD-2024-002" || second.NextCursor != "" {
		t.Fatalf("unexpected second page %+v", second)
	}

	resp = serve(t, OrdersList(logg), s, call{method: http.MethodGet, target: "/?limit=0"})
	expectErrorCode(t, resp, http.StatusBadRequest, "VALIDATION_ERROR")
	resp = serve(t, OrdersList(logg), s, call{method: http.MethodGet, target: "/?cursor=garbage!"})
	expectErrorCode(t, resp, http.StatusBadRequest, "VALIDATION_ERROR")
}
