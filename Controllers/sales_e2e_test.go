package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"TravelPro/FiberConfig"
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	app      *fiber.App
	db       *gorm.DB
	companyA Models.Company
	companyB Models.Company
	adminA   Models.User
	sellerA1 Models.User
	sellerA2 Models.User
	sellerB  Models.User
	clientA  Models.Client
	clientB  Models.Client
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatal(err)
	}
	err = db.AutoMigrate(
		&Models.Company{}, &Models.User{}, &Models.Client{}, &Models.Supplier{},
		&Models.Operator{}, &Models.Classification{}, &Models.Passenger{},
		&Models.CompanySettings{}, &Models.CurrencyRate{}, &Models.Sale{},
		&Models.SaleItem{}, &Models.Payment{}, &Models.SupplierPayment{},
	)
	if err != nil {
		t.Fatal(err)
	}
	// The auth middleware reloads users through the package-level handle.
	Models.DB = db

	f := &fixture{db: db}
	f.companyA = Models.Company{Name: "Agency A"}
	f.companyB = Models.Company{Name: "Agency B"}
	db.Create(&f.companyA)
	db.Create(&f.companyB)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	f.adminA = Models.User{Username: "admin-a", PasswordHash: string(hash), Role: Models.RoleAdmin, CompanyID: f.companyA.ID}
	f.sellerA1 = Models.User{Username: "seller-a1", PasswordHash: string(hash), Role: Models.RoleSales, CompanyID: f.companyA.ID}
	f.sellerA2 = Models.User{Username: "seller-a2", PasswordHash: string(hash), Role: Models.RoleSales, CompanyID: f.companyA.ID}
	f.sellerB = Models.User{Username: "seller-b", PasswordHash: string(hash), Role: Models.RoleSales, CompanyID: f.companyB.ID}
	db.Create(&f.adminA)
	db.Create(&f.sellerA1)
	db.Create(&f.sellerA2)
	db.Create(&f.sellerB)

	f.clientA = Models.Client{Name: "Client A", CompanyID: f.companyA.ID}
	f.clientB = Models.Client{Name: "Client B", CompanyID: f.companyB.ID}
	db.Create(&f.clientA)
	db.Create(&f.clientB)

	f.app = fiber.New(fiber.Config{ErrorHandler: httperr.ErrorHandler})
	FiberConfig.SetupRoutes(f.app, db)
	return f
}

func token(t *testing.T, user Models.User) string {
	t.Helper()
	claims := middleware.Claims{
		Username:  user.Username,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.SecretKey())
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func (f *fixture) request(t *testing.T, user Models.User, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(t, user))

	resp, err := f.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func saleBody(clientID uint, items []map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"passenger_name": "Doe Family",
		"client_id":      clientID,
		"travel_date":    "2026-12-01",
		"sale_type":      "group",
		"service_type":   "package",
		"region":         "international",
		"items":          items,
	}
}

func TestCreateSaleComputesTotalsAndReplaceItems(t *testing.T) {
	f := setup(t)

	items := []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 100.0, "sale_price": 200.0, "description": "Flight"},
		{"date_in": "2026-12-02", "cost_price": 150.0, "sale_price": 250.0, "description": "Hotel"},
	}
	resp := f.request(t, f.sellerA1, "POST", "/api/sales", saleBody(f.clientA.ID, items))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}

	var created Models.Sale
	decode(t, resp, &created)
	if created.TotalCost != 250 || created.SalePrice != 450 {
		t.Fatalf("totals = (%v, %v), want (250, 450)", created.TotalCost, created.SalePrice)
	}
	if len(created.Items) != 2 {
		t.Fatalf("item count = %d, want 2", len(created.Items))
	}
	if created.Status != Models.SaleStatusDraft {
		t.Fatalf("status = %q, want draft", created.Status)
	}

	replacement := map[string]interface{}{
		"items": []map[string]interface{}{
			{"date_in": "2026-12-03", "cost_price": 50.0, "sale_price": 80.0, "description": "Transfer"},
		},
	}
	resp = f.request(t, f.sellerA1, "PUT", fmt.Sprintf("/api/sales/%d", created.ID), replacement)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}

	var updated Models.Sale
	decode(t, resp, &updated)
	if updated.TotalCost != 50 || updated.SalePrice != 80 {
		t.Fatalf("totals after replacement = (%v, %v), want (50, 80)", updated.TotalCost, updated.SalePrice)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("item count after replacement = %d, want 1", len(updated.Items))
	}
	// Header fields absent from the update stay untouched.
	if updated.PassengerName != "Doe Family" {
		t.Fatalf("passenger_name overwritten: %q", updated.PassengerName)
	}

	var liveItems int64
	f.db.Model(&Models.SaleItem{}).Where("sale_id = ?", created.ID).Count(&liveItems)
	if liveItems != 1 {
		t.Fatalf("queryable items = %d, want 1", liveItems)
	}
}

func TestSaleTenantIsolationAndOwnership(t *testing.T) {
	f := setup(t)

	items := []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 100.0, "sale_price": 200.0},
	}
	resp := f.request(t, f.sellerA1, "POST", "/api/sales", saleBody(f.clientA.ID, items))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var sale Models.Sale
	decode(t, resp, &sale)
	path := fmt.Sprintf("/api/sales/%d", sale.ID)

	// Cross-tenant access reads as not found, never forbidden.
	resp = f.request(t, f.sellerB, "GET", path, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("cross-tenant status = %d, want 404", resp.StatusCode)
	}

	// Same-tenant non-owner without admin is forbidden.
	resp = f.request(t, f.sellerA2, "GET", path, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-owner status = %d, want 403", resp.StatusCode)
	}

	resp = f.request(t, f.adminA, "GET", path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin status = %d, want 200", resp.StatusCode)
	}
}

func TestCreateSaleRejectsCrossTenantClientAndEmptyItems(t *testing.T) {
	f := setup(t)

	items := []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 10.0, "sale_price": 20.0},
	}
	resp := f.request(t, f.sellerA1, "POST", "/api/sales", saleBody(f.clientB.ID, items))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("cross-tenant client status = %d, want 404", resp.StatusCode)
	}

	resp = f.request(t, f.sellerA1, "POST", "/api/sales", saleBody(f.clientA.ID, nil))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty items status = %d, want 400", resp.StatusCode)
	}

	// Nothing partial may remain.
	var count int64
	f.db.Model(&Models.Sale{}).Count(&count)
	if count != 0 {
		t.Fatalf("sale count = %d, want 0", count)
	}
}

func TestPassengerReusedAcrossSales(t *testing.T) {
	f := setup(t)

	withPassenger := func() []map[string]interface{} {
		return []map[string]interface{}{
			{
				"date_in":    "2026-12-01",
				"cost_price": 10.0,
				"sale_price": 20.0,
				"passengers": []map[string]interface{}{
					{"passenger_id": "AB123456", "name": "Jane Doe"},
				},
			},
		}
	}

	for i := 0; i < 2; i++ {
		resp := f.request(t, f.sellerA1, "POST", "/api/sales", saleBody(f.clientA.ID, withPassenger()))
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create %d status = %d, want 201", i, resp.StatusCode)
		}
		resp.Body.Close()
	}

	var count int64
	f.db.Model(&Models.Passenger{}).
		Where("company_id = ? AND passenger_id = ?", f.companyA.ID, "AB123456").
		Count(&count)
	if count != 1 {
		t.Fatalf("passenger rows = %d, want 1", count)
	}
}

func TestStatusTransitionGuard(t *testing.T) {
	f := setup(t)

	items := []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 10.0, "sale_price": 20.0},
	}
	resp := f.request(t, f.sellerA1, "POST", "/api/sales", saleBody(f.clientA.ID, items))
	var sale Models.Sale
	decode(t, resp, &sale)
	path := fmt.Sprintf("/api/sales/%d/status", sale.ID)

	resp = f.request(t, f.sellerA1, "PATCH", path, map[string]string{"status": "confirmed"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("confirm status = %d, want 200", resp.StatusCode)
	}

	// Reopening a confirmed sale is not a legal move.
	resp = f.request(t, f.sellerA1, "PATCH", path, map[string]string{"status": "draft"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("illegal transition status = %d, want 409", resp.StatusCode)
	}

	resp = f.request(t, f.sellerA1, "PATCH", path, map[string]string{"status": "completed"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("complete status = %d, want 200", resp.StatusCode)
	}

	resp = f.request(t, f.sellerA1, "PATCH", path, map[string]string{"status": "cancelled"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("completed is terminal, status = %d, want 409", resp.StatusCode)
	}
}

func TestSalePaymentsReconciliation(t *testing.T) {
	f := setup(t)

	items := []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 500.0, "sale_price": 1000.0},
	}
	resp := f.request(t, f.sellerA1, "POST", "/api/sales", saleBody(f.clientA.ID, items))
	var sale Models.Sale
	decode(t, resp, &sale)

	resp = f.request(t, f.adminA, "POST", "/api/payments", map[string]interface{}{
		"sale_id": sale.ID, "date": "2026-12-01", "amount": 400.0,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("payment create status = %d, want 201", resp.StatusCode)
	}
	var confirmed Models.Payment
	decode(t, resp, &confirmed)
	if confirmed.Status != Models.PaymentStatusConfirmed {
		t.Fatalf("default payment status = %q, want confirmed", confirmed.Status)
	}

	resp = f.request(t, f.adminA, "POST", "/api/payments", map[string]interface{}{
		"sale_id": sale.ID, "date": "2026-12-02", "amount": 300.0, "status": "pending",
	})
	resp.Body.Close()

	resp = f.request(t, f.adminA, "GET", fmt.Sprintf("/api/sales/%d/payments", sale.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("payments view status = %d, want 200", resp.StatusCode)
	}

	var view struct {
		TotalSale      float64 `json:"total_sale"`
		TotalPaid      float64 `json:"total_paid"`
		PendingBalance float64 `json:"pending_balance"`
	}
	decode(t, resp, &view)
	if view.TotalPaid != 400 {
		t.Fatalf("total_paid = %v, want 400", view.TotalPaid)
	}
	if view.PendingBalance != 600 {
		t.Fatalf("pending_balance = %v, want 600", view.PendingBalance)
	}
}

func TestSupplierBalanceAggregation(t *testing.T) {
	f := setup(t)

	supplier := Models.Supplier{Name: "AirCo", CompanyID: f.companyA.ID}
	f.db.Create(&supplier)

	items := []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 300.0, "sale_price": 500.0, "supplier_id": supplier.ID},
		{"date_in": "2026-12-02", "cost_price": 100.0, "sale_price": 150.0},
	}
	resp := f.request(t, f.sellerA1, "POST", "/api/sales", saleBody(f.clientA.ID, items))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	resp = f.request(t, f.adminA, "POST", "/api/supplier-payments", map[string]interface{}{
		"supplier_id": supplier.ID, "amount": 120.0, "payment_date": "2026-12-05",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("supplier payment status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	resp = f.request(t, f.adminA, "GET", fmt.Sprintf("/api/suppliers/%d/balance", supplier.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("balance status = %d, want 200", resp.StatusCode)
	}
	var balance struct {
		TotalCost float64 `json:"total_cost"`
		TotalPaid float64 `json:"total_paid"`
		Balance   float64 `json:"balance"`
	}
	decode(t, resp, &balance)
	// Only the supplier's own items count toward its cost.
	if balance.TotalCost != 300 {
		t.Fatalf("total_cost = %v, want 300", balance.TotalCost)
	}
	if balance.Balance != 180 {
		t.Fatalf("balance = %v, want 180", balance.Balance)
	}
}

func TestCreateSaleRejectsUnknownEnumValues(t *testing.T) {
	f := setup(t)

	items := []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 10.0, "sale_price": 20.0},
	}
	cases := []struct {
		name  string
		field string
		value string
	}{
		{"sale type", "sale_type", "banana"},
		{"region", "region", "lunar"},
		{"service type", "service_type", "teleport"},
	}
	for _, tc := range cases {
		body := saleBody(f.clientA.ID, items)
		body[tc.field] = tc.value
		resp := f.request(t, f.sellerA1, "POST", "/api/sales", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s %q: status = %d, want 400", tc.name, tc.value, resp.StatusCode)
		}
		resp.Body.Close()
	}

	var count int64
	f.db.Model(&Models.Sale{}).Count(&count)
	if count != 0 {
		t.Fatalf("sale count = %d, want 0", count)
	}
}

// travelDate returns the YYYY-MM-DD string for today+days in UTC, the zone
// travel dates are stored in.
func travelDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestUpcomingDeparturesWindowAndStatus(t *testing.T) {
	f := setup(t)

	items := func() []map[string]interface{} {
		return []map[string]interface{}{
			{"date_in": travelDate(1), "cost_price": 10.0, "sale_price": 20.0},
		}
	}

	inWindow := saleBody(f.clientA.ID, items())
	inWindow["travel_date"] = travelDate(5)
	inWindow["confirmed"] = true
	resp := f.request(t, f.sellerA1, "POST", "/api/sales", inWindow)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var wanted Models.Sale
	decode(t, resp, &wanted)

	draft := saleBody(f.clientA.ID, items())
	draft["travel_date"] = travelDate(5)
	resp = f.request(t, f.sellerA1, "POST", "/api/sales", draft)
	resp.Body.Close()

	tooFar := saleBody(f.clientA.ID, items())
	tooFar["travel_date"] = travelDate(31)
	tooFar["confirmed"] = true
	resp = f.request(t, f.sellerA1, "POST", "/api/sales", tooFar)
	resp.Body.Close()

	resp = f.request(t, f.sellerA1, "GET", "/api/sales/upcoming-departures", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("departures status = %d, want 200", resp.StatusCode)
	}
	var departures []Models.Sale
	decode(t, resp, &departures)
	if len(departures) != 1 {
		t.Fatalf("departures = %d, want 1 (draft and beyond-window sales excluded)", len(departures))
	}
	if departures[0].ID != wanted.ID {
		t.Fatalf("departure ID = %d, want %d", departures[0].ID, wanted.ID)
	}
}

func TestUpcomingDeparturesCappedAndOrdered(t *testing.T) {
	f := setup(t)

	for day := 1; day <= 11; day++ {
		body := saleBody(f.clientA.ID, []map[string]interface{}{
			{"date_in": travelDate(day), "cost_price": 10.0, "sale_price": 20.0},
		})
		body["travel_date"] = travelDate(day)
		body["confirmed"] = true
		resp := f.request(t, f.sellerA1, "POST", "/api/sales", body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create day+%d status = %d, want 201", day, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp := f.request(t, f.sellerA1, "GET", "/api/sales/upcoming-departures", nil)
	var departures []Models.Sale
	decode(t, resp, &departures)
	if len(departures) != 10 {
		t.Fatalf("departures = %d, want 10", len(departures))
	}
	for i := range departures {
		got := departures[i].TravelDate.Format("2006-01-02")
		if got != travelDate(i+1) {
			t.Fatalf("departure %d travel_date = %s, want %s", i, got, travelDate(i+1))
		}
	}
}

func TestSalesTotalRevenueBasis(t *testing.T) {
	f := setup(t)

	prices := []float64{450, 80}
	for _, price := range prices {
		body := saleBody(f.clientA.ID, []map[string]interface{}{
			{"date_in": "2026-12-01", "cost_price": 10.0, "sale_price": price},
		})
		resp := f.request(t, f.sellerA1, "POST", "/api/sales", body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create status = %d, want 201", resp.StatusCode)
		}
		resp.Body.Close()
	}

	var view struct {
		TotalSales float64 `json:"total_sales"`
		Basis      string  `json:"basis"`
	}
	resp := f.request(t, f.adminA, "GET", "/api/sales/total", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("total status = %d, want 200", resp.StatusCode)
	}
	decode(t, resp, &view)
	if view.TotalSales != 530 {
		t.Fatalf("total_sales = %v, want 530 (sale price, not cost)", view.TotalSales)
	}
	if view.Basis != "salePrice" {
		t.Fatalf("basis = %q, want salePrice", view.Basis)
	}

	// Non-admins only see their own sales.
	resp = f.request(t, f.sellerA2, "GET", "/api/sales/total", nil)
	decode(t, resp, &view)
	if view.TotalSales != 0 {
		t.Fatalf("other seller total_sales = %v, want 0", view.TotalSales)
	}
}

func TestSalesStatsByTypeGroupings(t *testing.T) {
	f := setup(t)

	group := saleBody(f.clientA.ID, []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 100.0, "sale_price": 200.0},
	})
	resp := f.request(t, f.sellerA1, "POST", "/api/sales", group)
	resp.Body.Close()

	corporate := saleBody(f.clientA.ID, []map[string]interface{}{
		{"date_in": "2026-12-01", "cost_price": 40.0, "sale_price": 70.0},
	})
	corporate["sale_type"] = "corporate"
	corporate["service_type"] = "flight"
	corporate["region"] = "national"
	resp = f.request(t, f.sellerA1, "POST", "/api/sales", corporate)
	resp.Body.Close()

	type row struct {
		Value string  `json:"value"`
		Count int64   `json:"count"`
		Total float64 `json:"total"`
	}
	var stats map[string][]row
	resp = f.request(t, f.adminA, "GET", "/api/sales/stats-by-type", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats-by-type status = %d, want 200", resp.StatusCode)
	}
	decode(t, resp, &stats)

	expect := map[string]map[string]float64{
		"by_sale_type":    {"group": 100, "corporate": 40},
		"by_service_type": {"package": 100, "flight": 40},
		"by_region":       {"international": 100, "national": 40},
	}
	for grouping, values := range expect {
		rows := stats[grouping]
		if len(rows) != len(values) {
			t.Errorf("%s rows = %d, want %d", grouping, len(rows), len(values))
			continue
		}
		for _, r := range rows {
			total, ok := values[r.Value]
			if !ok {
				t.Errorf("%s has unexpected value %q", grouping, r.Value)
				continue
			}
			if r.Count != 1 || r.Total != total {
				t.Errorf("%s %q = (count %d, total %v), want (1, %v)", grouping, r.Value, r.Count, r.Total, total)
			}
		}
	}
}

func TestRegisterUserRejectsUsernameTakenByOtherCompany(t *testing.T) {
	f := setup(t)

	resp := f.request(t, f.adminA, "POST", "/api/users", map[string]string{
		"username": f.sellerB.Username,
		"password": "secret123",
		"role":     Models.RoleSales,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate username status = %d, want 409", resp.StatusCode)
	}

	var count int64
	f.db.Model(&Models.User{}).Where("username = ?", f.sellerB.Username).Count(&count)
	if count != 1 {
		t.Fatalf("user rows = %d, want 1", count)
	}
}

func TestGetClassificationScopedToTenant(t *testing.T) {
	f := setup(t)

	classification := Models.Classification{Name: "Premium", CompanyID: f.companyA.ID}
	f.db.Create(&classification)
	path := fmt.Sprintf("/api/classifications/%d", classification.ID)

	resp := f.request(t, f.sellerA1, "GET", path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
	var got Models.Classification
	decode(t, resp, &got)
	if got.Name != "Premium" {
		t.Fatalf("name = %q, want Premium", got.Name)
	}

	resp = f.request(t, f.sellerB, "GET", path, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("cross-tenant status = %d, want 404", resp.StatusCode)
	}
}

func TestSalesStatsZeroFilledStatuses(t *testing.T) {
	f := setup(t)

	resp := f.request(t, f.adminA, "GET", "/api/sales/stats", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d, want 200", resp.StatusCode)
	}

	var stats []struct {
		Status string  `json:"status"`
		Count  int64   `json:"count"`
		Total  float64 `json:"total"`
	}
	decode(t, resp, &stats)
	if len(stats) != 4 {
		t.Fatalf("status rows = %d, want 4", len(stats))
	}
	seen := make(map[string]bool)
	for _, row := range stats {
		seen[row.Status] = true
		if row.Count != 0 {
			t.Errorf("status %s count = %d, want 0", row.Status, row.Count)
		}
	}
	for _, status := range []string{"draft", "confirmed", "completed", "cancelled"} {
		if !seen[status] {
			t.Errorf("status %s missing from breakdown", status)
		}
	}
}
