package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/engine"
	"github.com/panelworks/tankquote/pkg/infrastructure/repositories/memory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	catalog := memory.NewCatalogRepository(8)
	catalog.LoadParts([]entities.PartInfo{
		{PartNo: "RF00M", Name: "Roof Panel", UnitPrice: decimal.NewFromFloat(25.50), UnitWeight: decimal.NewFromFloat(6.5)},
		{PartNo: "SL20S", Name: "Side Panel 2.0m", UnitPrice: decimal.NewFromFloat(48), UnitWeight: decimal.NewFromFloat(11)},
		{PartNo: "MF00M", Name: "Manhole Panel", UnitPrice: decimal.NewFromFloat(60), UnitWeight: decimal.NewFromFloat(8)},
	})
	eng := engine.New(catalog, zap.NewNop())
	h := NewHandler(eng, catalog, nil, zap.NewNop(), 3.75)
	return NewRouter(h, nil, nil)
}

func doRequest(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestCalculate(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/tank/calculate", `{
		"order_info": {"project_name": "Test Plant"},
		"dimensions": {"width": 5, "length1": 5, "height": 2, "quantity": 1},
		"fittings": [{"fitting_type": "WSD-050A", "quantity": 1}],
		"exchange_rate": 3.75
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OrderInfo *entities.OrderInfo   `json:"order_info"`
		Capacity  entities.CapacityInfo `json:"capacity"`
		BOM       []entities.BOMItem    `json:"bom"`
		Cost      entities.CostSummary  `json:"cost_summary"`
		Diag      *struct {
			UnresolvedParts []string `json:"unresolved_parts"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.OrderInfo == nil || resp.OrderInfo.ProjectName != "Test Plant" {
		t.Error("Expected order info echoed back")
	}
	if resp.Capacity.NominalCapacityM3 != 50 {
		t.Errorf("Expected nominal capacity 50, got %g", resp.Capacity.NominalCapacityM3)
	}
	if resp.Capacity.ActualCapacityM3 != 45 {
		t.Errorf("Expected actual capacity 45, got %g", resp.Capacity.ActualCapacityM3)
	}

	var roof, drain *entities.BOMItem
	for i := range resp.BOM {
		switch resp.BOM[i].PartNo {
		case "RF00M":
			roof = &resp.BOM[i]
		case "WSD-050A":
			drain = &resp.BOM[i]
		}
	}
	if roof == nil || roof.Quantity != 24 {
		t.Error("Expected 24 roof panels in the BOM")
	}
	if drain == nil || drain.Quantity != 1 {
		t.Error("Expected the requested drain fitting in the BOM")
	}
	// The sparse test catalog leaves most parts unresolved.
	if resp.Diag == nil || len(resp.Diag.UnresolvedParts) == 0 {
		t.Error("Expected unresolved-part diagnostics")
	}
}

func TestCalculate_InvalidBody(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/tank/calculate", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCalculate_InvalidDimensions(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/tank/calculate", `{
		"dimensions": {"width": 5, "length1": 5, "height": 2.3, "quantity": 1}
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected an error message")
	}
	if resp.RequestID == "" {
		t.Error("Expected a request id on the error response")
	}
}

func TestCalculate_UnknownOptionWarns(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/tank/calculate", `{
		"dimensions": {"width": 5, "length1": 5, "height": 2, "quantity": 1},
		"steel_options": {"bolts_nuts": "Platinum"}
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Warnings []string `json:"warnings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Warnings) != 1 || !strings.Contains(resp.Warnings[0], "bolts_nuts") {
		t.Errorf("Expected a bolts_nuts warning, got %v", resp.Warnings)
	}
}

func TestCapacity(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/tank/capacity",
		`{"width": 10, "length1": 4, "length2": 2, "length3": 2, "height": 3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var capacity entities.CapacityInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &capacity); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if capacity.NominalCapacityM3 != 240 {
		t.Errorf("Expected nominal capacity 240, got %g", capacity.NominalCapacityM3)
	}
	if capacity.NumPartitions != 2 {
		t.Errorf("Expected 2 partitions, got %d", capacity.NumPartitions)
	}
	if capacity.TotalLength != 8 {
		t.Errorf("Expected total length 8, got %g", capacity.TotalLength)
	}
}

func TestOptions(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/tank/options", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var resp optionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.BoltsNutsOptions) != 8 {
		t.Errorf("Expected 8 bolt options, got %d", len(resp.BoltsNutsOptions))
	}
	if len(resp.AvailableHeights) != 9 || resp.AvailableHeights[0] != 1 || resp.AvailableHeights[8] != 5 {
		t.Errorf("Expected heights 1.0 through 5.0, got %v", resp.AvailableHeights)
	}
	if len(resp.FittingTypes) == 0 {
		t.Error("Expected the fitting catalog to be listed")
	}
}

func TestRecommendedFittings(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/tank/fittings/recommended?width=5&length1=5&height=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var specs []entities.FittingSpec
	if err := json.Unmarshal(rec.Body.Bytes(), &specs); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(specs) == 0 {
		t.Fatal("Expected recommended fittings")
	}
}

func TestRecommendedFittings_MissingParams(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/tank/fittings/recommended?width=5", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestListParts(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/tank/parts?offset=0&limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var resp listPartsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("Expected total 3, got %d", resp.Total)
	}
	if len(resp.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(resp.Items))
	}
}

func TestGetPart(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/tank/parts/RF00M", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var part entities.PartInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &part); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if part.Name != "Roof Panel" {
		t.Errorf("Expected name 'Roof Panel', got %q", part.Name)
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/v1/tank/parts/NOPE-123", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", resp["status"])
	}
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "test-id-42")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "test-id-42" {
		t.Errorf("Expected request id echoed, got %q", got)
	}
}
