package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"item-service/internal/item"
	"item-service/internal/middleware"
	"item-service/pkg/log"
	"item-service/pkg/response"
)

type mockUseCase struct {
	createIn item.CreateItemInput
	listIn   item.ListItemsInput
	updateIn item.UpdateItemInput

	items map[int64]item.Item
	err   error
}

func (m *mockUseCase) Create(ctx context.Context, in item.CreateItemInput) (item.CreateItemOutput, error) {
	m.createIn = in
	if m.err != nil {
		return item.CreateItemOutput{}, m.err
	}
	it := item.New(in.Name, in.Description, in.Status, in.Email)
	it.ID = 1
	it.CreatedAt = time.Now()
	return item.CreateItemOutput{Item: it}, nil
}

func (m *mockUseCase) List(ctx context.Context, in item.ListItemsInput) (item.ListItemsOutput, error) {
	m.listIn = in
	if m.err != nil {
		return item.ListItemsOutput{}, m.err
	}
	var items []item.Item
	for _, it := range m.items {
		items = append(items, it)
	}
	return item.ListItemsOutput{Items: items, Total: len(items), Limit: 20}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id int64) (item.DetailItemOutput, error) {
	if m.err != nil {
		return item.DetailItemOutput{}, m.err
	}
	it, ok := m.items[id]
	if !ok {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

func (m *mockUseCase) Update(ctx context.Context, in item.UpdateItemInput) (item.UpdateItemOutput, error) {
	m.updateIn = in
	if m.err != nil {
		return item.UpdateItemOutput{}, m.err
	}
	it, ok := m.items[in.ID]
	if !ok {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	if in.Status != "" {
		it.Status = in.Status
	}
	return item.UpdateItemOutput{Item: it}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return item.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockUseCase) Process(ctx context.Context) (item.ProcessItemsOutput, error) {
	if m.err != nil {
		return item.ProcessItemsOutput{}, m.err
	}
	var out []item.Item
	for _, it := range m.items {
		it.Status = item.StatusProcessed
		out = append(out, it)
	}
	return item.ProcessItemsOutput{Items: out}, nil
}

func newTestRouter(uc item.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, nil, 0))
	return r
}

func do(r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, response.Resp) {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func seededUseCase() *mockUseCase {
	return &mockUseCase{items: map[int64]item.Item{
		7: {ID: 7, Name: "Desk", Status: "NEW", Email: "a@b.com"},
	}}
}

func TestCreateHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w, resp := do(r, http.MethodPost, "/api/v1/items", map[string]any{
		"id":          99,
		"name":        "Laptop",
		"description": "Dell",
		"status":      "NEW",
		"email":       "it@corp.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if uc.createIn.Name != "Laptop" || uc.createIn.Email != "it@corp.com" {
		t.Errorf("unexpected input %+v", uc.createIn)
	}

	data := resp.Data.(map[string]any)["item"].(map[string]any)
	if data["id"].(float64) != 1 {
		t.Errorf("client-supplied id must be ignored, got %v", data["id"])
	}
}

func TestCreateHandlerMissingFields(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w, resp := do(r, http.MethodPost, "/api/v1/items", map[string]any{"name": "Laptop"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	fields, _ := resp.Errors.(map[string]any)
	if fields["Status"] != "required" || fields["Email"] != "required" {
		t.Errorf("expected Status and Email required, got %v", resp.Errors)
	}
}

func TestCreateHandlerMalformedJSON(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w, _ := do(r, http.MethodPost, "/api/v1/items", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateHandlerInvalidItem(t *testing.T) {
	uc := &mockUseCase{err: &item.ValidationError{Fields: map[string]string{"Email": "item_email"}}}
	r := newTestRouter(uc)

	w, resp := do(r, http.MethodPost, "/api/v1/items", map[string]any{
		"name": "Laptop", "status": "NEW", "email": "a@b.c",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	fields, _ := resp.Errors.(map[string]any)
	if fields["Email"] != "item_email" {
		t.Errorf("expected Email violation, got %v", resp.Errors)
	}
}

func TestListHandler(t *testing.T) {
	uc := seededUseCase()
	r := newTestRouter(uc)

	w, resp := do(r, http.MethodGet, "/api/v1/items?status=NEW&limit=5&offset=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.listIn.Status != "NEW" || uc.listIn.Limit != 5 || uc.listIn.Offset != 2 {
		t.Errorf("unexpected input %+v", uc.listIn)
	}
	data := resp.Data.(map[string]any)
	if data["total"].(float64) != 1 {
		t.Errorf("expected total 1, got %v", data["total"])
	}
}

func TestListHandlerBadQuery(t *testing.T) {
	w, _ := do(newTestRouter(seededUseCase()), http.MethodGet, "/api/v1/items?limit=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDetailHandler(t *testing.T) {
	r := newTestRouter(seededUseCase())

	tests := map[string]struct {
		path string
		want int
	}{
		"found":     {"/api/v1/items/7", http.StatusOK},
		"not found": {"/api/v1/items/8", http.StatusNotFound},
		"bad id":    {"/api/v1/items/abc", http.StatusBadRequest},
		"zero id":   {"/api/v1/items/0", http.StatusBadRequest},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, _ := do(r, http.MethodGet, tt.path, nil)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestUpdateHandlerUsesPathID(t *testing.T) {
	uc := seededUseCase()
	r := newTestRouter(uc)

	w, resp := do(r, http.MethodPut, "/api/v1/items/7", map[string]any{"id": 1000, "status": "IN_USE"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.updateIn.ID != 7 {
		t.Errorf("expected path id 7, got %d", uc.updateIn.ID)
	}
	data := resp.Data.(map[string]any)["item"].(map[string]any)
	if data["status"] != "IN_USE" || data["id"].(float64) != 7 {
		t.Errorf("unexpected item %v", data)
	}
}

func TestUpdateHandlerNotFound(t *testing.T) {
	w, _ := do(newTestRouter(seededUseCase()), http.MethodPut, "/api/v1/items/9", map[string]any{"name": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDeleteHandler(t *testing.T) {
	uc := seededUseCase()
	r := newTestRouter(uc)

	if w, _ := do(r, http.MethodDelete, "/api/v1/items/7", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w, _ := do(r, http.MethodDelete, "/api/v1/items/7", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestProcessHandler(t *testing.T) {
	w, resp := do(newTestRouter(seededUseCase()), http.MethodPost, "/api/v1/items/process", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := resp.Data.(map[string]any)
	if data["count"].(float64) != 1 {
		t.Errorf("expected count 1, got %v", data["count"])
	}
}

func TestInternalErrorsAreHidden(t *testing.T) {
	uc := seededUseCase()
	uc.err = errors.New("connection refused")

	w, resp := do(newTestRouter(uc), http.MethodGet, "/api/v1/items/7", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if resp.Message == "connection refused" {
		t.Error("internal error message leaked")
	}
}

func TestListHandlerSort(t *testing.T) {
	uc := seededUseCase()
	r := newTestRouter(uc)

	w, _ := do(r, http.MethodGet, "/api/v1/items?sort=-name", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.listIn.Sort != "-name" {
		t.Errorf("expected sort -name, got %q", uc.listIn.Sort)
	}

	w, resp := do(r, http.MethodGet, "/api/v1/items?sort=email", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort key, got %d", w.Code)
	}
	fields, _ := resp.Errors.(map[string]any)
	if fields["Sort"] != "oneof" {
		t.Errorf("expected Sort violation, got %v", resp.Errors)
	}
}

func TestUpdateHandlerDescription(t *testing.T) {
	tests := map[string]struct {
		body    map[string]any
		wantNil bool
		want    string
	}{
		"absent keeps": {map[string]any{"status": "IN_USE"}, true, ""},
		"empty clears": {map[string]any{"description": ""}, false, ""},
		"value sets":   {map[string]any{"description": "oak"}, false, "oak"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uc := seededUseCase()
			w, _ := do(newTestRouter(uc), http.MethodPut, "/api/v1/items/7", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			got := uc.updateIn.Description
			if tt.wantNil {
				if got != nil {
					t.Errorf("expected nil description, got %q", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("expected description %q, got %v", tt.want, got)
			}
		})
	}
}
