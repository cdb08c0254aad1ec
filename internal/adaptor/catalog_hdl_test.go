package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/dto/response"

	"go.uber.org/zap"
)

type fakeCatalogService struct {
	names []*entity.Service
	views []*response.AvailableService
}

func (f *fakeCatalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	return f.names, nil
}

func (f *fakeCatalogService) GetAvailability(ctx context.Context, date string) ([]*response.AvailableService, error) {
	return f.views, nil
}

func TestListServices_NameOnlyShape(t *testing.T) {
	// The repository projects names only; the listing must not pad the
	// records with empty slot or price fields.
	svc := &fakeCatalogService{names: []*entity.Service{
		{Name: "Cleaning"},
		{Name: "Whitening"},
	}}
	h := NewCatalogHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/service", nil)
	rec := httptest.NewRecorder()

	h.ListServices(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	body := rec.Body.String()
	if strings.Contains(body, `"slots"`) || strings.Contains(body, `"price"`) {
		t.Errorf("name-only listing leaked catalog fields: %s", body)
	}

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.([]interface{})
	if !ok {
		t.Fatalf("envelope data has unexpected shape: %T", env.Data)
	}
	if len(data) != 2 {
		t.Fatalf("listing has %d entries, want 2", len(data))
	}
}
