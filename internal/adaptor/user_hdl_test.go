package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fakeUserService struct {
	admins   map[string]bool
	upserted map[string]map[string]interface{}
}

func (f *fakeUserService) UpsertUser(ctx context.Context, email string, profile map[string]interface{}) (*response.UpsertUserResponse, error) {
	if f.upserted == nil {
		f.upserted = map[string]map[string]interface{}{}
	}
	f.upserted[email] = profile
	return &response.UpsertUserResponse{
		User:  &entity.User{Email: email},
		Token: "signed-token-for-" + email,
	}, nil
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return f.admins[email], nil
}

func (f *fakeUserService) Promote(ctx context.Context, email string) (*entity.User, error) {
	return &entity.User{Email: email, Role: entity.RoleAdmin}, nil
}

func newUserRouter(svc *fakeUserService) *chi.Mux {
	h := NewUserHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Put("/user/{email}", h.UpsertUser)
	r.Get("/admin/{email}", h.AdminCheck)
	return r
}

func TestUpsertUser_IssuesToken(t *testing.T) {
	svc := &fakeUserService{}
	router := newUserRouter(svc)

	body := `{"name":"Alice"}`
	req := httptest.NewRequest(http.MethodPut, "/user/a@x.com", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	got := decodeEnvelope(t, rec)
	data, ok := got.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("envelope data has unexpected shape: %T", got.Data)
	}
	token, _ := data["token"].(string)
	if token != "signed-token-for-a@x.com" {
		t.Errorf("token = %q, want a fresh token for the upserted email", token)
	}

	if _, ok := svc.upserted["a@x.com"]; !ok {
		t.Error("upsert should be keyed by the path email")
	}
}

func TestAdminCheck(t *testing.T) {
	svc := &fakeUserService{admins: map[string]bool{"admin@x.com": true}}
	router := newUserRouter(svc)

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"admin user", "admin@x.com", true},
		{"regular user", "plain@x.com", false},
		{"unknown user reports false, not an error", "ghost@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/"+tt.email, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			env := decodeEnvelope(t, rec)
			data, ok := env.Data.(map[string]interface{})
			if !ok {
				t.Fatalf("envelope data has unexpected shape: %T", env.Data)
			}
			if admin, _ := data["admin"].(bool); admin != tt.want {
				t.Errorf("admin = %v, want %v", admin, tt.want)
			}
		})
	}
}
