package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/dto/request"
	"clinic-booking/internal/dto/response"
	"clinic-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeBookingService struct {
	existing *entity.Booking
	byID     map[string]*entity.Booking
}

func (f *fakeBookingService) SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResult, error) {
	if f.existing != nil &&
		f.existing.Treatment == req.Treatment &&
		f.existing.Date == req.Date &&
		f.existing.Patient == req.Patient {
		return &response.BookingResult{Accepted: false, Booking: f.existing}, nil
	}

	booking := &entity.Booking{
		ID:          primitive.NewObjectID(),
		Patient:     req.Patient,
		PatientName: req.PatientName,
		Treatment:   req.Treatment,
		Date:        req.Date,
		Slot:        req.Slot,
	}
	return &response.BookingResult{Accepted: true, Booking: booking}, nil
}

func (f *fakeBookingService) GetPatientBookings(ctx context.Context, patient string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.byID {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingService) GetBookingByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	return f.byID[bookingID], nil
}

func (f *fakeBookingService) RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*entity.Booking, error) {
	b, ok := f.byID[bookingID]
	if !ok {
		return nil, errTestNotFound
	}
	b.Paid = true
	b.TransactionID = req.TransactionID
	return b, nil
}

var errTestNotFound = &testError{"booking not found"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var env utils.Response
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return env
}

func TestGetPatientBookings_SelfMatch(t *testing.T) {
	h := NewBookingHandler(&fakeBookingService{byID: map[string]*entity.Booking{}}, zap.NewNop())

	tests := []struct {
		name       string
		ctxEmail   string
		patient    string
		wantStatus int
	}{
		{"own bookings are readable", "a@x.com", "a@x.com", http.StatusOK},
		{"another patient's bookings are forbidden", "b@x.com", "a@x.com", http.StatusForbidden},
		{"missing patient param is a bad request", "a@x.com", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/booking"
			if tt.patient != "" {
				url += "?patient=" + tt.patient
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			req = req.WithContext(utils.SetEmailContext(req.Context(), tt.ctxEmail))
			rec := httptest.NewRecorder()

			h.GetPatientBookings(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestSubmitBooking_DuplicateEnvelope(t *testing.T) {
	existing := &entity.Booking{
		ID:        primitive.NewObjectID(),
		Patient:   "a@x.com",
		Treatment: "Cleaning",
		Date:      "2023-01-07",
		Slot:      "10am",
	}
	h := NewBookingHandler(&fakeBookingService{existing: existing}, zap.NewNop())

	body := `{"patient":"a@x.com","patientName":"Alice","treatment":"Cleaning","date":"2023-01-07","slot":"11am"}`
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SubmitBooking(rec, req)

	// A duplicate is a success-shaped response, not an HTTP error.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	env := decodeEnvelope(t, rec)
	if !env.Status {
		t.Error("envelope status should be true for a duplicate")
	}

	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("envelope data has unexpected shape: %T", env.Data)
	}
	if accepted, _ := data["accepted"].(bool); accepted {
		t.Error("accepted should be false for a duplicate")
	}
	if data["booking"] == nil {
		t.Error("duplicate response should carry the existing booking")
	}
}

func TestSubmitBooking_Accepted(t *testing.T) {
	h := NewBookingHandler(&fakeBookingService{byID: map[string]*entity.Booking{}}, zap.NewNop())

	body := `{"patient":"a@x.com","patientName":"Alice","treatment":"Cleaning","date":"2023-01-07","slot":"10am"}`
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SubmitBooking(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("envelope data has unexpected shape: %T", env.Data)
	}
	if accepted, _ := data["accepted"].(bool); !accepted {
		t.Error("accepted should be true for a fresh booking")
	}
}

func TestSubmitBooking_InvalidBody(t *testing.T) {
	h := NewBookingHandler(&fakeBookingService{}, zap.NewNop())

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"patient":`},
		{"missing required fields", `{"patient":"a@x.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.SubmitBooking(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}
