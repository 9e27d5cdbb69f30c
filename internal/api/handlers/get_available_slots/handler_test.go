package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	getAvailableSlots "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandle(t *testing.T) {
	t.Parallel()

	requestedDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *useCaseMock)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:  "Success",
			query: "?date=2025-06-15",
			mockSetup: func(m *useCaseMock) {
				m.On("Execute", mock.Anything, &getAvailableSlots.Request{Date: requestedDate}).
					Return(&getAvailableSlots.Response{
						Date: requestedDate,
						Slots: []getAvailableSlots.Slot{
							{ID: 1, Time: "09:00-10:00", SlotType: "individual", Price: 600, AvailableSeats: 4, TotalSeats: 6},
						},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"date":"2025-06-15"`)
				assert.Contains(t, body, `"availableSeats":4`)
			},
		},
		{
			name:  "Empty day",
			query: "?date=2025-06-15",
			mockSetup: func(m *useCaseMock) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(&getAvailableSlots.Response{
						Date:  requestedDate,
						Slots: []getAvailableSlots.Slot{},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"slots":[]`)
			},
		},
		{
			name:           "Missing date",
			query:          "",
			mockSetup:      func(m *useCaseMock) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed date",
			query:          "?date=15-06-2025",
			mockSetup:      func(m *useCaseMock) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Internal error",
			query: "?date=2025-06-15",
			mockSetup: func(m *useCaseMock) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			useCase := new(useCaseMock)
			tc.mockSetup(useCase)

			handler := NewHandler(useCase, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/slots"+tc.query, nil)
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rec.Body.String())
			}

			useCase.AssertExpectations(t)
		})
	}
}
