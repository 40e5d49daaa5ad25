package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_http "github.com/Mhany156/telegram-bot/gen/mocks/http"
	"github.com/Mhany156/telegram-bot/internal/pkg/logging"
	"github.com/Mhany156/telegram-bot/internal/shop/bot"
	shophttp "github.com/Mhany156/telegram-bot/internal/shop/infrastructure/http"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSecretAuthMiddleware(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		secret     string
		headerFn   func(r *http.Request)
		dispatched bool

		expectedStatus int
	}

	tests := []testCase{
		{
			name:   "valid secret",
			secret: "hunter2",
			headerFn: func(r *http.Request) {
				r.Header.Set(shophttp.SecretHeader, "hunter2")
			},
			dispatched:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing secret",
			secret:         "hunter2",
			headerFn:       func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "wrong secret",
			secret: "hunter2",
			headerFn: func(r *http.Request) {
				r.Header.Set(shophttp.SecretHeader, "guess")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty configured secret disables the check",
			secret:         "",
			headerFn:       func(r *http.Request) {},
			dispatched:     true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			dispatcher := mock_http.NewMockDispatcher(ctrl)
			if tt.dispatched {
				dispatcher.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return([]bot.Reply{})
			}

			router := shophttp.NewRouter(shophttp.NewUpdateHandler(dispatcher), tt.secret, logging.NopLogger)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/api/updates", strings.NewReader(`{"user_id": 1, "text": "/balance"}`))
			tt.headerFn(request)
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}

func TestRequestIdMiddleware(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	router := shophttp.NewRouter(shophttp.NewUpdateHandler(mock_http.NewMockDispatcher(ctrl)), "", logging.NopLogger)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(shophttp.RequestIdHeader))
}
