package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	publicapp "github.com/solvia-mx/solvia-services/api/internal/public/application"
	publicdomain "github.com/solvia-mx/solvia-services/api/internal/public/domain"
)

type fakeDiagnosticServices struct {
	submitted []publicapp.SubmitDiagnosticCommand
	byToken   map[string]*publicdomain.Diagnostic
	submitErr error
	lookupErr error
}

func (f *fakeDiagnosticServices) Submit(_ context.Context, cmd publicapp.SubmitDiagnosticCommand) (*publicdomain.Diagnostic, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, cmd)
	diagnostic := &publicdomain.Diagnostic{
		PublicToken:  uuid.NewString(),
		ContactName:  cmd.ContactName,
		ContactEmail: cmd.ContactEmail,
		Answers:      cmd.Answers,
		Result:       publicdomain.Assemble(cmd.Answers),
		CreatedAt:    time.Now().UTC(),
	}
	return diagnostic, nil
}

func (f *fakeDiagnosticServices) ByToken(_ context.Context, token string) (*publicdomain.Diagnostic, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	diagnostic, ok := f.byToken[token]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return diagnostic, nil
}

func newTestRouter(services *fakeDiagnosticServices) *chi.Mux {
	handler := NewHandler(Config{
		Logger:             log.New(bytes.NewBuffer(nil), "", 0),
		DiagnosticCommands: services,
		DiagnosticQueries:  services,
		Location:           time.UTC,
	})
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

func TestDiagnosticCreateHandler(t *testing.T) {
	services := &fakeDiagnosticServices{}
	router := newTestRouter(services)

	body := map[string]any{
		"contactName":  "Laura Cantú",
		"contactEmail": "laura@refaccionarialuna.mx",
		"answers": map[string]any{
			"businessType":    "restaurante",
			"digitalMaturity": "ninguna",
			"goals":           []string{"organizar", "organizar", "vender-mas"},
			"companySize":     "6-20",
			"additionalNeeds": []string{"inventario"},
		},
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/diagnostics", bytes.NewReader(payload)))

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Token  string `json:"token"`
			Result struct {
				Qualifies bool `json:"qualifies"`
				Primary   struct {
					ID         string `json:"id"`
					MatchScore int    `json:"matchScore"`
					Reason     string `json:"reason"`
				} `json:"primary"`
				Urgency string `json:"urgency"`
			} `json:"result"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Data.Token)
	assert.True(t, response.Data.Result.Qualifies)
	assert.Equal(t, "sistema-restaurante", response.Data.Result.Primary.ID)
	assert.Equal(t, "alta", response.Data.Result.Urgency)
	assert.NotEmpty(t, response.Data.Result.Primary.Reason)

	require.Len(t, services.submitted, 1)
	assert.Equal(t, []publicdomain.Goal{"organizar", "vender-mas"}, services.submitted[0].Answers.Goals)
}

func TestDiagnosticCreateHandlerValidation(t *testing.T) {
	services := &fakeDiagnosticServices{}
	router := newTestRouter(services)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"answers":`},
		{"missing answers", `{"contactName":"Luis"}`},
		{"missing business type", `{"answers":{"digitalMaturity":"basica","companySize":"1-5"}}`},
		{"invalid email", `{"contactEmail":"not-an-email","answers":{"businessType":"otro","digitalMaturity":"basica","companySize":"1-5"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/diagnostics", bytes.NewReader([]byte(tc.body))))
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Empty(t, services.submitted)
		})
	}
}

func TestDiagnosticCreateHandlerKeepsUnknownSlugs(t *testing.T) {
	services := &fakeDiagnosticServices{}
	router := newTestRouter(services)

	body := `{"answers":{"businessType":"papeleria","digitalMaturity":"avanzada","companySize":"1-5","goals":["meta-desconocida"]}}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/diagnostics", bytes.NewReader([]byte(body))))

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Len(t, services.submitted, 1)
	assert.Equal(t, publicdomain.BusinessType("papeleria"), services.submitted[0].Answers.BusinessType)
	assert.Equal(t, []publicdomain.Goal{"meta-desconocida"}, services.submitted[0].Answers.Goals)
}

func TestDiagnosticHandlersServiceFailure(t *testing.T) {
	services := &fakeDiagnosticServices{
		submitErr: errors.New("mongo down"),
		lookupErr: errors.New("mongo down"),
	}
	router := newTestRouter(services)

	body := `{"answers":{"businessType":"otro","digitalMaturity":"basica","companySize":"1-5"}}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/diagnostics", bytes.NewReader([]byte(body))))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/diagnostics/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.NotEmpty(t, response.Error)
}

func TestDiagnosticDetailHandler(t *testing.T) {
	token := uuid.NewString()
	answers := publicdomain.Answers{
		BusinessType:    publicdomain.BusinessFactory,
		DigitalMaturity: publicdomain.MaturityBasic,
		CompanySize:     publicdomain.SizeMedium,
	}
	services := &fakeDiagnosticServices{
		byToken: map[string]*publicdomain.Diagnostic{
			token: {
				PublicToken: token,
				Answers:     answers,
				Result:      publicdomain.Assemble(answers),
				CreatedAt:   time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC),
			},
		},
	}
	router := newTestRouter(services)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/diagnostics/"+token, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, token, response.Data.Token)
}

func TestDiagnosticDetailHandlerErrors(t *testing.T) {
	services := &fakeDiagnosticServices{byToken: map[string]*publicdomain.Diagnostic{}}
	router := newTestRouter(services)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/diagnostics/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/diagnostics/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestSolutionListHandler(t *testing.T) {
	router := newTestRouter(&fakeDiagnosticServices{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/solutions", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool `json:"success"`
		Data    []struct {
			ID   string `json:"id"`
			Link string `json:"link"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Data, 5)
	assert.Equal(t, "sistema-restaurante", response.Data[0].ID)
	assert.Equal(t, "/soluciones/desarrollo-web", response.Data[4].Link)
}
