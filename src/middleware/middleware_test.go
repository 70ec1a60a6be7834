package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo09/paises-backend/src/dtos"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func validationRouter(got *dtos.CountryInput) *gin.Engine {
	r := gin.New()
	r.POST("/country", ValidateCountry(), func(ctx *gin.Context) {
		input, ok := CountryInputFrom(ctx)
		if !ok {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		*got = input
		ctx.Status(http.StatusNoContent)
	})
	return r
}

func validForm() url.Values {
	return url.Values{
		"name":         {"Argentina"},
		"officialName": {"  Argentine Republic  "},
		"capital":      {" Buenos Aires "},
		"area":         {"2780400"},
		"population":   {"45376763"},
		"giniIndex":    {"42.9"},
		"giniYear":     {"2019"},
		"borders":      {"BOL, BRA,CHL"},
		"timezones":    {"UTC-03:00"},
	}
}

func postForm(r http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/country", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/country", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type validationBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func decodeValidation(t *testing.T, w *httptest.ResponseRecorder) validationBody {
	t.Helper()
	var body validationBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestValidateCountry_FormIsSanitized(t *testing.T) {
	var got dtos.CountryInput
	w := postForm(validationRouter(&got), validForm())

	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, "Argentine Republic", *got.OfficialName)
	assert.Equal(t, "Buenos Aires", *got.Capital)
	assert.Equal(t, []string{"BOL", "BRA", "CHL"}, got.Borders)
	assert.Equal(t, []string{"UTC-03:00"}, got.Timezones)
}

func TestValidateCountry_FormArrayFields(t *testing.T) {
	form := validForm()
	form.Del("borders")
	form["borders[]"] = []string{"BOL", "BRA"}

	var got dtos.CountryInput
	w := postForm(validationRouter(&got), form)

	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, []string{"BOL", "BRA"}, got.Borders)
}

func TestValidateCountry_LowercaseBorderRejected(t *testing.T) {
	form := validForm()
	form.Set("borders", "usa")

	var got dtos.CountryInput
	w := postForm(validationRouter(&got), form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeValidation(t, w)
	assert.Equal(t, "Validation errors", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "borders", body.Errors[0].Field)
}

func TestValidateCountry_MissingFieldsReportedInOrder(t *testing.T) {
	var got dtos.CountryInput
	w := postForm(validationRouter(&got), url.Values{"name": {"Chile"}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeValidation(t, w)
	fields := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"officialName", "capital", "giniIndex", "giniYear", "area", "population"}, fields)
}

func TestValidateCountry_JSONBody(t *testing.T) {
	var got dtos.CountryInput
	w := postJSON(validationRouter(&got), `{
		"name": "Mexico",
		"officialName": "United Mexican States",
		"capital": "Mexico City",
		"area": 1964375,
		"population": 128932753,
		"giniIndex": 45.4,
		"giniYear": "2018",
		"borders": "USA, GTM,BLZ",
		"timezones": ["UTC-08:00", "UTC-06:00"]
	}`)

	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, "1964375", *got.Area)
	assert.Equal(t, "128932753", *got.Population)
	assert.Equal(t, "45.4", *got.GiniIndex)
	assert.Equal(t, []string{"USA", "GTM", "BLZ"}, got.Borders)
	assert.Equal(t, []string{"UTC-08:00", "UTC-06:00"}, got.Timezones)
}

func TestValidateCountry_JSONLowercaseBorder(t *testing.T) {
	var got dtos.CountryInput
	w := postJSON(validationRouter(&got), `{
		"name": "Mexico", "officialName": "United Mexican States", "capital": "Mexico City",
		"area": 1, "population": 1, "giniIndex": 45, "giniYear": "2018",
		"borders": ["usa"]
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "borders", decodeValidation(t, w).Errors[0].Field)
}

func TestValidateCountry_MalformedJSON(t *testing.T) {
	var got dtos.CountryInput
	w := postJSON(validationRouter(&got), `{"name": `)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeValidation(t, w)
	assert.Equal(t, "Invalid request body", body.Message)
}

func TestValidateCountry_JSONObjectFieldRejected(t *testing.T) {
	var got dtos.CountryInput
	w := postJSON(validationRouter(&got), `{"name": {"common": "Peru"}}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeValidation(t, w).Message)
}

func TestMethodOverride(t *testing.T) {
	cases := []struct {
		name   string
		method string
		target string
		header string
		want   string
	}{
		{"query put", http.MethodPost, "/x?_method=PUT", "", http.MethodPut},
		{"query lowercase delete", http.MethodPost, "/x?_method=delete", "", http.MethodDelete},
		{"header patch", http.MethodPost, "/x", "PATCH", http.MethodPatch},
		{"unsupported method ignored", http.MethodPost, "/x?_method=GET", "", http.MethodPost},
		{"only post is overridden", http.MethodGet, "/x?_method=DELETE", "", http.MethodGet},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			h := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Method
			}))
			req := httptest.NewRequest(tc.method, tc.target, nil)
			if tc.header != "" {
				req.Header.Set("X-HTTP-Method-Override", tc.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tc.want, seen)
		})
	}
}

func panickingRouter(expose bool) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(expose))
	r.GET("/boom", func(ctx *gin.Context) {
		panic("database exploded")
	})
	return r
}

func TestRecovery_HidesDetailsInProduction(t *testing.T) {
	w := httptest.NewRecorder()
	panickingRouter(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, 500, body["status"])
	assert.Equal(t, "Internal server error.", body["message"])
	assert.NotContains(t, body, "stack")
}

func TestRecovery_ExposesDetailsInDevelopment(t *testing.T) {
	w := httptest.NewRecorder()
	panickingRouter(true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "database exploded", body["message"])
	assert.NotEmpty(t, body["stack"])
}

func TestMetrics_ExposesRequestCounter(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/metrics", MetricsHandler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `paises_http_requests_total{method="GET",route="/ping",status="200"}`)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusTeapot, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
