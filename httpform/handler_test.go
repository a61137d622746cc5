package httpform_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/fieldtype"
	"github.com/dmitrymomot/fieldkit/httpform"
)

func newTestValidator(t *testing.T) *fieldkit.Validator {
	t.Helper()

	reg := fieldkit.NewRegistry()
	fieldtype.Register(reg)

	reg.RegisterDefinition(fieldkit.Definition{
		Name: "title", Type: "text", Label: "Title", Required: true, MinLength: 3,
	})
	reg.RegisterDefinition(fieldkit.Definition{
		Name: "amenities", Type: "multiselect", Label: "Amenities",
		Options: []fieldkit.Option{
			{Value: "wifi", Label: "WiFi"},
			{Value: "parking", Label: "Parking"},
			{Value: "pool", Label: "Pool"},
		},
	})

	return fieldkit.NewValidator(reg)
}

func postForm(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/fields", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) httpform.Envelope {
	t.Helper()
	var env httpform.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestValues(t *testing.T) {
	t.Parallel()

	t.Run("missing content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=b"))
		_, err := httpform.Values(req)
		assert.ErrorIs(t, err, httpform.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		_, err := httpform.Values(req)
		assert.ErrorIs(t, err, httpform.ErrUnsupportedMediaType)
	})

	t.Run("bracket suffix and repeated keys become slices", func(t *testing.T) {
		form := url.Values{}
		form.Set("title", "Cozy Loft")
		form.Add("amenities[]", "wifi")
		form.Add("amenities[]", "pool")
		form.Add("tags", "a")
		form.Add("tags", "b")
		form.Set("single[]", "x")

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		values, err := httpform.Values(req)
		require.NoError(t, err)

		assert.Equal(t, "Cozy Loft", values["title"])
		assert.Equal(t, []string{"wifi", "pool"}, values["amenities"])
		assert.Equal(t, []string{"a", "b"}, values["tags"])
		assert.Equal(t, []string{"x"}, values["single"], "bracket suffix keeps single values as slices")
	})
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid submission returns sanitized values", func(t *testing.T) {
		handler := httpform.Handler(newTestValidator(t))

		form := url.Values{}
		form.Set("title", "  <b>Cozy Loft</b>  ")
		form.Add("amenities[]", "wifi")
		form.Add("amenities[]", "pool")

		rec := postForm(handler, form)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "ok", env.Code)
		assert.Nil(t, env.Error)
		assert.Equal(t, "Cozy Loft", env.Values["title"])
		assert.Equal(t, []any{"wifi", "pool"}, env.Values["amenities"])
	})

	t.Run("validation failure returns 422 with per-field details", func(t *testing.T) {
		handler := httpform.Handler(newTestValidator(t))

		form := url.Values{}
		form.Set("title", "ab")
		form.Add("amenities[]", "sauna")

		rec := postForm(handler, form)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "validation_error", env.Code)
		require.NotNil(t, env.Error)
		assert.Len(t, env.Error.Details["title"], 1)
		assert.Len(t, env.Error.Details["amenities"], 1)
		assert.Contains(t, env.Error.Details["title"][0], "at least 3")
	})

	t.Run("missing required field fails", func(t *testing.T) {
		handler := httpform.Handler(newTestValidator(t))

		rec := postForm(handler, url.Values{"title": {""}})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.NotEmpty(t, env.Error.Details["title"])
	})

	t.Run("unsupported content type returns 415", func(t *testing.T) {
		handler := httpform.Handler(newTestValidator(t))

		req := httptest.NewRequest(http.MethodPost, "/fields", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("onAccept error becomes 500", func(t *testing.T) {
		handler := httpform.Handler(newTestValidator(t),
			httpform.WithOnAccept(func(*http.Request, map[string]any) error {
				return errors.New("storage unavailable")
			}))

		rec := postForm(handler, url.Values{"title": {"Cozy Loft"}})
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "internal_error", env.Code)
	})

	t.Run("onAccept sees sanitized values", func(t *testing.T) {
		var got map[string]any
		handler := httpform.Handler(newTestValidator(t),
			httpform.WithOnAccept(func(_ *http.Request, values map[string]any) error {
				got = values
				return nil
			}))

		rec := postForm(handler, url.Values{"title": {"  Cozy Loft  "}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Cozy Loft", got["title"])
	})

	t.Run("only option scopes validation", func(t *testing.T) {
		handler := httpform.Handler(newTestValidator(t),
			httpform.WithFieldsOptions(fieldkit.Only("amenities")))

		form := url.Values{}
		form.Set("title", "ab")
		form.Add("amenities[]", "wifi")

		rec := postForm(handler, form)
		assert.Equal(t, http.StatusOK, rec.Code, "too-short title is filtered out of the pass")
	})
}

func TestMount(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	httpform.Mount(r, "/fields", newTestValidator(t))

	form := url.Values{}
	form.Set("title", "Cozy Loft")

	rec := postForm(r, form)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", env.Code)
}
