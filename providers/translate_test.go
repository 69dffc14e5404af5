package providers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-agrisathi/models"
)

func TestNoopTranslator(t *testing.T) {
	translator := NoopTranslator{}
	assert.Equal(t, "Rotate crops", translator.Translate("Rotate crops", models.LangHindi))
}

func TestHTTPTranslator(t *testing.T) {
	newTranslator := func(baseURL string) *HTTPTranslator {
		return &HTTPTranslator{
			HTTPClient: &http.Client{Timeout: time.Second},
			BaseURL:    baseURL,
		}
	}

	t.Run("english passes through without a request", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		translator := newTranslator(server.URL)
		assert.Equal(t, "Rotate crops", translator.Translate("Rotate crops", models.LangEnglish))
		assert.False(t, called)
	})

	t.Run("empty text passes through", func(t *testing.T) {
		translator := newTranslator("http://127.0.0.1:0")
		assert.Equal(t, "", translator.Translate("", models.LangHindi))
	})

	t.Run("joins translated chunks", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "gtx", r.URL.Query().Get("client"))
			assert.Equal(t, models.LangHindi, r.URL.Query().Get("tl"))
			fmt.Fprint(w, `[[["फसल ","Rotate ",null],["बदलें","crops",null]],null,"en"]`)
		}))
		defer server.Close()

		translator := newTranslator(server.URL)
		assert.Equal(t, "फसल बदलें", translator.Translate("Rotate crops", models.LangHindi))
	})

	t.Run("http error falls back to original text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		translator := newTranslator(server.URL)
		assert.Equal(t, "Rotate crops", translator.Translate("Rotate crops", models.LangHindi))
	})

	t.Run("unreachable server falls back to original text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		translator := newTranslator(server.URL)
		assert.Equal(t, "Rotate crops", translator.Translate("Rotate crops", models.LangHindi))
	})

	t.Run("malformed payload falls back to original text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"not":"an array"}`)
		}))
		defer server.Close()

		translator := newTranslator(server.URL)
		assert.Equal(t, "Rotate crops", translator.Translate("Rotate crops", models.LangHindi))
	})
}
