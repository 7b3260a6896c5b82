package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.CatalogRequests.WithLabelValues("search", "success").Inc()
	m.CatalogRequests.WithLabelValues("search", "success").Inc()
	m.CatalogCache.WithLabelValues("search", "hit").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CatalogRequests.WithLabelValues("search", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogCache.WithLabelValues("search", "hit")))

	t.Run("instâncias têm registries independentes", func(t *testing.T) {
		other := New()
		assert.Equal(t, 0.0, testutil.ToFloat64(other.CatalogRequests.WithLabelValues("search", "success")))
	})

	t.Run("handler expõe as métricas", func(t *testing.T) {
		w := httptest.NewRecorder()
		m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "vox_catalog_requests_total")
	})
}
