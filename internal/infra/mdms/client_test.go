//go:build unit

package mdms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adslot-booking/internal/infra/mdms"
	"adslot-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(serverURL string) *mdms.Client {
	return mdms.NewClient(config.MdmsConfig{
		Host:       serverURL,
		SearchPath: "/mdms-v2/v1/_search",
		Timeout:    5 * time.Second,
	})
}

func TestFetch(t *testing.T) {
	t.Run("returns active masters for the tenant", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/mdms-v2/v1/_search", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			criteria, ok := req["MdmsCriteria"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "pg", criteria["tenantId"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"MdmsRes": map[string]any{
					"Advertisement": map[string]any{
						"AdType": []map[string]any{
							{"name": "Hoarding", "active": true},
							{"name": "Gantry", "active": true},
							{"name": "Unipole", "active": false},
						},
						"Location": []map[string]any{
							{"name": "Main Road", "active": true},
						},
						"FaceArea": []map[string]any{
							{"name": "20x10", "active": true},
						},
					},
				},
			})
		}))
		defer server.Close()

		snapshot, err := newClient(server.URL).Fetch(context.Background(), "pg")
		require.NoError(t, err)
		assert.Equal(t, []string{"Hoarding", "Gantry"}, snapshot.AdTypes)
		assert.True(t, snapshot.HasLocation("Main Road"))
		assert.True(t, snapshot.HasFaceArea("20x10"))
		assert.False(t, snapshot.HasAdType("Unipole"))
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newClient(server.URL).Fetch(context.Background(), "pg")
		assert.Error(t, err)
	})

	t.Run("missing module yields an empty snapshot", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"MdmsRes": map[string]any{}})
		}))
		defer server.Close()

		snapshot, err := newClient(server.URL).Fetch(context.Background(), "pg")
		require.NoError(t, err)
		assert.Empty(t, snapshot.AdTypes)
		assert.Empty(t, snapshot.Locations)
		assert.Empty(t, snapshot.FaceAreas)
	})
}
