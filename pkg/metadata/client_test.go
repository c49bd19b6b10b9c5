package metadata

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/reelscope/pkg/config"
)

const searchURL = "https://metadata.example.com/3/search/movie"

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client := NewClient(config.MetadataConfig{
		Endpoint: "https://metadata.example.com/3",
		APIKey:   "test-key",
		Timeout:  5 * time.Second,
	})
	httpmock.ActivateNonDefault(client.http.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", searchURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "test-key", req.URL.Query().Get("api_key"))
			assert.Equal(t, "halloween", req.URL.Query().Get("query"))
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"results": []map[string]interface{}{
					{"id": 745, "title": "The Sixth Sense", "release_date": "1999-08-06", "vote_average": 8.0, "overview": "A boy who sees dead people."},
					{"id": 948, "title": "Halloween", "release_date": "1978-10-24", "vote_average": 7.6},
					{"id": 1001, "title": "Unreleased Thing", "release_date": "", "vote_average": 0.0},
				},
			})
		})

	candidates, err := client.Search(context.Background(), "halloween")
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, int64(745), candidates[0].ID)
	assert.Equal(t, 1999, candidates[0].Year)
	assert.InDelta(t, 8.0, candidates[0].Rating, 0.0001)
	assert.Equal(t, 1978, candidates[1].Year)
	assert.Zero(t, candidates[2].Year, "missing release date maps to zero year")
}

func TestClient_Search_ServiceError(t *testing.T) {
	client := newTestClient(t)
	httpmock.RegisterResponder("GET", searchURL, httpmock.NewStringResponder(500, "boom"))

	_, err := client.Search(context.Background(), "horror")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_Lookup(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", searchURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "The Shining", req.URL.Query().Get("query"))
			assert.Equal(t, "1980", req.URL.Query().Get("year"))
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"results": []map[string]interface{}{
					{"id": 694, "title": "The Shining", "release_date": "1980-05-23", "vote_average": 8.2},
					{"id": 999, "title": "The Shining Hour", "release_date": "1938-11-18", "vote_average": 6.1},
				},
			})
		})

	candidate, err := client.Lookup(context.Background(), "The Shining", 1980)
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, int64(694), candidate.ID, "first result is canonical")
	assert.Equal(t, 1980, candidate.Year)
}

func TestClient_Lookup_NotFound(t *testing.T) {
	client := newTestClient(t)
	httpmock.RegisterResponder("GET", searchURL,
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{"results": []map[string]interface{}{}}))

	candidate, err := client.Lookup(context.Background(), "No Such Movie", 0)
	require.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestClient_Lookup_NoYearParam(t *testing.T) {
	client := newTestClient(t)
	httpmock.RegisterResponder("GET", searchURL,
		func(req *http.Request) (*http.Response, error) {
			assert.False(t, req.URL.Query().Has("year"))
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"results": []map[string]interface{}{{"id": 1, "title": "Alien", "release_date": "1979-05-25", "vote_average": 8.1}},
			})
		})

	candidate, err := client.Lookup(context.Background(), "Alien", 0)
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, int64(1), candidate.ID)
}
