package bloodlink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

func newTestClient(t *testing.T, handler http.Handler, getter TokenGetter) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:     server.URL,
		TokenGetter: getter,
	}, nil)
	require.NoError(t, err)
	return client
}

func okEnvelope(data string) string {
	return `{"success":true,"message":"ok","data":` + data + `}`
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "not a url"}, nil)
	assert.Error(t, err)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(okEnvelope(`{"totalCampaigns":1}`)))
	})

	getter := func(ctx context.Context, template string) (string, error) {
		assert.Equal(t, "default", template)
		return "token-123", nil
	}

	client := newTestClient(t, handler, getter)
	_, err := client.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestClient_NoGetterSendsUnauthenticated(t *testing.T) {
	var sawAuthHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(okEnvelope(`{}`)))
	})

	client := newTestClient(t, handler, nil)
	_, err := client.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.False(t, sawAuthHeader, "request without a getter must carry no Authorization header")
}

func TestClient_EmptyTokenSendsUnauthenticated(t *testing.T) {
	var sawAuthHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(okEnvelope(`{}`)))
	})

	getter := func(ctx context.Context, template string) (string, error) {
		return "", nil
	}

	client := newTestClient(t, handler, getter)
	_, err := client.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuthHeader)
}

func TestClient_GetterErrorFailsOpen(t *testing.T) {
	var sawAuthHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(okEnvelope(`{}`)))
	})

	getter := func(ctx context.Context, template string) (string, error) {
		return "", assert.AnError
	}

	client := newTestClient(t, handler, getter)
	_, err := client.GetDashboardStats(context.Background())

	// A credential-fetch failure must not block the request
	require.NoError(t, err)
	assert.False(t, sawAuthHeader)
}

// TestClient_CredentialFetchSerialized drives two concurrent requests and
// asserts their token fetches never interleave: the second fetch may only
// begin after the first has returned.
func TestClient_CredentialFetchSerialized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(okEnvelope(`{}`)))
	})

	var mu sync.Mutex
	var inFlight int
	var maxInFlight int
	getter := func(ctx context.Context, template string) (string, error) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return "token", nil
	}

	client := newTestClient(t, handler, getter)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GetDashboardStats(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, maxInFlight, "token fetches must be serialized by the credential mutex")
}

func TestClient_JSONHeadersAndRequestID(t *testing.T) {
	var contentType, accept, requestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		accept = r.Header.Get("Accept")
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(okEnvelope(`{}`)))
	})

	client := newTestClient(t, handler, nil)
	_, err := client.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "application/json", accept)
	assert.NotEmpty(t, requestID)
}

func TestClient_UnauthorizedReturnsTypedError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"session expired","data":null}`))
	})

	client := newTestClient(t, handler, nil)
	_, err := client.GetCampaign(context.Background(), "c1")
	require.Error(t, err)

	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "session expired")
}

func TestClient_EnvelopeFailureIsTypedError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with success=false still counts as an API failure
		w.Write([]byte(`{"success":false,"message":"campaign name already exists","data":null}`))
	})

	client := newTestClient(t, handler, nil)
	_, err := client.CreateCampaign(context.Background(), CreateCampaignInput{Name: "dup"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, "campaign name already exists", apiErr.Message)
}

func TestClient_EmptyBodyOnSuccessIsNotAnError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, handler, nil)
	err := client.DeleteBlog(context.Background(), "blog-1")

	assert.NoError(t, err)
}

func TestClient_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"blog not found","data":null}`))
	})

	client := newTestClient(t, handler, nil)
	_, err := client.GetBlog(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_ListPaginationRoundTrip(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(okEnvelope(`{
			"data": [{"id":"c1","name":"Spring Drive","status":"active"}],
			"meta": {"page":5,"limit":10,"total":42,"totalPages":5,"hasNextPage":false,"hasPreviousPage":true}
		}`)))
	})

	client := newTestClient(t, handler, nil)
	page, err := client.ListCampaigns(context.Background(), ListCampaignsParams{
		Page:   5,
		Limit:  10,
		Status: model.CampaignActive,
	})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "page=5")
	assert.Contains(t, gotQuery, "limit=10")
	assert.Contains(t, gotQuery, "status=active")

	require.Len(t, page.Data, 1)
	assert.Equal(t, "Spring Drive", page.Data[0].Name)
	assert.Equal(t, 5, page.Meta.TotalPages)
	assert.Equal(t, 42, page.Meta.Total)
	assert.False(t, page.Meta.HasNextPage)
	assert.True(t, page.Meta.HasPreviousPage)
}

func TestClient_ZeroParamsOmitted(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(okEnvelope(`{"data":[],"meta":{}}`)))
	})

	client := newTestClient(t, handler, nil)
	_, err := client.ListBlogs(context.Background(), ListBlogsParams{})
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}
