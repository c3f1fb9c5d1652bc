package console_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jroosing/cfdns/internal/api"
	"github.com/jroosing/cfdns/internal/api/models"
	"github.com/jroosing/cfdns/internal/client"
	"github.com/jroosing/cfdns/internal/config"
	"github.com/jroosing/cfdns/internal/console"
	"github.com/jroosing/cfdns/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStack wires controller -> client -> proxy -> gateway -> upstream.
func newStack(t *testing.T, upstream http.Handler) *console.Controller {
	t.Helper()
	cf := httptest.NewServer(upstream)
	t.Cleanup(cf.Close)

	cfg := config.Default()
	gateway := provider.New(provider.Config{BaseURL: cf.URL, APIToken: "token", Timeout: 2 * time.Second}, nil, nil)
	proxy := httptest.NewServer(api.New(cfg, gateway, nil, nil).Engine())
	t.Cleanup(proxy.Close)

	return console.New(client.New(proxy.URL, 2*time.Second), nil, nil)
}

func TestStack_UpstreamRejectionSurfacesVerbatim(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path == "/zones" {
				_, _ = io.WriteString(w, `{"success":true,"errors":[],"result":[{"id":"z1","name":"example.com"}]}`)
				return
			}
			_, _ = io.WriteString(w, `{"success":true,"errors":[],"result":[]}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"success":false,"errors":[{"message":"Invalid content"}]}`)
		}
	})
	c := newStack(t, upstream)

	require.NoError(t, c.LoadZones(context.Background()))
	c.OpenCreate()
	c.SetForm(models.RecordFields{Type: "A", Name: "www", Content: "not-an-ip", TTL: 3600})
	err := c.Submit(context.Background())

	require.Error(t, err)
	s := c.State()
	assert.Equal(t, "Invalid content", s.Error)
	assert.True(t, s.FormOpen)
}

func TestStack_ProviderUnreachable(t *testing.T) {
	cf := httptest.NewServer(http.NotFoundHandler())
	url := cf.URL
	cf.Close()

	cfg := config.Default()
	gateway := provider.New(provider.Config{BaseURL: url, Timeout: time.Second}, nil, nil)
	proxy := httptest.NewServer(api.New(cfg, gateway, nil, nil).Engine())
	defer proxy.Close()

	c := console.New(client.New(proxy.URL, 2*time.Second), nil, nil)
	err := c.LoadZones(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Unexpected server error. Please try again later.", c.State().Error)

	resp, err := http.Get(proxy.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStack_EditKeepsPriorityAndComment(t *testing.T) {
	var (
		mu      sync.Mutex
		putBody []byte
	)
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/zones":
			_, _ = io.WriteString(w, `{"success":true,"errors":[],"result":[{"id":"z1","name":"example.com"}]}`)
		case r.Method == http.MethodGet:
			_, _ = io.WriteString(w, `{"success":true,"errors":[],"result":[{"id":"mx1","type":"MX","name":"example.com","content":"mx.example.com","ttl":1,"proxied":false,"priority":10,"comment":"primary mail","zone_id":"z1"}]}`)
		case r.Method == http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			putBody = body
			mu.Unlock()
			_, _ = io.WriteString(w, `{"success":true,"errors":[],"result":{"id":"mx1"}}`)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	c := newStack(t, upstream)

	require.NoError(t, c.LoadZones(context.Background()))
	require.Len(t, c.State().Records, 1)
	c.OpenEdit(c.State().Records[0])
	form := c.State().Form
	form.Content = "mx2.example.com"
	c.SetForm(form)
	require.NoError(t, c.Submit(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	var sent map[string]any
	require.NoError(t, json.Unmarshal(putBody, &sent))
	assert.Equal(t, "mx2.example.com", sent["content"])
	assert.EqualValues(t, 10, sent["priority"])
	assert.Equal(t, "primary mail", sent["comment"])
	assert.EqualValues(t, 1, sent["ttl"])
}
