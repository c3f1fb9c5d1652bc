package handlers_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/cfdns/internal/api/handlers"
)

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/config", h.GetConfig)
	api.GET("/zones", h.ListZones)
	api.GET("/zones/:zoneId/dns_records", h.ListRecords)
	api.POST("/zones/:zoneId/dns_records", h.CreateRecord)
	api.PUT("/zones/:zoneId/dns_records/:recordId", h.UpdateRecord)
	api.DELETE("/zones/:zoneId/dns_records/:recordId", h.DeleteRecord)

	return r
}

// gatewayCall records one invocation of the fake gateway.
type gatewayCall struct {
	Op       string
	ZoneID   string
	RecordID string
	Body     string
}

// fakeGateway returns canned results and remembers how it was called.
type fakeGateway struct {
	mu     sync.Mutex
	calls  []gatewayCall
	result json.RawMessage
	err    error
}

func (f *fakeGateway) record(call gatewayCall) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return json.RawMessage(`[]`), nil
	}
	return f.result, nil
}

func (f *fakeGateway) Calls() []gatewayCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gatewayCall(nil), f.calls...)
}

func (f *fakeGateway) ListZones(_ context.Context) (json.RawMessage, error) {
	return f.record(gatewayCall{Op: "list_zones"})
}

func (f *fakeGateway) ListRecords(_ context.Context, zoneID string) (json.RawMessage, error) {
	return f.record(gatewayCall{Op: "list_records", ZoneID: zoneID})
}

func (f *fakeGateway) CreateRecord(_ context.Context, zoneID string, fields json.RawMessage) (json.RawMessage, error) {
	return f.record(gatewayCall{Op: "create_record", ZoneID: zoneID, Body: string(fields)})
}

func (f *fakeGateway) UpdateRecord(_ context.Context, zoneID, recordID string, fields json.RawMessage) (json.RawMessage, error) {
	return f.record(gatewayCall{Op: "update_record", ZoneID: zoneID, RecordID: recordID, Body: string(fields)})
}

func (f *fakeGateway) DeleteRecord(_ context.Context, zoneID, recordID string) (json.RawMessage, error) {
	return f.record(gatewayCall{Op: "delete_record", ZoneID: zoneID, RecordID: recordID})
}
