// Package models_test provides behavior tests for the API models package.
package models_test

import (
	"encoding/json"
	"testing"

	"github.com/jroosing/cfdns/internal/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Error body shape
// ============================================================================

func TestErrorResponse_OmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(models.ErrorResponse{Message: "boom"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"message":"boom"}`, string(data))
}

func TestErrorResponse_EmbedsRawProviderBody(t *testing.T) {
	resp := models.ErrorResponse{
		Message: "Invalid content",
		Data:    json.RawMessage(`{"success":false,"errors":[{"message":"Invalid content"}]}`),
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"success":false,"message":"Invalid content","data":{"success":false,"errors":[{"message":"Invalid content"}]}}`,
		string(data))
}

// ============================================================================
// Records
// ============================================================================

func TestDNSRecord_Fields(t *testing.T) {
	rec := models.DNSRecord{ID: "r1", Type: "CNAME", Name: "www", Content: "example.com", TTL: models.TTLAuto, Proxied: true}

	fields := rec.Fields()

	assert.Equal(t, models.RecordFields{Type: "CNAME", Name: "www", Content: "example.com", TTL: 1, Proxied: true}, fields)
}

func TestDNSRecord_FieldsKeepsWritableExtras(t *testing.T) {
	var rec models.DNSRecord
	err := json.Unmarshal([]byte(`{"id":"r9","type":"SRV","name":"_sip._tcp.example.com","content":"10 5060 sip.example.com","ttl":300,"proxied":false,"priority":10,"comment":"primary","tags":["env:prod"],"data":{"port":5060,"weight":5},"zone_id":"z1"}`), &rec)
	require.NoError(t, err)

	fields := rec.Fields()
	require.NotNil(t, fields.Priority)
	assert.Equal(t, 10, *fields.Priority)
	assert.Equal(t, "primary", fields.Comment)
	assert.Equal(t, []string{"env:prod"}, fields.Tags)
	assert.JSONEq(t, `{"port":5060,"weight":5}`, string(fields.Data))

	// The copy does not alias the record.
	*fields.Priority = 20
	fields.Tags[0] = "changed"
	assert.Equal(t, 10, *rec.Priority)
	assert.Equal(t, "env:prod", rec.Tags[0])

	data, err := json.Marshal(fields)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"SRV","name":"_sip._tcp.example.com","content":"10 5060 sip.example.com","ttl":300,"proxied":false,"priority":20,"comment":"primary","tags":["changed"],"data":{"port":5060,"weight":5}}`, string(data))
}

func TestRecordFields_WireNames(t *testing.T) {
	data, err := json.Marshal(models.RecordFields{Type: "A", Name: "www", Content: "1.2.3.4", TTL: 3600})
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"A","name":"www","content":"1.2.3.4","ttl":3600,"proxied":false}`, string(data))
}

func TestZone_IgnoresProviderSpecificFields(t *testing.T) {
	var z models.Zone
	err := json.Unmarshal([]byte(`{"id":"z1","name":"example.com","status":"active","plan":{"id":"free"}}`), &z)
	require.NoError(t, err)

	assert.Equal(t, models.Zone{ID: "z1", Name: "example.com", Status: "active"}, z)
}

func TestRecordTypes(t *testing.T) {
	assert.Equal(t, []string{"A", "AAAA", "CNAME", "TXT", "MX", "NS", "SRV", "CAA"}, models.RecordTypes)
}
