package zonefile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jroosing/cfdns/internal/api/models"
	"github.com/jroosing/cfdns/internal/zonefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleZone = `
$ORIGIN example.com.
$TTL 1h
@       IN  SOA ns1.example.com. admin.example.com. (
            2024010101 ; serial
            3600 900 604800 300 )
@           IN  A      192.0.2.1
www    300  IN  A      192.0.2.10
            IN  AAAA   2001:db8::10
mail        IN  MX     10 mail.example.com.
txt         IN  TXT    "v=spf1 include:_spf.example.com; -all"
legacy      IN  PTR    host.example.net.
api.other.org.  60 CNAME  www.example.com.
`

func TestParse_SampleZone(t *testing.T) {
	recs, err := zonefile.Parse(strings.NewReader(sampleZone), "")
	require.NoError(t, err)

	assert.Equal(t, []models.RecordFields{
		{Type: "A", Name: "example.com", Content: "192.0.2.1", TTL: 3600},
		{Type: "A", Name: "www.example.com", Content: "192.0.2.10", TTL: 300},
		{Type: "AAAA", Name: "www.example.com", Content: "2001:db8::10", TTL: 3600},
		{Type: "MX", Name: "mail.example.com", Content: "mail.example.com.", TTL: 3600, Priority: intPtr(10)},
		{Type: "TXT", Name: "txt.example.com", Content: `"v=spf1 include:_spf.example.com; -all"`, TTL: 3600},
		{Type: "CNAME", Name: "api.other.org", Content: "www.example.com.", TTL: 60},
	}, recs)
}

func TestParse_OriginFromCaller(t *testing.T) {
	recs, err := zonefile.Parse(strings.NewReader("www A 192.0.2.1\n"), "example.com.")
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "www.example.com", recs[0].Name)
	assert.Equal(t, zonefile.DefaultTTL, recs[0].TTL)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "missing origin", text: "www IN A 192.0.2.1\n"},
		{name: "bad origin directive", text: "$ORIGIN\n"},
		{name: "bad ttl directive", text: "$TTL soon\n"},
		{name: "omitted first owner", text: "$ORIGIN example.com.\n   IN A 192.0.2.1\n"},
		{name: "missing rdata", text: "$ORIGIN example.com.\nwww IN A\n"},
		{name: "unbalanced", text: "$ORIGIN example.com.\n@ IN SOA a. b. ( 1 2 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := zonefile.Parse(strings.NewReader(tt.text), "")
			assert.Error(t, err)
		})
	}
}

func TestParse_TTLUnits(t *testing.T) {
	recs, err := zonefile.Parse(strings.NewReader("$ORIGIN example.com.\na 1d2h IN A 192.0.2.1\nb 1w IN A 192.0.2.2\n"), "")
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, 86400+7200, recs[0].TTL)
	assert.Equal(t, 604800, recs[1].TTL)
}

func TestWrite_RoundTrip(t *testing.T) {
	records := []models.DNSRecord{
		{ID: "r1", Type: "A", Name: "www.example.com", Content: "192.0.2.10", TTL: 1, Proxied: true},
		{ID: "r2", Type: "TXT", Name: "example.com", Content: `"hello world"`, TTL: 300},
		{ID: "r3", Type: "MX", Name: "example.com", Content: "mx.example.com", TTL: 300, Priority: intPtr(10)},
	}

	var buf bytes.Buffer
	require.NoError(t, zonefile.Write(&buf, "example.com", records))

	out := buf.String()
	assert.Contains(t, out, "$ORIGIN example.com.\n")
	assert.Contains(t, out, "; proxied")

	parsed, err := zonefile.Parse(strings.NewReader(out), "")
	require.NoError(t, err)
	assert.Equal(t, []models.RecordFields{
		{Type: "A", Name: "www.example.com", Content: "192.0.2.10", TTL: 1, Proxied: true},
		{Type: "TXT", Name: "example.com", Content: `"hello world"`, TTL: 300},
		{Type: "MX", Name: "example.com", Content: "mx.example.com", TTL: 300, Priority: intPtr(10)},
	}, parsed)
}

func TestParse_ProxiedMarkerIsCaseInsensitive(t *testing.T) {
	zone := "$ORIGIN example.com.\nwww IN A 192.0.2.1 ; Proxied\napi IN A 192.0.2.2 ; proxied later\n"

	recs, err := zonefile.Parse(strings.NewReader(zone), "")
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.True(t, recs[0].Proxied)
	assert.False(t, recs[1].Proxied)
}

func intPtr(v int) *int { return &v }
