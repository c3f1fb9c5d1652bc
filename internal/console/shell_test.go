package console_test

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jroosing/cfdns/internal/api/models"
	"github.com/jroosing/cfdns/internal/client"
	"github.com/jroosing/cfdns/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, api *fakeAPI, input string) string {
	t.Helper()
	in := bufio.NewScanner(strings.NewReader(input))
	var out bytes.Buffer
	ctrl := console.New(api, console.LineConfirmer(in, &out), nil)
	require.NoError(t, console.NewShell(ctrl, in, &out, "").Run(context.Background()))
	return out.String()
}

func TestShell_StartupShowsZonesAndRecords(t *testing.T) {
	out := runShell(t, newFakeAPI(), "quit\n")

	assert.Contains(t, out, "* z1  one.example")
	assert.Contains(t, out, "  z2  two.example")
	assert.Contains(t, out, "PROXIED")
	assert.Contains(t, out, "Auto")
	assert.Contains(t, out, "Yes")
}

func TestShell_UseSwitchesZone(t *testing.T) {
	out := runShell(t, newFakeAPI(), "use z2\n")

	assert.Contains(t, out, "v=spf1 -all")
	assert.Contains(t, out, "300")
}

func TestShell_AddPromptsAndSubmits(t *testing.T) {
	api := newFakeAPI()
	// type, name, content, ttl, proxied
	runShell(t, api, "add\na\nwww\n1.2.3.4\n\n\nquit\n")

	var created []call
	for _, c := range api.Calls() {
		if c.Op == "create_record" {
			created = append(created, c)
		}
	}
	require.Len(t, created, 1)
	assert.Equal(t, models.RecordFields{Type: "A", Name: "www", Content: "1.2.3.4", TTL: 3600, Proxied: false}, created[0].Fields)
}

func TestShell_AddMXAsksForPriority(t *testing.T) {
	api := newFakeAPI()
	// type, name, content, ttl, proxied, priority
	out := runShell(t, api, "add\nmx\n@\nmail.one.example\n\n\n20\nquit\n")

	assert.Contains(t, out, "Priority []: ")
	var created []call
	for _, c := range api.Calls() {
		if c.Op == "create_record" {
			created = append(created, c)
		}
	}
	require.Len(t, created, 1)
	require.NotNil(t, created[0].Fields.Priority)
	assert.Equal(t, 20, *created[0].Fields.Priority)
}

func TestShell_EditKeepsAutoTTL(t *testing.T) {
	api := newFakeAPI()
	runShell(t, api, "edit r1\n\n\n5.6.7.8\n\n\n")

	var updated []call
	for _, c := range api.Calls() {
		if c.Op == "update_record" {
			updated = append(updated, c)
		}
	}
	require.Len(t, updated, 1)
	assert.Equal(t, models.RecordFields{Type: "A", Name: "www", Content: "5.6.7.8", TTL: 1, Proxied: true}, updated[0].Fields)
}

func TestShell_RejectedSubmitShowsBanner(t *testing.T) {
	api := newFakeAPI()
	api.createErr = &client.APIError{Status: 400, Message: "Invalid content"}

	out := runShell(t, api, "add\n\nwww\nbad\n\n\nn\n")

	assert.Contains(t, out, "! Invalid content")
	assert.Contains(t, out, "Edit the form again? [y/N]")
}

func TestShell_RemoveAsksForConfirmation(t *testing.T) {
	api := newFakeAPI()

	out := runShell(t, api, "rm r1\nn\n")

	assert.Contains(t, out, "Delete A record for www? [y/N]")
	for _, c := range api.Calls() {
		assert.NotEqual(t, "delete_record", c.Op)
	}
}

func TestShell_RemoveConfirmed(t *testing.T) {
	api := newFakeAPI()

	out := runShell(t, api, "rm r1\ny\n")

	assert.Contains(t, out, "no records")
}

func TestShell_UnknownCommandAndMissingRecord(t *testing.T) {
	out := runShell(t, newFakeAPI(), "frobnicate\nedit nope\n")

	assert.Contains(t, out, `unknown command "frobnicate"`)
	assert.Contains(t, out, `no record "nope" in the selected zone`)
}

func TestShell_ExportToOutput(t *testing.T) {
	out := runShell(t, newFakeAPI(), "export\n")

	assert.Contains(t, out, "$ORIGIN one.example.\n")
	assert.Contains(t, out, "www.\t\tIN\tA\t1.2.3.4\t; proxied")
}

func TestShell_ExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z1.zone")
	api := newFakeAPI()

	out := runShell(t, api, "export "+path+"\nuse z2\nimport "+path+"\n")

	assert.Contains(t, out, "wrote 1 records to "+path)
	assert.Contains(t, out, "imported 1 of 1 records")

	var created []call
	for _, c := range api.Calls() {
		if c.Op == "create_record" {
			created = append(created, c)
		}
	}
	require.Len(t, created, 1)
	assert.Equal(t, "z2", created[0].ZoneID)
	assert.Equal(t, models.RecordFields{Type: "A", Name: "www", Content: "1.2.3.4", TTL: 1, Proxied: true}, created[0].Fields)
}

func TestShell_ImportErrors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.zone")
	require.NoError(t, os.WriteFile(bad, []byte("www IN A (\n"), 0o600))

	out := runShell(t, newFakeAPI(), "import\nimport /does/not/exist.zone\nimport "+bad+"\n")

	assert.Contains(t, out, "usage: import <file>")
	assert.Contains(t, out, "import failed: open /does/not/exist.zone")
	assert.Contains(t, out, "import failed: unbalanced parentheses")
}
