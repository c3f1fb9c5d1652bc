// Package console holds the client-side selection and sync state machine
// used by DNS front ends.
//
// The Controller owns the zone list, the selected zone, the cached records
// of that zone and the record form. It never patches records locally: every
// mutation is followed by a fresh fetch of the record list. Record fetches
// carry a sequence token so a late response for a zone that is no longer
// selected is dropped.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/jroosing/cfdns/internal/api/models"
	"github.com/jroosing/cfdns/internal/client"
)

// FallbackErrorText is shown when a failure carries no usable message.
const FallbackErrorText = "Unexpected error, please try again."

// DefaultTTL is the TTL a new record starts with.
const DefaultTTL = 3600

// API is the proxy as seen by the controller. *client.Client satisfies it.
type API interface {
	ListZones(ctx context.Context) ([]models.Zone, error)
	ListRecords(ctx context.Context, zoneID string) ([]models.DNSRecord, error)
	CreateRecord(ctx context.Context, zoneID string, fields models.RecordFields) (models.DNSRecord, error)
	UpdateRecord(ctx context.Context, zoneID, recordID string, fields models.RecordFields) (models.DNSRecord, error)
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
}

// Confirmer asks the user a yes/no question.
type Confirmer func(prompt string) bool

// DefaultForm returns the values of an empty create form.
func DefaultForm() models.RecordFields {
	return models.RecordFields{Type: "A", TTL: DefaultTTL}
}

// FormFromRecord returns the form values for editing rec. The automatic TTL
// sentinel is kept as-is; a missing TTL becomes DefaultTTL.
func FormFromRecord(rec models.DNSRecord) models.RecordFields {
	f := rec.Fields()
	if f.TTL == 0 {
		f.TTL = DefaultTTL
	}
	return f
}

// FormatTTL renders a TTL for display.
func FormatTTL(ttl int) string {
	if ttl == models.TTLAuto {
		return "Auto"
	}
	return strconv.Itoa(ttl)
}

// FormatProxied renders the proxied flag for display.
func FormatProxied(proxied bool) string {
	if proxied {
		return "Yes"
	}
	return "No"
}

// DeletePrompt is the confirmation question for deleting rec.
func DeletePrompt(rec models.DNSRecord) string {
	return fmt.Sprintf("Delete %s record for %s?", rec.Type, rec.Name)
}

// ErrorText converts a failure into the single line shown to the user.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackErrorText
}

// State is a snapshot of the controller. Slices are copies.
type State struct {
	Zones          []models.Zone
	SelectedZoneID string
	Records        []models.DNSRecord
	Loading        bool
	Submitting     bool
	Error          string

	FormOpen bool
	// Editing is the record being edited, nil when creating.
	Editing *models.DNSRecord
	Form    models.RecordFields
}

// Controller is safe for concurrent use. Its lock is never held across a
// network call.
type Controller struct {
	api     API
	confirm Confirmer
	logger  *slog.Logger

	mu         sync.Mutex
	zones      []models.Zone
	selected   string
	records    []models.DNSRecord
	loading    int
	submitting bool
	errText    string
	formOpen   bool
	editing    *models.DNSRecord
	form       models.RecordFields
	seq        uint64
}

// New creates a controller. A nil confirm declines every deletion; logger may be nil.
func New(api API, confirm Confirmer, logger *slog.Logger) *Controller {
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		api:     api,
		confirm: confirm,
		logger:  logger,
		form:    DefaultForm(),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Zones:          append([]models.Zone(nil), c.zones...),
		SelectedZoneID: c.selected,
		Records:        append([]models.DNSRecord(nil), c.records...),
		Loading:        c.loading > 0,
		Submitting:     c.submitting,
		Error:          c.errText,
		FormOpen:       c.formOpen,
		Form:           c.form,
	}
	if c.editing != nil {
		rec := *c.editing
		s.Editing = &rec
	}
	return s
}

// LoadZones fetches the zone set and reconciles the selection with it: the
// current zone is kept when still present, otherwise the first zone (or
// none) is selected and its records fetched.
func (c *Controller) LoadZones(ctx context.Context) error {
	c.begin()
	zones, err := c.api.ListZones(ctx)

	c.mu.Lock()
	c.loading--
	if err != nil {
		c.errText = ErrorText(err)
		c.mu.Unlock()
		return err
	}
	c.zones = append([]models.Zone(nil), zones...)
	next := reconcile(c.zones, c.selected)
	changed := next != c.selected
	c.mu.Unlock()

	if !changed {
		return nil
	}
	return c.SelectZone(ctx, next)
}

func reconcile(zones []models.Zone, selected string) string {
	if selected != "" {
		for _, z := range zones {
			if z.ID == selected {
				return selected
			}
		}
	}
	if len(zones) == 0 {
		return ""
	}
	return zones[0].ID
}

// SelectZone makes zoneID current, clears the cached records and fetches
// the zone's records. An empty zoneID clears the selection.
func (c *Controller) SelectZone(ctx context.Context, zoneID string) error {
	c.mu.Lock()
	c.selected = zoneID
	c.records = nil
	c.seq++
	token := c.seq
	c.mu.Unlock()

	if zoneID == "" {
		return nil
	}
	return c.fetchRecords(ctx, zoneID, token)
}

// Refresh re-fetches the records of the selected zone.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	zoneID := c.selected
	c.seq++
	token := c.seq
	c.mu.Unlock()

	if zoneID == "" {
		return nil
	}
	return c.fetchRecords(ctx, zoneID, token)
}

func (c *Controller) fetchRecords(ctx context.Context, zoneID string, token uint64) error {
	c.begin()
	records, err := c.api.ListRecords(ctx, zoneID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--

	if token != c.seq {
		c.logger.Debug("discarding stale records response", "zone_id", zoneID)
		return nil
	}
	if err != nil {
		c.errText = ErrorText(err)
		return err
	}
	c.records = append([]models.DNSRecord(nil), records...)
	return nil
}

// OpenCreate opens the form for a new record.
func (c *Controller) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = true
	c.editing = nil
	c.form = DefaultForm()
}

// OpenEdit opens the form pre-filled with rec.
func (c *Controller) OpenEdit(rec models.DNSRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = true
	c.editing = &rec
	c.form = FormFromRecord(rec)
}

// SetForm replaces the form values.
func (c *Controller) SetForm(f models.RecordFields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

// CloseForm discards the form.
func (c *Controller) CloseForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeFormLocked()
}

func (c *Controller) closeFormLocked() {
	c.formOpen = false
	c.editing = nil
	c.form = DefaultForm()
}

// Submit creates or updates a record from the form. On success the form
// closes and the records are re-fetched; on failure the form stays open.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.selected == "" || !c.formOpen {
		c.mu.Unlock()
		return nil
	}
	zoneID := c.selected
	fields := c.form
	var recordID string
	if c.editing != nil {
		recordID = c.editing.ID
	}
	c.submitting = true
	c.errText = ""
	c.mu.Unlock()

	var err error
	if recordID == "" {
		_, err = c.api.CreateRecord(ctx, zoneID, fields)
	} else {
		_, err = c.api.UpdateRecord(ctx, zoneID, recordID, fields)
	}

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.errText = ErrorText(err)
		c.mu.Unlock()
		return err
	}
	c.closeFormLocked()
	c.mu.Unlock()

	c.logger.Debug("record saved", "zone_id", zoneID, "record_id", recordID)
	return c.Refresh(ctx)
}

// Delete removes rec from the selected zone after the user confirms. A
// declined prompt makes no calls. On failure the cached records are kept.
func (c *Controller) Delete(ctx context.Context, rec models.DNSRecord) error {
	c.mu.Lock()
	zoneID := c.selected
	c.mu.Unlock()

	if zoneID == "" || !c.confirm(DeletePrompt(rec)) {
		return nil
	}

	c.begin()
	err := c.api.DeleteRecord(ctx, zoneID, rec.ID)

	c.mu.Lock()
	c.loading--
	if err != nil {
		c.errText = ErrorText(err)
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Import creates each record in the selected zone, stopping at the first
// failure, then re-fetches. It returns how many records were created.
func (c *Controller) Import(ctx context.Context, records []models.RecordFields) (int, error) {
	c.mu.Lock()
	zoneID := c.selected
	c.mu.Unlock()
	if zoneID == "" || len(records) == 0 {
		return 0, nil
	}

	c.begin()
	created := 0
	var err error
	for _, f := range records {
		if _, err = c.api.CreateRecord(ctx, zoneID, f); err != nil {
			break
		}
		created++
	}

	c.mu.Lock()
	c.loading--
	if err != nil {
		c.errText = ErrorText(err)
	}
	c.mu.Unlock()

	if created > 0 {
		// Keep the import failure visible over the refresh.
		if refreshErr := c.refreshKeepingError(ctx); refreshErr != nil && err == nil {
			err = refreshErr
		}
	}
	return created, err
}

// refreshKeepingError re-fetches records without clearing a pending error.
func (c *Controller) refreshKeepingError(ctx context.Context) error {
	c.mu.Lock()
	zoneID := c.selected
	prevErr := c.errText
	c.seq++
	token := c.seq
	c.mu.Unlock()

	if zoneID == "" {
		return nil
	}
	err := c.fetchRecords(ctx, zoneID, token)
	if prevErr != "" {
		c.mu.Lock()
		if c.errText == "" {
			c.errText = prevErr
		}
		c.mu.Unlock()
	}
	return err
}

// begin marks an operation in flight and clears the previous error.
func (c *Controller) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading++
	c.errText = ""
}
