package models

import "encoding/json"

// Zone is a DNS domain under management. The proxy forwards the provider's
// zone objects verbatim; only the fields below are relied upon.
type Zone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// Record types offered by the record form.
var RecordTypes = []string{"A", "AAAA", "CNAME", "TXT", "MX", "NS", "SRV", "CAA"}

// TTLAuto is the provider's sentinel for automatic TTL.
const TTLAuto = 1

// DNSRecord is one resource record within a zone.
type DNSRecord struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Content  string          `json:"content"`
	TTL      int             `json:"ttl"`
	Proxied  bool            `json:"proxied"`
	Priority *int            `json:"priority,omitempty"`
	Comment  string          `json:"comment,omitempty"`
	Tags     []string        `json:"tags,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Fields returns the mutable subset of the record. Cloudflare replaces the
// whole record on update, so every writable field is carried over.
func (r DNSRecord) Fields() RecordFields {
	f := RecordFields{
		Type:    r.Type,
		Name:    r.Name,
		Content: r.Content,
		TTL:     r.TTL,
		Proxied: r.Proxied,
		Comment: r.Comment,
	}
	if r.Priority != nil {
		p := *r.Priority
		f.Priority = &p
	}
	if r.Tags != nil {
		f.Tags = append([]string(nil), r.Tags...)
	}
	if r.Data != nil {
		f.Data = append(json.RawMessage(nil), r.Data...)
	}
	return f
}

// RecordFields is the body of create and update requests.
type RecordFields struct {
	Type    string `json:"type" example:"A"`
	Name    string `json:"name" example:"www"`
	Content string `json:"content" example:"1.2.3.4"`
	TTL     int    `json:"ttl" example:"3600"`
	Proxied bool   `json:"proxied" example:"false"`
	// Priority applies to MX, SRV and URI records.
	Priority *int            `json:"priority,omitempty" example:"10"`
	Comment  string          `json:"comment,omitempty"`
	Tags     []string        `json:"tags,omitempty"`
	Data     json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// DeleteResult is the provider's answer to a record deletion.
type DeleteResult struct {
	ID string `json:"id"`
}
