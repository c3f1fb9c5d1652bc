// Package zonefile converts between BIND-style zone text and DNS records.
//
// Only the record types the proxy manages are read; SOA and anything else
// is skipped. Record data is carried through as text and left for
// Cloudflare to validate.
package zonefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/jroosing/cfdns/internal/api/models"
)

// DefaultTTL applies to records without a TTL when the text has no $TTL.
const DefaultTTL = models.TTLAuto

// proxiedMarker is the comment that flags a record as proxied through
// Cloudflare. Plain zone files have no field for it.
const proxiedMarker = "proxied"

var (
	ErrMissingOrigin = errors.New("zone file missing $ORIGIN")
	ErrBadTTL        = errors.New("TTL must be an integer seconds or use suffixes (w/d/h/m/s)")
)

// Parse reads zone text. origin is used until a $ORIGIN directive
// overrides it. Names are returned fully qualified without the trailing dot.
func Parse(r io.Reader, origin string) ([]models.RecordFields, error) {
	lines, err := logicalLines(r)
	if err != nil {
		return nil, err
	}

	origin = strings.TrimSuffix(strings.TrimSpace(origin), ".")
	defaultTTL := DefaultTTL
	lastOwner := ""
	out := make([]models.RecordFields, 0, len(lines))

	for n, ln := range lines {
		text := ln.text
		upper := strings.ToUpper(text)
		switch {
		case strings.HasPrefix(upper, "$ORIGIN"):
			parts := strings.Fields(text)
			if len(parts) != 2 {
				return nil, fmt.Errorf("line %d: invalid $ORIGIN directive", n+1)
			}
			origin = strings.TrimSuffix(parts[1], ".")
			continue
		case strings.HasPrefix(upper, "$TTL"):
			parts := strings.Fields(text)
			if len(parts) != 2 {
				return nil, fmt.Errorf("line %d: invalid $TTL directive", n+1)
			}
			ttl, err := parseTTL(parts[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			defaultTTL = ttl
			continue
		}
		if origin == "" {
			return nil, ErrMissingOrigin
		}

		owner, rest, err := parseOwner(strings.Fields(text), origin, lastOwner, text[0] == ' ' || text[0] == '\t')
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		lastOwner = owner

		ttl, typ, content, err := parseRRFields(rest, defaultTTL)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		if !managedType(typ) {
			continue
		}
		rec := models.RecordFields{
			Type:    typ,
			Name:    owner,
			Content: content,
			TTL:     ttl,
			Proxied: strings.EqualFold(ln.comment, proxiedMarker),
		}
		if typ == "MX" {
			// Cloudflare carries the MX preference outside content.
			if pref, host, ok := strings.Cut(content, " "); ok {
				if p, err := strconv.Atoi(pref); err == nil {
					rec.Priority = &p
					rec.Content = strings.TrimSpace(host)
				}
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// Write renders records as zone text for zoneName. Automatic TTLs are
// written as the zone's default.
func Write(w io.Writer, zoneName string, records []models.DNSRecord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "$ORIGIN %s.\n", strings.TrimSuffix(zoneName, "."))
	fmt.Fprintf(bw, "$TTL %d\n", DefaultTTL)
	for _, r := range records {
		ttl := ""
		if r.TTL != models.TTLAuto && r.TTL > 0 {
			ttl = strconv.Itoa(r.TTL)
		}
		content := r.Content
		if r.Type == "MX" && r.Priority != nil {
			content = strconv.Itoa(*r.Priority) + " " + content
		}
		rr := fmt.Sprintf("%s.\t%s\tIN\t%s\t%s", strings.TrimSuffix(r.Name, "."), ttl, r.Type, content)
		if r.Proxied {
			rr += "\t; " + proxiedMarker
		}
		fmt.Fprintln(bw, rr)
	}
	return bw.Flush()
}

func managedType(typ string) bool {
	for _, t := range models.RecordTypes {
		if t == typ {
			return true
		}
	}
	return false
}

// line is one logical RR line with its trailing comment text.
type line struct {
	text    string
	comment string
}

// logicalLines joins parenthesized blocks and splits off ';' comments.
// Leading whitespace is kept so an omitted owner can be detected.
func logicalLines(r io.Reader) ([]line, error) {
	var (
		buf      []string
		comments []string
		depth    int
		out      []line
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		code, comment := splitComment(scanner.Text())
		code = strings.TrimRight(code, " \t\r")
		if strings.TrimSpace(code) == "" && depth == 0 {
			continue
		}
		depth += strings.Count(code, "(") - strings.Count(code, ")")
		buf = append(buf, code)
		if c := strings.TrimSpace(comment); c != "" {
			comments = append(comments, c)
		}
		if depth > 0 {
			continue
		}
		joined := buf[0]
		for _, cont := range buf[1:] {
			joined += " " + strings.TrimSpace(cont)
		}
		joined = strings.NewReplacer("(", " ", ")", " ").Replace(joined)
		if strings.TrimSpace(joined) != "" {
			out = append(out, line{text: joined, comment: strings.Join(comments, " ")})
		}
		buf, comments = buf[:0], comments[:0]
		depth = 0
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(buf) > 0 {
		return nil, errors.New("unbalanced parentheses")
	}
	return out, nil
}

// splitComment separates a ';' comment that is not inside a quoted string.
func splitComment(s string) (string, string) {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case ';':
			if !inQuote {
				return s[:i], s[i+1:]
			}
		}
	}
	return s, ""
}

func qualify(name, origin string) string {
	if name == "@" {
		return origin
	}
	if strings.HasSuffix(name, ".") {
		return strings.TrimSuffix(name, ".")
	}
	return name + "." + origin
}

var ttlRE = regexp.MustCompile(`^(?:\d+[wdhmsWDHMS]?)+$`)

func looksLikeTTL(tok string) bool { return ttlRE.MatchString(tok) }

func parseTTL(tok string) (int, error) {
	if !ttlRE.MatchString(tok) {
		return 0, ErrBadTTL
	}
	total := 0
	num := 0
	haveNum := false
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c >= '0' && c <= '9' {
			num = num*10 + int(c-'0')
			haveNum = true
			if num > 1<<31 {
				return 0, errors.New("TTL too large")
			}
			continue
		}
		mul := 1
		switch c | 0x20 {
		case 's':
		case 'm':
			mul = 60
		case 'h':
			mul = 3600
		case 'd':
			mul = 86400
		case 'w':
			mul = 604800
		default:
			return 0, ErrBadTTL
		}
		total += num * mul
		num, haveNum = 0, false
	}
	if haveNum {
		total += num
	}
	if total > 1<<31 {
		return 0, errors.New("TTL too large")
	}
	return total, nil
}

func looksLikeClass(tok string) bool { return strings.EqualFold(tok, "IN") }

func parseOwner(tokens []string, origin, lastOwner string, indented bool) (string, []string, error) {
	if len(tokens) == 0 {
		return "", nil, errors.New("invalid empty RR")
	}
	if indented {
		if lastOwner == "" {
			return "", nil, errors.New("owner name omitted on first RR")
		}
		return lastOwner, tokens, nil
	}
	return qualify(tokens[0], origin), tokens[1:], nil
}

func parseRRFields(rest []string, defaultTTL int) (int, string, string, error) {
	var (
		haveTTL   bool
		haveClass bool
		idx       int
	)
	ttl := defaultTTL
	for idx < len(rest) {
		tok := rest[idx]
		if !haveTTL && looksLikeTTL(tok) {
			n, err := parseTTL(tok)
			if err != nil {
				return 0, "", "", err
			}
			ttl = n
			haveTTL = true
			idx++
			continue
		}
		if !haveClass && looksLikeClass(tok) {
			haveClass = true
			idx++
			continue
		}
		break
	}
	if idx >= len(rest) {
		return 0, "", "", errors.New("missing RR type")
	}
	typ := strings.ToUpper(rest[idx])
	idx++
	if idx >= len(rest) {
		return 0, "", "", errors.New("missing RR rdata")
	}
	return ttl, typ, strings.Join(rest[idx:], " "), nil
}
