package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jroosing/cfdns/internal/api/models"
	"github.com/jroosing/cfdns/internal/zonefile"
)

const shellHelp = `Commands:
  zones              list zones
  use <zone-id>      select a zone
  records            show records of the selected zone
  add                create a record
  edit <record-id>   edit a record
  rm <record-id>     delete a record
  refresh            reload records from the proxy
  export [file]      write the zone's records as a zone file
  import <file>      create records from a zone file
  help               show this help
  quit               exit
`

// Shell is a line-oriented front end over a Controller.
type Shell struct {
	ctrl   *Controller
	in     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewShell reads commands from in and writes to out. An empty prompt
// suppresses prompting, which suits piped input.
func NewShell(ctrl *Controller, in *bufio.Scanner, out io.Writer, prompt string) *Shell {
	return &Shell{ctrl: ctrl, in: in, out: out, prompt: prompt}
}

// LineConfirmer asks on out and reads a y/N answer from in.
func LineConfirmer(in *bufio.Scanner, out io.Writer) Confirmer {
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		if !in.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(in.Text()))
		return answer == "y" || answer == "yes"
	}
}

// Run loads the zones, then executes commands until quit, EOF or ctx ends.
func (s *Shell) Run(ctx context.Context) error {
	_ = s.ctrl.LoadZones(ctx)
	s.printZones()
	s.printRecords()
	s.banner()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !s.in.Scan() {
			return s.in.Err()
		}
		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}
		if quit := s.exec(ctx, fields[0], fields[1:]); quit {
			return nil
		}
		s.banner()
	}
}

func (s *Shell) exec(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
	case "zones":
		_ = s.ctrl.LoadZones(ctx)
		s.printZones()
	case "use":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: use <zone-id>")
			return false
		}
		_ = s.ctrl.SelectZone(ctx, args[0])
		s.printRecords()
	case "records", "ls":
		s.printRecords()
	case "refresh":
		_ = s.ctrl.Refresh(ctx)
		s.printRecords()
	case "add":
		if s.ctrl.State().SelectedZoneID == "" {
			fmt.Fprintln(s.out, "no zone selected")
			return false
		}
		s.ctrl.OpenCreate()
		s.fillAndSubmit(ctx)
	case "edit":
		rec, ok := s.lookup(args)
		if !ok {
			return false
		}
		s.ctrl.OpenEdit(rec)
		s.fillAndSubmit(ctx)
	case "rm", "delete":
		rec, ok := s.lookup(args)
		if !ok {
			return false
		}
		_ = s.ctrl.Delete(ctx, rec)
		s.printRecords()
	case "export":
		s.export(args)
	case "import":
		s.importFile(ctx, args)
	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
	return false
}

func (s *Shell) lookup(args []string) (models.DNSRecord, bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: <command> <record-id>")
		return models.DNSRecord{}, false
	}
	for _, rec := range s.ctrl.State().Records {
		if rec.ID == args[0] {
			return rec, true
		}
	}
	fmt.Fprintf(s.out, "no record %q in the selected zone\n", args[0])
	return models.DNSRecord{}, false
}

// fillAndSubmit prompts for every form field, keeping the current value on
// an empty answer, then submits. A rejected submit leaves the form open so
// the user can correct it.
func (s *Shell) fillAndSubmit(ctx context.Context) {
	for {
		f := s.ctrl.State().Form
		f.Type = strings.ToUpper(s.ask("Type", f.Type))
		f.Name = s.ask("Name", f.Name)
		f.Content = s.ask("Content", f.Content)
		ttlText := s.ask("TTL (1 = Auto)", strconv.Itoa(f.TTL))
		if ttl, err := strconv.Atoi(ttlText); err == nil {
			f.TTL = ttl
		} else {
			fmt.Fprintf(s.out, "keeping TTL %d: %q is not a number\n", f.TTL, ttlText)
		}
		f.Proxied = parseBool(s.ask("Proxied (y/n)", FormatProxied(f.Proxied)), f.Proxied)
		if f.Type == "MX" || f.Type == "SRV" {
			f.Priority = s.askPriority(f.Priority)
		}
		s.ctrl.SetForm(f)

		if err := s.ctrl.Submit(ctx); err == nil {
			s.printRecords()
			return
		}
		s.banner()
		if !LineConfirmer(s.in, s.out)("Edit the form again?") {
			s.ctrl.CloseForm()
			return
		}
	}
}

func (s *Shell) selectedZone() (models.Zone, bool) {
	st := s.ctrl.State()
	for _, z := range st.Zones {
		if z.ID == st.SelectedZoneID {
			return z, true
		}
	}
	fmt.Fprintln(s.out, "no zone selected")
	return models.Zone{}, false
}

// export writes the cached records to args[0], or to the shell output.
func (s *Shell) export(args []string) {
	zone, ok := s.selectedZone()
	if !ok {
		return
	}
	records := s.ctrl.State().Records
	if len(args) == 0 {
		if err := zonefile.Write(s.out, zone.Name, records); err != nil {
			fmt.Fprintf(s.out, "export failed: %v\n", err)
		}
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "export failed: %v\n", err)
		return
	}
	werr := zonefile.Write(f, zone.Name, records)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		fmt.Fprintf(s.out, "export failed: %v\n", werr)
		return
	}
	fmt.Fprintf(s.out, "wrote %d records to %s\n", len(records), args[0])
}

func (s *Shell) importFile(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: import <file>")
		return
	}
	zone, ok := s.selectedZone()
	if !ok {
		return
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "import failed: %v\n", err)
		return
	}
	records, err := zonefile.Parse(f, zone.Name)
	_ = f.Close()
	if err != nil {
		fmt.Fprintf(s.out, "import failed: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "no importable records")
		return
	}

	created, _ := s.ctrl.Import(ctx, records)
	fmt.Fprintf(s.out, "imported %d of %d records\n", created, len(records))
	s.printRecords()
}

func (s *Shell) askPriority(current *int) *int {
	shown := ""
	if current != nil {
		shown = strconv.Itoa(*current)
	}
	v := s.ask("Priority", shown)
	if v == "" || v == shown {
		return current
	}
	p, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(s.out, "keeping priority: %q is not a number\n", v)
		return current
	}
	return &p
}

func (s *Shell) ask(label, current string) string {
	fmt.Fprintf(s.out, "%s [%s]: ", label, current)
	if !s.in.Scan() {
		return current
	}
	if v := strings.TrimSpace(s.in.Text()); v != "" {
		return v
	}
	return current
}

func parseBool(v string, fallback bool) bool {
	switch strings.ToLower(v) {
	case "y", "yes", "true", "1":
		return true
	case "n", "no", "false", "0":
		return false
	}
	return fallback
}

func (s *Shell) banner() {
	if msg := s.ctrl.State().Error; msg != "" {
		fmt.Fprintf(s.out, "! %s\n", msg)
	}
}

func (s *Shell) printZones() {
	st := s.ctrl.State()
	if len(st.Zones) == 0 {
		fmt.Fprintln(s.out, "no zones")
		return
	}
	for _, z := range st.Zones {
		marker := " "
		if z.ID == st.SelectedZoneID {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %s  %s\n", marker, z.ID, z.Name)
	}
}

func (s *Shell) printRecords() {
	st := s.ctrl.State()
	if st.SelectedZoneID == "" {
		fmt.Fprintln(s.out, "no zone selected")
		return
	}
	if len(st.Records) == 0 {
		fmt.Fprintln(s.out, "no records")
		return
	}
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tCONTENT\tTTL\tPROXIED")
	for _, r := range st.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Type, r.Name, r.Content, FormatTTL(r.TTL), FormatProxied(r.Proxied))
	}
	_ = tw.Flush()
}
