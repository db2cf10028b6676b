// Command tripctl inspects and edits trip links from the terminal.
//
//	tripctl decode [-o json|yaml] LINK
//	tripctl encode [-origin URL] [FILE]
//	tripctl apply  [-origin URL] LINK [INTENT]
//	tripctl share  [-origin URL] LINK
//	tripctl export [-format json|csv|yaml] LINK
//
// LINK is either the encoded data or a whole URL carrying it in its "data"
// parameter. FILE and INTENT are JSON; when omitted they are read from stdin.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/tabi-shiori/internal/bridge"
	"github.com/pkordes/tabi-shiori/internal/codec"
	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/internal/export"
	"github.com/pkordes/tabi-shiori/internal/service"
)

const defaultOrigin = "http://localhost:5173"

// errUsage marks errors that should be followed by the usage text.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one subcommand and returns the process exit code:
// 0 on success, 1 on failure, 2 on bad usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	c := &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "decode":
		err = c.decode(rest)
	case "encode":
		err = c.encode(rest)
	case "apply":
		err = c.apply(rest)
	case "share":
		err = c.share(rest)
	case "export":
		err = c.export(rest)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "tripctl:", err)
		usage(stderr)
		return 2
	default:
		fmt.Fprintln(stderr, "tripctl:", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  tripctl decode [-o json|yaml] LINK
  tripctl encode [-origin URL] [FILE]
  tripctl apply  [-origin URL] LINK [INTENT]
  tripctl share  [-origin URL] LINK
  tripctl export [-format json|csv|yaml] LINK
`)
}

type cli struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	log            *slog.Logger
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// decode prints the trip carried by LINK.
func (c *cli) decode(args []string) error {
	fs := c.flags("decode")
	out := fs.String("o", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	data, err := linkArg(fs, 0)
	if err != nil {
		return err
	}

	trip, err := codec.Decode(data)
	if err != nil {
		return err
	}
	raw, err := codec.Marshal(trip)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stderr, "%s of link data, %s of JSON\n",
		humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(len(raw))))

	switch *out {
	case "json":
		return writeJSON(c.stdout, trip)
	case "yaml":
		enc := yaml.NewEncoder(c.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(trip); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: unknown output format %q", errUsage, *out)
}

// encode reads the JSON form of a trip and prints its share URL.
func (c *cli) encode(args []string) error {
	fs := c.flags("encode")
	origin := fs.String("origin", defaultOrigin, "origin of the share URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	raw, err := c.readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	trip, err := codec.Unmarshal(raw)
	if err != nil {
		return err
	}
	return c.printLink(*origin, trip)
}

// apply runs one intent against the trip in LINK and prints the new URL.
// When LINK is a URL its other query parameters are kept.
func (c *cli) apply(args []string) error {
	fs := c.flags("apply")
	origin := fs.String("origin", defaultOrigin, "origin used when LINK is bare data")
	if err := fs.Parse(args); err != nil {
		return err
	}
	link := fs.Arg(0)
	if link == "" {
		return fmt.Errorf("%w: missing LINK", errUsage)
	}
	raw := []byte(fs.Arg(1))
	if fs.NArg() < 2 {
		var err error
		if raw, err = io.ReadAll(c.stdin); err != nil {
			return fmt.Errorf("reading intent: %w", err)
		}
	}
	var in service.Intent
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("%w: intent is not valid JSON: %w", domain.ErrValidation, err)
	}

	href := link
	if !isURL(link) {
		href = strings.TrimRight(*origin, "/") + "/?" + bridge.Param + "=" + link
	}
	loc := bridge.NewMemoryLocation(href)
	b := bridge.New(loc, c.log)
	b.Load()

	next, err := service.Apply(b.Trip(), in)
	if err != nil {
		return err
	}
	b.Apply(func(domain.Trip) domain.Trip { return next })

	fmt.Fprintln(c.stdout, loc.Href())
	return nil
}

// share prints the canonical share URL of the trip in LINK.
func (c *cli) share(args []string) error {
	fs := c.flags("share")
	origin := fs.String("origin", defaultOrigin, "origin of the share URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	data, err := linkArg(fs, 0)
	if err != nil {
		return err
	}
	trip, err := codec.Decode(data)
	if err != nil {
		return err
	}
	return c.printLink(*origin, trip)
}

// export prints the schedule of the trip in LINK as a flat table.
func (c *cli) export(args []string) error {
	fs := c.flags("export")
	name := fs.String("format", "json", "json, csv or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	format, err := export.ParseFormat(*name)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	data, err := linkArg(fs, 0)
	if err != nil {
		return err
	}
	trip, err := codec.Decode(data)
	if err != nil {
		return err
	}
	return export.Write(c.stdout, format, service.ExportSchedule(trip))
}

func (c *cli) printLink(origin string, trip domain.Trip) error {
	data, err := codec.Encode(trip)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, bridge.ShareURL(origin, trip))
	fmt.Fprintf(c.stderr, "link data is %s\n", humanize.Bytes(uint64(len(data))))
	return nil
}

// readInput returns the contents of path, or of stdin when path is "" or "-".
func (c *cli) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(c.stdin)
	}
	return os.ReadFile(path)
}

// linkArg returns the encoded data named by positional argument i, which may
// be bare data or a URL carrying it.
func linkArg(fs *flag.FlagSet, i int) (string, error) {
	link := fs.Arg(i)
	if link == "" {
		return "", fmt.Errorf("%w: missing LINK", errUsage)
	}
	if !isURL(link) {
		return link, nil
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errUsage, err)
	}
	data := u.Query().Get(bridge.Param)
	if data == "" {
		return "", fmt.Errorf("%w: %s has no %s parameter", domain.ErrDecode, link, bridge.Param)
	}
	return data, nil
}

func isURL(s string) bool {
	return strings.Contains(s, "://")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
