package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/vegasq/jsonquery/document"
	"github.com/vegasq/jsonquery/internal/config"
	"github.com/vegasq/jsonquery/internal/logging"
	"github.com/vegasq/jsonquery/output"
	"github.com/vegasq/jsonquery/query"
	"github.com/vegasq/jsonquery/reader"
	"github.com/vegasq/jsonquery/result"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// paramFlags collects repeated -p key=value flags
type paramFlags query.Params

func (p paramFlags) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

func (p paramFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("parameter must be key=value, got %q", value)
	}
	p[strings.TrimPrefix(key, ":")] = val
	return nil
}

type options struct {
	query      string
	source     string
	params     paramFlags
	format     string
	outFile    string
	limit      int
	keys       int
	keysMatch  string
	schema     bool
	configFile string
	logLevel   string
	logFormat  string
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("jsonquery", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts.params = paramFlags{}
	fs.StringVar(&opts.query, "q", "", "Query (e.g., \"select id, detail.service from data where id = :id\")")
	fs.StringVar(&opts.source, "name", "", "Name the query selects FROM (default from config: data)")
	fs.Var(opts.params, "p", "Query parameter as key=value (repeatable)")
	fs.StringVar(&opts.format, "f", "", "Output format: jsonl, json, csv, table, parquet (default jsonl)")
	fs.StringVar(&opts.outFile, "o", "", "Write output to file instead of stdout")
	fs.IntVar(&opts.limit, "limit", 0, "Limit number of rows (0 = unlimited)")
	fs.IntVar(&opts.keys, "keys", 0, "List document keys down to depth N instead of querying")
	fs.StringVar(&opts.keysMatch, "keys-match", "", "Only list keys matching a wildcard pattern (e.g., \"detail.*\")")
	fs.BoolVar(&opts.schema, "schema", false, "Use the schema of a parquet file as the document")
	fs.StringVar(&opts.configFile, "config", "", "Config file (default ./jsonquery.{yaml,json,toml})")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error, none")
	fs.StringVar(&opts.logFormat, "log-format", "", "Log format: logfmt, json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jsonquery [options] [file.json|file.parquet|glob]\n\n")
		fmt.Fprintf(stderr, "A tool to query JSON and Parquet documents. Reads stdin when no file is given.\n\n")
		fmt.Fprintf(stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  jsonquery -name HEALTH -q \"select id, detail.service from HEALTH\" events.json\n")
		fmt.Fprintf(stderr, "  jsonquery -q \"select id from data where code = :code\" -p code=503 events.json\n")
		fmt.Fprintf(stderr, "  jsonquery -keys 2 -keys-match \"detail.*\" events.json\n")
		fmt.Fprintf(stderr, "  cat events.json | jsonquery -f table -q \"select * from data\"\n")
		fmt.Fprintf(stderr, "  jsonquery -schema -q \"select path from data where type = STRING\" data.parquet\n")
	}
	return fs
}

// applyConfig fills every option the user did not set on the command line
func applyConfig(fs *flag.FlagSet, opts *options, cfg config.Config) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["name"] {
		opts.source = cfg.Source
	}
	if !set["f"] {
		opts.format = cfg.Format
	}
	if !set["limit"] {
		opts.limit = cfg.Limit
	}
	if !set["log-level"] {
		opts.logLevel = cfg.LogLevel
	}
	if !set["log-format"] {
		opts.logFormat = cfg.LogFormat
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	applyConfig(fs, &opts, cfg)

	logger, err := logging.New(stderr, opts.logFormat, opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := validate(opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var filename string
	if fs.NArg() >= 1 {
		filename = fs.Arg(0)
	}

	doc, err := load(filename, opts.schema, stdin)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: file '%s' not found\n", filename)
			fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	level.Debug(logger).Log("msg", "loaded document", "file", filename, "records", len(doc.Records()))

	handler := query.NewHandlerFromDocument(opts.source, doc)

	if opts.keys != 0 || opts.keysMatch != "" {
		return printKeys(handler, opts, stdout, logger)
	}

	rs, err := execute(handler, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, query.ErrInvalidQuery) {
			fmt.Fprintf(stderr, "\nQuery format: select <columns> from %s [where <condition>]\n", handler.Source())
			fmt.Fprintf(stderr, "Example: select id, detail.service from %s where id = :id\n", handler.Source())
		}
		return 1
	}
	level.Info(logger).Log("msg", "query executed", "rows", rs.Size(), "columns", len(rs.Columns()))

	if opts.limit > 0 && rs.Size() > opts.limit {
		level.Debug(logger).Log("msg", "limiting rows", "rows", rs.Size(), "limit", opts.limit)
		rs = rs.Limit(opts.limit)
	}

	if err := write(rs, opts, stdout); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}
	return 0
}

func validate(opts options) error {
	if opts.limit < 0 {
		return fmt.Errorf("-limit must be non-negative, got %d", opts.limit)
	}
	if (opts.keys != 0 || opts.keysMatch != "") && opts.query != "" {
		return errors.New("-keys and -q cannot be used together")
	}
	if opts.format == output.FormatParquet && opts.outFile == "" {
		return errors.New("-f parquet requires -o <file>")
	}
	return nil
}

// load reads the document for filename, stdin when filename is empty. In
// schema mode the document lists the columns of a parquet file.
func load(filename string, schema bool, stdin io.Reader) (document.Value, error) {
	if schema {
		if filename == "" || !reader.IsParquet(filename) {
			return document.Value{}, errors.New("-schema requires a parquet file argument")
		}
		columns, err := reader.ExtractSchema(filename)
		if err != nil {
			return document.Value{}, err
		}
		return reader.SchemaDocument(columns), nil
	}

	if filename == "" {
		return reader.ReadJSON(stdin)
	}
	return reader.ReadMultipleFiles(filename)
}

// execute runs the -q query, or selects every top-level key when none is given
func execute(h *query.Handler, opts options) (*result.ResultSet, error) {
	if opts.query != "" {
		return h.Execute(opts.query, query.Params(opts.params))
	}
	columns := h.Keys(1)
	if opts.schema {
		columns = reader.SchemaColumns
	}
	return query.Assemble(h.Document().Records(), columns), nil
}

func printKeys(h *query.Handler, opts options, stdout io.Writer, logger log.Logger) int {
	depth := opts.keys
	if depth == 0 {
		depth = -1
	}

	keys := h.Keys(depth)
	if opts.keysMatch != "" {
		keys = h.KeysMatching(depth, opts.keysMatch)
	}
	level.Debug(logger).Log("msg", "listing keys", "depth", depth, "pattern", opts.keysMatch, "count", len(keys))

	for _, key := range keys {
		fmt.Fprintln(stdout, key)
	}
	return 0
}

func write(rs *result.ResultSet, opts options, stdout io.Writer) (err error) {
	w := stdout
	if opts.outFile != "" {
		file, cerr := os.Create(opts.outFile)
		if cerr != nil {
			return fmt.Errorf("failed to create output file: %w", cerr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = file
	}

	formatter, err := output.New(opts.format, w)
	if err != nil {
		return err
	}
	return formatter.Format(rs)
}
