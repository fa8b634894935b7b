// Command imstr renders an image as text art.
//
//	imstr [options] <image>
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/wbrown/imstr"
	"github.com/wbrown/imstr/imageutil"
	"github.com/wbrown/imstr/output"
)

// Options are the command line flags. -h belongs to --height, so the
// parser's built-in help flag is not used.
type Options struct {
	Help     bool    `long:"help" description:"Show this screen."`
	Version  bool    `short:"v" long:"version" description:"Show version."`
	Output   string  `short:"o" long:"output" value-name:"FILENAME" description:"Output target."`
	Encoding string  `short:"e" long:"encoding" value-name:"ENCODING" description:"Output target encoding."`
	Scale    float64 `short:"s" long:"scale" value-name:"SCALE" default:"1" description:"Scale output."`
	Width    *int    `short:"w" long:"width" value-name:"WIDTH" description:"Set width of output."`
	Height   *int    `short:"h" long:"height" value-name:"HEIGHT" description:"Set height of output."`
	Density  string  `short:"d" long:"density" value-name:"DENSITY" default:".:-i|=+%O#@" description:"Set density string."`
	Invert   bool    `short:"i" long:"invert" description:"Invert density string."`
	Backend  string  `short:"b" long:"backend" value-name:"NAME" default:"draw" description:"Resampling backend."`
	PNG      bool    `long:"png" description:"Draw the output into a PNG image (needs --output)."`
	Verbose  bool    `long:"verbose" description:"Log pipeline stages to standard error."`

	Args struct {
		Image string `positional-arg-name:"image"`
	} `positional-args:"yes"`
}

type backend struct {
	decoder   imstr.Decoder
	resampler imstr.Resampler
}

// backends maps --backend names to implementations. Build tags may add
// more.
var backends = map[string]backend{
	"draw": {decoder: imageutil.Decoder{}, resampler: imageutil.BoxResampler{}},
	"gift": {decoder: imageutil.Decoder{}, resampler: imageutil.GiftResampler{}},
	"nfnt": {decoder: imageutil.Decoder{}, resampler: imageutil.NfntResampler{}},
}

func backendNames() string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	parser.Name = "imstr"
	parser.Usage = "[options]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "imstr: %v\n", err)
		return 1
	}

	if opts.Help {
		parser.WriteHelp(stdout)
		return 0
	}
	if opts.Version {
		fmt.Fprintf(stdout, "imstr %s\n", imstr.Version)
		return 0
	}

	if err := convert(opts, rest, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "imstr: %v\n", err)
		return 1
	}
	return 0
}

func convert(opts Options, rest []string, stdout, stderr io.Writer) error {
	if opts.Args.Image == "" {
		return errors.New("missing <image> argument, see --help")
	}
	if len(rest) > 0 {
		return errors.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	b, ok := backends[opts.Backend]
	if !ok {
		return errors.Errorf("unknown backend %q (available: %s)", opts.Backend, backendNames())
	}

	logger := log.New(io.Discard, "", 0)
	if opts.Verbose {
		logger = log.New(stderr, "imstr: ", 0)
	}

	cfgOpts := []imstr.Option{
		imstr.WithScale(opts.Scale),
		imstr.WithDensity(opts.Density),
		imstr.WithInvert(opts.Invert),
	}
	if opts.Width != nil {
		cfgOpts = append(cfgOpts, imstr.WithWidth(*opts.Width))
	}
	if opts.Height != nil {
		cfgOpts = append(cfgOpts, imstr.WithHeight(*opts.Height))
	}
	cfg, err := imstr.NewConfig(cfgOpts...)
	if err != nil {
		return err
	}

	// Resolve the sink first so a bad encoding fails before any work.
	sink, err := output.Open(opts.Output, opts.Encoding, opts.PNG, stdout)
	if err != nil {
		return err
	}

	logger.Printf("using %s backend", opts.Backend)
	converter := imstr.NewConverter(
		imstr.WithDecoder(b.decoder),
		imstr.WithResampler(b.resampler),
		imstr.WithLogger(logger),
	)
	text, err := converter.ConvertFile(opts.Args.Image, cfg)
	if err != nil {
		return err
	}
	return sink.Write(text)
}
