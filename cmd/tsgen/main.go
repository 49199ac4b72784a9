package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/semohr/tsgen"
	"github.com/semohr/tsgen/descriptor"
	"github.com/semohr/tsgen/manifest"
	"github.com/semohr/tsgen/provider"
	"github.com/semohr/tsgen/sink"
	"github.com/semohr/tsgen/typescript"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate TypeScript declarations from a manifest or Go package."`
	Check   CheckCmd   `cmd:"" help:"Validate a manifest or Go package without generating files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

//go:embed VERSION
var embeddedVersion string

// Version returns the module version when installed via `go install`, and
// the embedded development version otherwise.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok &&
		info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "v" + strings.TrimSpace(embeddedVersion)
}

// renderFlags holds the configuration flags shared by gen and check. The
// numeric flags are pointers so an unset flag can be told apart from an
// explicit value; defaults come from the config layer, not from kong.
type renderFlags struct {
	Config          string `help:"YAML config file with rendering overrides." type:"existingfile"`
	NoneAsUndefined bool   `help:"Render the absence type as undefined instead of null."`
	AnyAsAny        bool   `help:"Map the open type to any instead of unknown."`
	NoExport        bool   `help:"Omit the export keyword from declarations."`
	IndentSpaces    bool   `help:"Indent with spaces instead of tabs."`
	IndentSize      *int   `help:"Spaces per indent level (with --indent-spaces, default 4)."`
	CommentWidth    *int   `help:"Maximum rendered comment line length (default 80)."`
}

// config merges the defaults, the config file, and the command line flags,
// in that order of precedence. Flags only override what was actually
// passed.
func (f *renderFlags) config() (*typescript.Config, error) {
	cfg := typescript.DefaultConfig()

	if f.Config != "" {
		data, err := os.ReadFile(f.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		var o typescript.Override
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("invalid config file: %w", err)
		}
		cfg = cfg.With(o)
	}

	if f.NoneAsUndefined {
		cfg.NoneAsNull = false
	}
	if f.AnyAsAny {
		cfg.AnyAsUnknown = false
	}
	if f.NoExport {
		cfg.ExportInterfaces = false
	}
	if f.IndentSpaces {
		cfg.IndentWithTabs = false
	}
	if f.IndentSize != nil {
		cfg.IndentSize = *f.IndentSize
	}
	if f.CommentWidth != nil {
		cfg.CommentLineLength = *f.CommentWidth
	}
	return cfg, nil
}

type GenCmd struct {
	renderFlags

	Manifest  string `arg:"" optional:"" help:"Manifest file (YAML or JSON) declaring the types."`
	Package   string `help:"Go package to scan instead of a manifest." short:"p"`
	Out       string `help:"Output file. Defaults to stdout." short:"o"`
	NoClobber bool   `help:"Refuse to overwrite an existing output file."`
}

func (c *GenCmd) Run() error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	descriptors, warnings, err := loadDescriptors(c.Manifest, c.Package)
	if err != nil {
		return err
	}

	b := tsgen.NewBuilder(cfg)
	for _, d := range descriptors {
		if err := b.Add(d); err != nil {
			return err
		}
	}
	printWarnings(append(warnings, b.Warnings()...))

	text, err := b.ToText()
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Print(text)
		return nil
	}

	dir, file := filepath.Split(c.Out)
	if dir == "" {
		dir = "."
	}
	s := sink.NewFilesystemSink(dir)
	s.Overwrite = !c.NoClobber
	return s.WriteFile(file, []byte(text))
}

type CheckCmd struct {
	renderFlags

	Manifest string `arg:"" optional:"" help:"Manifest file (YAML or JSON) declaring the types."`
	Package  string `help:"Go package to scan instead of a manifest." short:"p"`
}

func (c *CheckCmd) Run() error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	descriptors, warnings, err := loadDescriptors(c.Manifest, c.Package)
	if err != nil {
		return err
	}

	b := tsgen.NewBuilder(cfg)
	for _, d := range descriptors {
		if err := b.Add(d); err != nil {
			return err
		}
	}
	if _, err := b.ToText(); err != nil {
		return err
	}
	printWarnings(append(warnings, b.Warnings()...))

	fmt.Fprintf(os.Stderr, "ok: %d declarations\n", b.Len())
	return nil
}

// loadDescriptors resolves the type source: a manifest file or a Go
// package, exactly one of which must be given.
func loadDescriptors(manifestPath, pkg string) ([]descriptor.Descriptor, []descriptor.Warning, error) {
	switch {
	case manifestPath != "" && pkg != "":
		return nil, nil, fmt.Errorf("provide a manifest or --package, not both")
	case manifestPath != "":
		f, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, nil, err
		}
		descriptors, err := f.Descriptors()
		return descriptors, nil, err
	case pkg != "":
		result, err := provider.FromPackage(pkg)
		if err != nil {
			return nil, nil, err
		}
		return result.Types, result.Warnings, nil
	default:
		return nil, nil, fmt.Errorf("provide a manifest file or --package")
	}
}

func printWarnings(warnings []descriptor.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s (%s)\n", w.TypeName, w.Message, w.Code)
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("tsgen"),
		kong.Description("Generate TypeScript type declarations from type descriptors."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
