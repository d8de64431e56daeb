package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/display"
	"github.com/funvibe/traitkit/pkg/kit"
	"github.com/funvibe/traitkit/pkg/kit/errs"
	"github.com/funvibe/traitkit/pkg/manifest"
	"github.com/funvibe/traitkit/pkg/trait"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [args]

Commands:
  doc [manifest]      render the traits declared in a manifest
  check [manifest]    validate a manifest and verify it against the
                      standard kit installation
  help                show this message

The manifest argument defaults to %s in the current directory.
`, os.Args[0], config.DefaultManifestName)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "doc":
		handleDoc(manifestArg(os.Args[2:]))
	case "check":
		handleCheck(manifestArg(os.Args[2:]))
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func manifestArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultManifestName
}

func loadManifest(path string) *manifest.Manifest {
	if !config.HasManifestExt(path) {
		fmt.Fprintf(os.Stderr, "Not a manifest file: %s\n", path)
		os.Exit(1)
	}
	m, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, errs.Format(err))
		os.Exit(1)
	}
	return m
}

func handleDoc(path string) {
	m := loadManifest(path)

	for i, t := range m.Traits {
		if i > 0 {
			fmt.Println()
		}
		// Styles stay outside the box: escape codes would skew the
		// border width math.
		var lines []string
		if t.Doc != "" {
			lines = append(lines, t.Doc, "")
		}
		table := display.Table([][2]string{
			{"methods", strings.Join(t.Methods, ", ")},
			{"domains", strings.Join(t.Domains, ", ")},
		})
		lines = append(lines, strings.Split(table, "\n")...)
		fmt.Println(display.Box(t.Name, lines))
	}
}

func handleCheck(path string) {
	m := loadManifest(path)

	r := trait.New()
	kit.Install(r)

	problems := manifest.Verify(m, r)
	if len(problems) == 0 {
		fmt.Printf("%s: %d traits, all registrations present\n",
			path, len(m.Traits))
		return
	}

	sort.Slice(problems, func(i, j int) bool {
		return problems[i].String() < problems[j].String()
	})
	for _, p := range problems {
		fmt.Fprintln(os.Stderr, display.Red.Apply("missing: ")+p.String())
	}
	os.Exit(1)
}
