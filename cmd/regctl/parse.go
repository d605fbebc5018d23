package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/reg"
	"github.com/joshuapare/regkit/pkg/types"
)

var parseEncoding string

func init() {
	cmd := newParseCmd()
	cmd.Flags().StringVar(&parseEncoding, "encoding", "", "Input encoding when the file has no BOM (auto, utf-8, utf-16le, windows-1252)")
	rootCmd.AddCommand(cmd)
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <reg-file>",
		Short: "Show the sections and values of a .reg file",
		Long: `The parse command reads a .reg file and prints every section and value
it sets, in file order. Values with an unrecognized type tag are listed as
anomalies.

Example:
  regctl parse settings.reg
  regctl parse settings.reg --json
  regctl parse legacy.reg --encoding windows-1252`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args)
		},
	}
}

type jsonValue struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Type string `json:"type"`
	Data string `json:"data"`
}

type jsonSection struct {
	Path   string      `json:"path"`
	Values []jsonValue `json:"values"`
}

type jsonDocument struct {
	Sections  []jsonSection `json:"sections"`
	Anomalies []ast.Anomaly `json:"anomalies,omitempty"`
}

func runParse(args []string) error {
	path := args[0]
	printVerbose("Parsing: %s\n", path)

	doc, err := reg.ParseFile(path, parseOptions(parseEncoding))
	if err != nil {
		return err
	}

	if jsonOut {
		out := jsonDocument{Sections: []jsonSection{}, Anomalies: doc.Anomalies}
		for _, s := range doc.Sections {
			js := jsonSection{Path: s.Path, Values: []jsonValue{}}
			for _, e := range s.Entries {
				js.Values = append(js.Values, jsonValue{
					Name: e.DisplayName(),
					Kind: e.Kind().String(),
					Type: regType(e.Value).String(),
					Data: displayData(e.Value),
				})
			}
			out.Sections = append(out.Sections, js)
		}
		return printJSON(out)
	}

	for _, s := range doc.Sections {
		printInfo("[%s]\n", s.Path)
		for _, e := range s.Entries {
			printInfo("  %s (%s) = %s\n", e.DisplayName(), regType(e.Value), displayData(e.Value))
		}
	}
	for _, a := range doc.Anomalies {
		printInfo("line %d: unknown type tag %q on %s\\%s, kept as string\n", a.Line, a.Tag, a.Section, a.Name)
	}
	printVerbose("%d sections, %d values\n", len(doc.Sections), doc.Len())
	return nil
}

// regType is the registry type a value is stored as.
func regType(v types.Value) types.RegType {
	if v.Kind == types.Binary {
		return v.HexType
	}
	return v.Kind.RegType()
}

// displayData renders a value for humans: multi-strings comma separated,
// numbers in decimal, string-typed hex decoded.
func displayData(v types.Value) string {
	if ss, ok := v.Strings(); ok {
		return strings.Join(ss, ", ")
	}
	if v.Kind == types.Dword || v.Kind == types.Qword {
		if n, ok := v.Uint64(); ok {
			return fmt.Sprintf("%d (0x%s)", n, v.Text)
		}
	}
	return v.Normalized()
}
