// Copyright 2023 The Shadowcall Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/google/subcommands"

	"shadowcall.dev/shadowcall/pkg/hooks"
)

// Rules implements subcommands.Command for the "rules" command.
type Rules struct {
	output string
	arch   string
}

// archAll selects every built-in table.
const archAll = "all"

// RuleDoc describes one registered hook rule for output.
type RuleDoc struct {
	Num  uintptr `json:"num"`
	Name string  `json:"name"`
	Pre  bool    `json:"pre"`
	Post bool    `json:"post"`
}

// CoverageInfo maps arch name to its registered rules.
type CoverageInfo map[string][]RuleDoc

type outputFunc func(io.Writer, CoverageInfo) error

var outputMap = map[string]outputFunc{
	"table": outputTable,
	"csv":   outputCSV,
	"json":  outputJSON,
}

// Name implements subcommands.Command.Name.
func (*Rules) Name() string {
	return "rules"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Rules) Synopsis() string {
	return "Print hook-table coverage for syscalls."
}

// Usage implements subcommands.Command.Usage.
func (*Rules) Usage() string {
	return `rules [options] - Print hook-table coverage for syscalls.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Rules) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.output, "o", "table", "Output format (table, csv, json).")
	f.StringVar(&r.arch, "arch", archAll, "The CPU architecture (e.g. amd64).")
}

// Execute implements subcommands.Command.Execute.
func (r *Rules) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	out, ok := outputMap[r.output]
	if !ok {
		fatalf("Unsupported output format %q", r.output)
	}

	info, err := getCoverageInfo(r.arch)
	if err != nil {
		fatalf("%v", err)
	}

	if err := out(os.Stdout, info); err != nil {
		fatalf("Error writing output: %v", err)
	}

	return subcommands.ExitSuccess
}

// getCoverageInfo collects the rules of the requested architectures.
// Supports the special name 'all'.
func getCoverageInfo(archName string) (CoverageInfo, error) {
	info := make(CoverageInfo)
	tables := hooks.Tables()
	if archName != archAll {
		t, ok := tables[archName]
		if !ok {
			return nil, fmt.Errorf("hook table for %s not found", archName)
		}
		tables = map[string]*hooks.Table{archName: t}
	}
	for name, t := range tables {
		info[name] = tableDocs(t)
	}
	return info, nil
}

func tableDocs(t *hooks.Table) []RuleDoc {
	var docs []RuleDoc
	for num, rule := range t.Rules() {
		docs = append(docs, RuleDoc{
			Num:  uintptr(num),
			Name: rule.Name,
			Pre:  rule.Pre != nil,
			Post: rule.Post != nil,
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Num < docs[j].Num })
	return docs
}

// outputTable writes the coverage in tabular format.
func outputTable(w io.Writer, info CoverageInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, archName := range sortedArchs(info) {
		fmt.Fprintf(w, "%s:\n\n", archName)
		if _, err := fmt.Fprintf(tw, "NUM\tNAME\tPRE\tPOST\n"); err != nil {
			return err
		}
		for _, doc := range info[archName] {
			if _, err := fmt.Fprintf(tw, "%d\t%s\t%t\t%t\n", doc.Num, doc.Name, doc.Pre, doc.Post); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "\n")
	}
	return nil
}

// outputCSV writes the coverage in CSV format.
func outputCSV(w io.Writer, info CoverageInfo) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"arch", "num", "name", "pre", "post"}); err != nil {
		return err
	}
	for _, archName := range sortedArchs(info) {
		for _, doc := range info[archName] {
			record := []string{
				archName,
				strconv.FormatUint(uint64(doc.Num), 10),
				doc.Name,
				strconv.FormatBool(doc.Pre),
				strconv.FormatBool(doc.Post),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// outputJSON writes the coverage in JSON format.
func outputJSON(w io.Writer, info CoverageInfo) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(info)
}

func sortedArchs(info CoverageInfo) []string {
	archs := make([]string, 0, len(info))
	for name := range info {
		archs = append(archs, name)
	}
	sort.Strings(archs)
	return archs
}
