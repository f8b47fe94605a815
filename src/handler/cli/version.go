package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"doc-quality/src/model"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "doc-quality %s\n", h.cfg.Agent.Version)
		},
	}
}

var ruleDescriptions = map[model.DeclarationKind]string{
	model.KindInterface:   "interface <Name>",
	model.KindService:     "@Injectable, or exported class line containing \"Service\"",
	model.KindComponent:   "@Component, or exported class line containing \"Component\"",
	model.KindClass:       "class <Name>",
	model.KindEnum:        "enum <Name>",
	model.KindConstructor: "constructor(",
	model.KindMethod:      "name(...) {",
	model.KindProperty:    "name: type;",
}

func (h *Handler) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List declaration classification rules and their weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRIORITY\tKIND\tWEIGHT\tMATCHES")
			for i, kind := range model.AllKinds {
				fmt.Fprintf(w, "%d\t%s\t%g\t%s\n", i+1, kind,
					h.cfg.Elements.WeightFor(string(kind)), ruleDescriptions[kind])
			}
			fmt.Fprintf(w, "-\tother\t%g\t\n", h.cfg.Elements.DefaultWeight)
			return w.Flush()
		},
	}
}
