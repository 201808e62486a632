package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"doroga/internal/theme"
	"doroga/internal/tokens"
)

type outputOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the persisted mode and the scheme it resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), "show theme", flags)
			if err != nil {
				return err
			}
			defer s.close()
			return renderStatus(cmd, s.controller.Status(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the status as JSON")
	return cmd
}

func newSetCmd(flags *rootFlags) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Persist and apply a theme mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: modeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseModeLoose(args[0])
			if err != nil {
				return newCommandError("set theme", fmt.Sprintf("parsing mode %q", args[0]), err, "Use one of: "+strings.Join(modeNames(), ", ")+".")
			}
			s, err := openSession(cmd.Context(), "set theme", flags)
			if err != nil {
				return err
			}
			defer s.close()
			s.controller.SetTheme(mode)
			return renderStatus(cmd, s.controller.Status(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the new status as JSON")
	return cmd
}

func newToggleCmd(flags *rootFlags) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Advance the mode through light, dark and system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), "toggle theme", flags)
			if err != nil {
				return err
			}
			defer s.close()
			s.controller.ToggleTheme()
			return renderStatus(cmd, s.controller.Status(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the new status as JSON")
	return cmd
}

func newColorCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color <variant> [shade]",
		Short: "Resolve a palette color under the current scheme",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := tokens.ColorVariant(strings.ToLower(strings.TrimSpace(args[0])))
			if !variant.Valid() {
				return newCommandError("resolve color", fmt.Sprintf("reading variant %q", args[0]), errors.New("unknown color variant"), "Use one of: "+joinVariants()+".")
			}
			shade := tokens.DefaultShade
			if len(args) == 2 {
				n, err := strconv.Atoi(strings.TrimSpace(args[1]))
				if err != nil || !tokens.ColorShade(n).Valid() {
					return newCommandError("resolve color", fmt.Sprintf("reading shade %q", args[1]), errors.New("unknown color shade"), "Use a shade between 50 and 950.")
				}
				shade = tokens.ColorShade(n)
			}

			s, err := openSession(cmd.Context(), "resolve color", flags)
			if err != nil {
				return err
			}
			defer s.close()

			value := s.controller.Color(variant, shade)
			r := newRenderer(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", tokens.ColorVariable(variant, shade), valueOrFallback(value, "(unset)"), r.swatch(value))
			return nil
		},
	}
	return cmd
}

func newStylesCmd(flags *rootFlags) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "styles <variant|size>",
		Short: "Print the component style record for a variant or a size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(strings.TrimSpace(args[0]))
			variant := tokens.ColorVariant(name)
			size := tokens.ComponentSize(name)
			if !variant.Valid() && !size.Valid() {
				return newCommandError("resolve styles", fmt.Sprintf("reading %q", args[0]), errors.New("neither a color variant nor a component size"), "Use a variant ("+joinVariants()+") or a size (sm, md, lg).")
			}

			s, err := openSession(cmd.Context(), "resolve styles", flags)
			if err != nil {
				return err
			}
			defer s.close()

			resolver := theme.NewStyleResolver(s.controller)
			if variant.Valid() {
				return renderRecord(cmd.OutOrStdout(), opts, resolver.VariantStyles(variant), resolver.VariantStyles(variant).Declarations())
			}
			record := resolver.SizeStyles(size)
			return renderRecord(cmd.OutOrStdout(), opts, record, resolveVariables(record.Declarations(), s.controller.CSSVariable))
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the record as JSON")
	return cmd
}

func renderStatus(cmd *cobra.Command, status theme.Status, opts *outputOptions) error {
	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return writeJSON(out, status)
	}

	r := newRenderer(out)
	scheme := "light"
	if status.Dark {
		scheme = "dark"
	}
	fmt.Fprintf(out, "Mode:   %s\n", r.mode(status))
	fmt.Fprintf(out, "Scheme: %s\n", scheme)
	fmt.Fprintf(out, "Icon:   %s\n", status.Icon)
	fmt.Fprintf(out, "Class:  %s\n", valueOrFallback(status.RootClass, "(none)"))
	return nil
}

func renderRecord(out io.Writer, opts *outputOptions, record any, declarations string) error {
	if opts.jsonOutput {
		return writeJSON(out, record)
	}
	_, err := fmt.Fprintln(out, declarations)
	return err
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// resolveVariables substitutes var(--name) references with their values.
// Unknown names are left as written.
func resolveVariables(value string, lookup func(name string) string) string {
	var b strings.Builder
	for {
		start := strings.Index(value, "var(")
		if start < 0 {
			b.WriteString(value)
			return b.String()
		}
		end := strings.IndexByte(value[start:], ')')
		if end < 0 {
			b.WriteString(value)
			return b.String()
		}
		end += start

		b.WriteString(value[:start])
		name := strings.TrimSpace(value[start+len("var(") : end])
		if resolved := lookup(name); resolved != "" {
			b.WriteString(resolved)
		} else {
			b.WriteString(value[start : end+1])
		}
		value = value[end+1:]
	}
}

func modeNames() []string {
	modes := theme.Modes()
	names := make([]string, len(modes))
	for i, mode := range modes {
		names[i] = string(mode)
	}
	return names
}

func joinVariants() string {
	variants := tokens.ColorVariants()
	names := make([]string, len(variants))
	for i, variant := range variants {
		names[i] = string(variant)
	}
	return strings.Join(names, ", ")
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
