package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/ops"
)

func newCallCommand(flags *rootFlags) *cobra.Command {
	var rawParams []string

	cmd := &cobra.Command{
		Use:   "call <operation>",
		Short: "Execute one API operation",
		Long: `Execute one API operation and print its parsed result as JSON.

Operations are addressed by their qualified name (DataCustomer30.getCustomerObject)
or by a bare name when it is unambiguous. Parameters are passed as repeated
--param name=value flags; values that look like integers or booleans are sent
typed, everything else as a string.`,
		Example: `  plunetc call getCustomerObject --param customerID=42
  plunetc call DataOrder30.update --param orderID=7 --param comment= --param enableNullOrEmptyValues=true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := ops.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown or ambiguous operation %q (see plunetc ops)", args[0])
			}

			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			conn, err := flags.connect(cmd)
			if err != nil {
				return err
			}
			defer conn.logout(cmd.Context())

			result, err := conn.executor.Execute(cmd.Context(), op, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "operation parameter as name=value (repeatable)")
	return cmd
}

// parseParams converts repeated name=value flags into typed parameters.
func parseParams(raw []string) (executor.Params, error) {
	params := make(executor.Params, len(raw))
	for _, kv := range raw {
		name, value, found := strings.Cut(kv, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --param %q, want name=value", kv)
		}
		params[name] = coerceValue(value)
	}
	return params, nil
}

// coerceValue infers the parameter type from its textual form. An
// empty value stays an empty string so the null-overwrite flag can
// clear fields.
func coerceValue(s string) any {
	if s == "" {
		return ""
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
