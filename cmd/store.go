package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bnema/vehicle-assistant-cli/internal/adapters/state"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

func newStoreCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Move app state in and out of the local store",
	}

	cmd.AddCommand(newStoreImportCmd(app), newStoreExportCmd(app))

	return cmd
}

// knownKeys lists every key the assistant reads, in a stable order.
func knownKeys() []string {
	keys := []string{state.KeyScreenStates, state.KeyTabData, state.KeyAppHistory}
	for _, screen := range domain.Screens {
		if key, ok := state.JournalKey(screen); ok {
			keys = append(keys, key)
		}
	}

	return keys
}

func newStoreImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Load a JSON object of key/value pairs exported from the mobile app",
		Long:  "String values are stored verbatim; any other JSON value is stored encoded.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			var entries map[string]json.RawMessage
			if err := json.Unmarshal(content, &entries); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			keys := make([]string, 0, len(entries))
			for key := range entries {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				value := string(entries[key])
				var s string
				if err := json.Unmarshal(entries[key], &s); err == nil {
					value = s
				}
				if err := app.blobs.Put(cmd.Context(), key, value); err != nil {
					return fmt.Errorf("import %s: %w", key, err)
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d key(s)\n", len(keys))
			return err
		},
	}
}

func newStoreExportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the stored app state as a JSON object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := map[string]json.RawMessage{}
			for _, key := range knownKeys() {
				value, err := app.blobs.Get(cmd.Context(), key)
				if errors.Is(err, domain.ErrKeyNotFound) {
					continue
				}
				if err != nil {
					return fmt.Errorf("export %s: %w", key, err)
				}

				if json.Valid([]byte(value)) {
					out[key] = json.RawMessage(value)
					continue
				}
				encoded, err := json.Marshal(value)
				if err != nil {
					return fmt.Errorf("export %s: %w", key, err)
				}
				out[key] = encoded
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
