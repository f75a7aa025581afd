package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goran-ethernal/ChainRelay/pkg/config"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	banner  = `
╔═══════════════════════════════════════════╗
║            ChainRelay v%s              ║
║   Contract event relay to a data store    ║
╚═══════════════════════════════════════════╝
`
)

var (
	configPath string
	envFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relay <factory-address>",
	Short: "ChainRelay - contract event relay",
	Long: `ChainRelay watches a coin machine factory, every whitelist and sale it
deploys, and mirrors their events into a GraphQL store.

The chain endpoint is read from RPC_URL (default http://localhost:8545).
STORE_URL and STORE_API_KEY override the store settings. Variables may also
be placed in a .env file.`,
	Version:      version,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runRelay,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := &jsonschema.Reflector{FieldNameTag: "json"}
		schema := reflector.Reflect(&config.Config{})

		out, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ChainRelay v%s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file (.yaml, .json or .toml)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "path to an optional dotenv file")
	rootCmd.AddCommand(schemaCmd, versionCmd)
}
