// leafcare identifies house plants, analyses their care needs and
// diagnoses symptoms from a short questionnaire.
//
// Usage:
//
//	leafcare identify Ficus
//	leafcare image --file monstera_01.jpg --description "grandes feuilles perforées"
//	leafcare diagnose --plant Monstera --watering today --symptom yellow_leaves
//	leafcare diagnose -f questionnaire.yaml
//	leafcare catalog --markdown
//	leafcare history Monstera
//	leafcare serve
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leafcare/internal/config"
	"leafcare/internal/logging"
	"leafcare/internal/wiring"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	dbPath     string
	catalog    string
	logLevel   string
	logFormat  string
	seed       uint64
	noStore    bool
}

// cfg is resolved once per invocation by PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "leafcare",
	Short: "Plant identification, care analysis and symptom diagnosis",
	Long: `leafcare matches a plant name or photo metadata against a catalog of
house plants, builds care recommendations, and diagnoses problems from a
symptom questionnaire. Results are recorded in a local SQLite history
unless --no-store is given.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	PersistentPreRunE: resolveConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", config.DefaultPath, "Config file path (missing file means defaults)")
	pf.StringVar(&rootFlags.dbPath, "db", "", "Store DB path (default from config: .leafcare/leafcare.db)")
	pf.StringVar(&rootFlags.catalog, "catalog", "", "Catalog YAML path (default: embedded catalog)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json")
	pf.Uint64Var(&rootFlags.seed, "seed", 0, "Seed for repeatable random choices (0 = random)")
	pf.BoolVar(&rootFlags.noStore, "no-store", false, "Do not record results")

	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

// resolveConfig loads the config file, applies flag overrides and
// configures logging.
func resolveConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(rootFlags.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		loaded.DB = rootFlags.dbPath
	}
	if flags.Changed("catalog") {
		loaded.Catalog = rootFlags.catalog
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = rootFlags.logLevel
	}
	if flags.Changed("log-format") {
		loaded.Log.Format = rootFlags.logFormat
	}
	if flags.Changed("seed") {
		loaded.Seed = rootFlags.seed
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(loaded.Log.Level)
	if err != nil {
		return err
	}
	logging.Init(level, loaded.Log.Format, cmd.ErrOrStderr())
	cfg = loaded
	return nil
}

// openApp builds the advisor for one command. storeRequired commands fail
// under --no-store instead of silently skipping persistence.
func openApp(storeRequired bool) (*wiring.App, error) {
	if storeRequired && rootFlags.noStore {
		return nil, fmt.Errorf("this command reads the history store; drop --no-store")
	}
	return wiring.Open(cfg, rootFlags.noStore)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
