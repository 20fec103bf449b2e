package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fystack/etherscan-client/internal/config"
	"github.com/fystack/etherscan-client/pkg/common/logger"
	"github.com/fystack/etherscan-client/pkg/common/units"
	"github.com/fystack/etherscan-client/pkg/etherscan"
)

var (
	flagConfig  string
	flagAPIKey  string
	flagNetwork string
	flagBaseURL string
	flagUnit    string
	flagDebug   bool

	flagStartBlock uint64
	flagEndBlock   uint64
	flagSort       string
)

func main() {
	root := &cobra.Command{
		Use:          "etherscan",
		Short:        "Query the Etherscan block-explorer API",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to yaml config file")
	root.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Etherscan API key (overrides config and env)")
	root.PersistentFlags().StringVar(&flagNetwork, "network", "", "Target network (mainnet, sepolia, holesky)")
	root.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Explicit API base URL (overrides network)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logs")

	root.AddCommand(
		balanceCmd(),
		txlistCmd(),
		abiCmd(),
		sourceCmd(),
		blockNumberCmd(),
		gasOracleCmd(),
		supplyCmd(),
		priceCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <address>...",
		Short: "Ether balance of one or more addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			unit, err := units.Parse(flagUnit)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				balance, err := client.GetBalance(cmd.Context(), args[0], unit)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s\n", balance, unit)
				return nil
			}

			balances, err := client.GetMultiBalance(cmd.Context(), args, unit)
			if err != nil {
				return err
			}
			for _, b := range balances {
				fmt.Printf("%s\t%s %s\n", b.Account, b.Balance, unit)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagUnit, "unit", "ether", "Output denomination (wei..ether)")
	return cmd
}

func txlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txlist <address>",
		Short: "Normal transactions of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			txs, err := client.GetTransactions(
				cmd.Context(), args[0], flagStartBlock, flagEndBlock, etherscan.Sort(flagSort))
			if err != nil {
				return err
			}
			return printJSON(txs)
		},
	}
	cmd.Flags().Uint64Var(&flagStartBlock, "start-block", 0, "First block to include")
	cmd.Flags().Uint64Var(&flagEndBlock, "end-block", 0, "Last block to include (0 = latest)")
	cmd.Flags().StringVar(&flagSort, "sort", "asc", "Sort order (asc or desc)")
	return cmd
}

func abiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abi <address>",
		Short: "ABI of a verified contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			abi, err := client.GetContractABI(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(abi)
		},
	}
}

func sourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "source <address>",
		Short: "Verified source code of a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			sources, err := client.GetContractSourceCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(sources)
		},
	}
}

func blockNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block-number",
		Short: "Number of the most recent block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			number, err := client.BlockNumber(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(number)
			return nil
		},
	}
}

func gasOracleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gas-oracle",
		Short: "Current safe, proposed and fast gas prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			oracle, err := client.GetGasOracle(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(oracle)
		},
	}
}

func supplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply",
		Short: "Total ether supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			unit, err := units.Parse(flagUnit)
			if err != nil {
				return err
			}
			supply, err := client.GetEtherSupply(cmd.Context(), unit)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", supply, unit)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagUnit, "unit", "ether", "Output denomination (wei..ether)")
	return cmd
}

func priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price",
		Short: "Latest ether price in BTC and USD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			price, err := client.GetEtherPrice(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(price)
		},
	}
}

// newClient assembles a client from config file, environment and flags.
// Flags win over the file, the file wins over the environment.
func newClient() (*etherscan.Client, error) {
	// A missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagNetwork != "" {
		cfg.Network = flagNetwork
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}

	if cfg.APIKey == "" {
		return nil, errors.New("an API key is required (--api-key, config file, or " + config.APIKeyEnv + ")")
	}

	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})

	opts := []etherscan.Option{
		etherscan.WithTimeout(time.Duration(cfg.Timeout)),
		etherscan.WithLogger(logger.L()),
	}
	if cfg.Network != "" {
		opts = append(opts, etherscan.WithNetwork(etherscan.Network(cfg.Network)))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, etherscan.WithBaseURL(cfg.BaseURL))
	}
	return etherscan.New(cfg.APIKey, opts...), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
