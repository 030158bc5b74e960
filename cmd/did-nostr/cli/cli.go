// Package cli wires the did-nostr commands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nbd-wtf/go-nostr/nip19"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/did-nostr/pkg/config"
	"github.com/yourusername/did-nostr/pkg/did"
	"github.com/yourusername/did-nostr/pkg/keys"
)

// Flag names
const (
	ConfigFlagName     = "config"
	MnemonicFlagName   = "mnemonic"
	PassphraseFlagName = "passphrase"
	RelayFlagName      = "relay"
	NoRelaysFlagName   = "no-relays"
	CommitmentFlagName = "commitment"
	NpubFlagName       = "npub"
	SimulateFlagName   = "simulate"
	WordsFlagName      = "words"
	GenerateFlagName   = "generate"
)

// MnemonicEnvVar holds the mnemonic when --mnemonic is not given
const MnemonicEnvVar = "DIDNOSTR_MNEMONIC"

var errMissingMnemonic = errors.New("mnemonic not provided")

// App holds the dependencies shared by all commands
type App struct {
	Out       io.Writer
	Logger    *logrus.Logger
	KeySource keys.KeySource
	Resolver  did.Resolver

	cfg *config.Config
}

// RootCmd returns the did-nostr root command
func (a *App) RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "did-nostr",
		Short:         "Derive did:nostr documents from seed words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := cmd.Flags().GetString(ConfigFlagName)
			if err != nil {
				return err
			}
			return a.loadConfig(cfgFile)
		},
	}
	root.PersistentFlags().String(ConfigFlagName, "", "Path to config file (default ~/.did-nostr/config.yaml)")

	root.AddCommand(
		a.mnemonicCmd(),
		a.createCmd(),
		a.migrateCmd(),
		a.resolveCmd(),
	)

	return root
}

func (a *App) loadConfig(cfgFile string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.Logger.SetLevel(level)
	a.cfg = cfg

	return nil
}

func (a *App) mnemonicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a new BIP-39 mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := a.cfg.Keys.MnemonicSize
			if cmd.Flags().Changed(WordsFlagName) {
				words, _ = cmd.Flags().GetInt(WordsFlagName)
			}

			bits, err := keys.MnemonicBits(words)
			if err != nil {
				return err
			}

			mnemonic, err := a.KeySource.NewMnemonic(bits)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.Out, mnemonic)
			return err
		},
	}
	cmd.Flags().Int(WordsFlagName, 12, "Number of words (12, 15, 18, 21 or 24)")

	return cmd
}

func (a *App) createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a DID document for a new Nostr identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.create(cmd, "")
		},
	}
	addCreateFlags(cmd)

	return cmd
}

func (a *App) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create a DID document that keeps an existing npub as identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			npub, _ := cmd.Flags().GetString(NpubFlagName)
			simulate, _ := cmd.Flags().GetBool(SimulateFlagName)

			if simulate {
				var err error
				if npub, err = a.simulateExistingNpub(); err != nil {
					return err
				}
			}
			if npub == "" {
				return errors.New("npub not provided, use --npub or --simulate")
			}

			return a.create(cmd, npub)
		},
	}
	addCreateFlags(cmd)
	cmd.Flags().String(NpubFlagName, "", "Existing npub to keep as the DID identifier")
	cmd.Flags().Bool(SimulateFlagName, false, "Generate a random existing Nostr key instead of --npub")
	cmd.MarkFlagsMutuallyExclusive(NpubFlagName, SimulateFlagName)

	return cmd
}

func (a *App) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <did>",
		Short: "Resolve a did:nostr DID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			result, err := a.Resolver.Resolve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", args[0], err)
			}

			return a.printJSON(result)
		},
	}
}

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(MnemonicFlagName, "m", "", "BIP-39 mnemonic (default $"+MnemonicEnvVar+", then stdin)")
	cmd.Flags().Bool(GenerateFlagName, false, "Generate a new mnemonic and print it to stderr")
	cmd.Flags().StringP(PassphraseFlagName, "p", "", "Optional BIP-39 passphrase")
	cmd.Flags().StringSliceP(RelayFlagName, "r", nil, "Relay URL, repeatable (default from config)")
	cmd.Flags().Bool(NoRelaysFlagName, false, "Omit the relay service")
	cmd.Flags().String(CommitmentFlagName, "", "Update commitment scheme: hash or placeholder")
	cmd.MarkFlagsMutuallyExclusive(MnemonicFlagName, GenerateFlagName)
}

// readMnemonic takes the mnemonic from --mnemonic, then --generate, then
// the environment, then stdin. Whitespace is collapsed to single spaces.
func (a *App) readMnemonic(cmd *cobra.Command) (string, error) {
	mnemonic, _ := cmd.Flags().GetString(MnemonicFlagName)

	if generate, _ := cmd.Flags().GetBool(GenerateFlagName); generate {
		bits, err := keys.MnemonicBits(a.cfg.Keys.MnemonicSize)
		if err != nil {
			return "", err
		}
		if mnemonic, err = a.KeySource.NewMnemonic(bits); err != nil {
			return "", fmt.Errorf("failed to generate mnemonic: %w", err)
		}
		if _, err := fmt.Fprintln(cmd.ErrOrStderr(), mnemonic); err != nil {
			return "", err
		}
	}

	if mnemonic == "" {
		mnemonic = os.Getenv(MnemonicEnvVar)
	}

	if mnemonic == "" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read mnemonic from stdin: %w", err)
		}
		mnemonic = string(raw)
	}

	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if mnemonic == "" {
		return "", errMissingMnemonic
	}
	return mnemonic, nil
}

func (a *App) create(cmd *cobra.Command, npub string) error {
	mnemonic, err := a.readMnemonic(cmd)
	if err != nil {
		return err
	}

	passphrase, _ := cmd.Flags().GetString(PassphraseFlagName)

	relays := a.cfg.Relays
	if cmd.Flags().Changed(RelayFlagName) {
		relays, _ = cmd.Flags().GetStringSlice(RelayFlagName)
	}
	if noRelays, _ := cmd.Flags().GetBool(NoRelaysFlagName); noRelays {
		relays = nil
	}

	scheme := a.cfg.Commitment
	if cmd.Flags().Changed(CommitmentFlagName) {
		scheme, _ = cmd.Flags().GetString(CommitmentFlagName)
	}
	committer, err := committerFor(scheme)
	if err != nil {
		return err
	}

	opts := []did.CreateOption{
		did.WithPassphrase(passphrase),
		did.WithKeyPaths(a.cfg.Keys.SigningPath, a.cfg.Keys.UpdatePath),
		did.WithCommitter(committer),
	}
	if npub != "" {
		opts = append(opts, did.WithExistingNpub(npub))
	}

	result, err := did.CreateFromSeedWords(mnemonic, relays, opts...)
	if err != nil {
		return fmt.Errorf("failed to create DID: %w", err)
	}

	a.Logger.WithFields(logrus.Fields{
		"did":        result.Document.ID,
		"relays":     len(relays),
		"commitment": scheme,
	}).Info("created DID document")

	return a.printJSON(result)
}

func (a *App) simulateExistingNpub() (string, error) {
	privateKey, err := a.KeySource.NewPrivateKey()
	if err != nil {
		return "", err
	}

	pubHex, err := keys.PublicKeyHex(privateKey)
	if err != nil {
		return "", err
	}

	npub, err := nip19.EncodePublicKey(pubHex)
	if err != nil {
		return "", fmt.Errorf("failed to encode npub: %w", err)
	}

	a.Logger.WithField("npub", npub).Debug("simulated existing Nostr key")

	return npub, nil
}

func (a *App) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func committerFor(scheme string) (did.Committer, error) {
	switch scheme {
	case config.CommitmentHash:
		return did.HashCommitter{}, nil
	case config.CommitmentPlaceholder:
		return did.PlaceholderCommitter{}, nil
	default:
		return nil, fmt.Errorf("unknown commitment scheme: %q", scheme)
	}
}
