package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/42tools/ft-otp/pkg/config"
	"github.com/42tools/ft-otp/pkg/keystore"
	"github.com/42tools/ft-otp/pkg/logger"
	"github.com/42tools/ft-otp/pkg/otp"
	"github.com/42tools/ft-otp/pkg/qrcode"
)

const rootExample = `  # Validate a hexadecimal secret and seal it into ft_otp.key
  ftotp -g key.hex

  # Print the current one-time code, provisioning URI and QR code
  ftotp -k ft_otp.key

  # Check a code typed from an authenticator app
  ftotp -k ft_otp.key --verify 123456`

var (
	generatePath string
	keyFilePath  string
	verifyCode   string
	pngPath      string
	verbose      bool
)

var errCodeMismatch = errors.New("code is not valid for the current time window")

var rootCmd = &cobra.Command{
	Use:     "ftotp",
	Short:   "Store an encrypted TOTP secret and generate one-time codes",
	Long:    "ftotp seals a hexadecimal shared secret into an encrypted key file and derives RFC 6238 time-based one-time passwords from it, together with the otpauth:// URI and QR code needed to enroll an authenticator app.",
	Example: rootExample,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.New(logger.WithVerbose(verbose))
		logger.SetAsDefault(log)

		if err := run(log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&generatePath, "generate", "g", "", "validate the hexadecimal secret at this path and seal it")
	rootCmd.Flags().StringVarP(&keyFilePath, "key", "k", "", "unseal this key file and print the current code")
	rootCmd.Flags().StringVar(&verifyCode, "verify", "", "verify a 6-digit code instead of printing one (requires -k)")
	rootCmd.Flags().StringVar(&pngPath, "png", "", "also write the enrollment QR code to this PNG file (requires -k)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.MarkFlagsOneRequired("generate", "key")
	rootCmd.MarkFlagsMutuallyExclusive("generate", "key")
	rootCmd.SilenceErrors = true
}

// Execute runs the root command. Usage errors and command failures both
// leave the process with exit status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if generatePath != "" {
		return runGenerate(cfg, log)
	}
	return runToken(cfg, log)
}

// runGenerate is the enrollment path: validate the hex secret, seal it, and
// overwrite the key file.
func runGenerate(cfg config.Config, log *slog.Logger) error {
	store := keystore.New(cfg.KeyFile, cfg.Deriver())

	log.Debug("sealing secret", slog.String("hex_file", generatePath), slog.String("key_file", store.KeyFile()))
	if err := store.Save(generatePath); err != nil {
		return err
	}

	fmt.Printf("Key stored and encrypted in %s.\n", store.KeyFile())
	return nil
}

// runToken unseals the key file and either prints the current code with its
// enrollment artifacts or verifies a user-supplied code.
func runToken(cfg config.Config, log *slog.Logger) error {
	store := keystore.New(keyFilePath, cfg.Deriver())

	secret, err := store.Load()
	if err != nil {
		return err
	}

	counter := otp.Now()
	log.Debug("unsealed secret", slog.String("key_file", store.KeyFile()), slog.Uint64("counter", uint64(counter)))

	if verifyCode != "" {
		ok, err := otp.Verify(secret, verifyCode, counter)
		if err != nil {
			return err
		}
		if !ok {
			return errCodeMismatch
		}
		fmt.Println("Code is valid.")
		return nil
	}

	code, err := otp.Code(secret, counter)
	if err != nil {
		return err
	}

	fmt.Println("TOTP Token:")
	fmt.Printf(" %s\n", code)

	uri, err := otp.BuildURI(otp.URIParams{
		Secret:      secret,
		AccountName: cfg.AccountName,
		Issuer:      cfg.Issuer,
	})
	if err != nil {
		return err
	}

	fmt.Println("\nProvisioning URI:")
	fmt.Println(uri)

	art, err := qrcode.Terminal(uri)
	if err != nil {
		return err
	}

	fmt.Println("\nScan this QR Code with your Authenticator app:")
	fmt.Print(art)

	if pngPath != "" {
		png, err := qrcode.Generate(uri, 0)
		if err != nil {
			return err
		}
		if err := os.WriteFile(pngPath, png, 0o644); err != nil {
			return err
		}
		fmt.Printf("\nQR code image written to %s.\n", pngPath)
	}

	return nil
}
