package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iamNilotpal/crcsum/config"
	"github.com/iamNilotpal/crcsum/internal/adapters/digest"
	"github.com/iamNilotpal/crcsum/internal/core/domain"
	"github.com/iamNilotpal/crcsum/internal/core/services/checksum"
	"github.com/iamNilotpal/crcsum/pkg/errors"
)

// New builds the crcsum command. One of --file or --string selects the
// byte source; --validate-slow swaps the accelerated digest for the
// reference one. The checksum is printed to stdout in decimal, alone on
// its line; everything else goes to the logger on stderr.
func New(logger *zap.SugaredLogger) *cobra.Command {
	var (
		filePath     string
		text         string
		validateSlow bool
		zstdInput    bool
		chunkSize    int
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "crcsum (--file <path> | --string <text>) [--validate-slow]",
		Short: "Computes the CRC-64/NVME checksum of a file or string",
		Long: `Computes the CRC-64/NVME checksum of a file of unbounded size or an
in-memory string, reading files in bounded segments so memory use stays
flat regardless of input size.

The default digest folds input with SIMD carryless multiplication;
--validate-slow selects the table-driven reference digest instead,
which computes the identical value and exists to validate the fast path.`,
		Example: `  crcsum --file /path/to/file
  crcsum --string 123456789
  crcsum --string 123456789 --validate-slow`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			useFile := cmd.Flags().Changed("file")
			useString := cmd.Flags().Changed("string")

			if useFile == useString {
				_ = cmd.Usage()
				if useFile {
					return errors.NewUsageError(fmt.Errorf("--file and --string are mutually exclusive"))
				}
				return errors.NewUsageError(fmt.Errorf("one of --file or --string is required"))
			}

			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return errors.NewUsageError(err)
				}
				cfg = loaded
			}

			kind := domain.DigestKind(cfg.Digest)
			if validateSlow {
				kind = digest.Reference
			}
			if cmd.Flags().Changed("chunk-size") {
				cfg.ChunkSize = chunkSize
			}

			logger.Debugw("digest selected", "kind", kind, "clmul", digest.HasAcceleration())

			svc, err := checksum.New(&domain.ChecksumOptions{
				Kind:      kind,
				ChunkSize: cfg.ChunkSize,
				Zstd:      cfg.Zstd || zstdInput,
			}, logger)
			if err != nil {
				return err
			}

			var sum uint64
			if useFile {
				sum, err = svc.SumFile(cmd.Context(), filePath)
			} else {
				sum, err = svc.SumString(cmd.Context(), text)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatUint(sum, 10))
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "checksum the contents of this file")
	cmd.Flags().StringVar(&text, "string", "", "checksum the byte representation of this text")
	cmd.Flags().BoolVar(&validateSlow, "validate-slow", false, "use the table-driven reference digest instead of SIMD folding")
	cmd.Flags().BoolVar(&zstdInput, "zstd", false, "decompress zstd file input before checksumming")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", checksum.DefaultChunkSize, "maximum bytes read per segment")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		_ = c.Usage()
		return errors.NewUsageError(err)
	})

	return cmd
}
