package main

import (
	"context"
	"os"

	"github.com/iamNilotpal/crcsum/internal/cli"
	"github.com/iamNilotpal/crcsum/pkg/errors"
	"github.com/iamNilotpal/crcsum/pkg/logger"
)

func main() {
	logger := logger.New("crcsum")
	defer logger.Sync()

	cmd := cli.New(logger)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if cerr := errors.AsChecksumError(err); cerr != nil {
			logger.Errorw("checksum failed", "category", cerr.Category.String(), "path", cerr.Path, "error", cerr.Err)
		} else if verr := errors.AsValidationError(err); verr != nil {
			logger.Errorw("invalid option", "field", verr.Field, "value", verr.Value, "error", verr.Err)
		} else {
			logger.Errorw("checksum failed", "error", err)
		}
		os.Exit(1)
	}
}
