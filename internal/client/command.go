package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/provider"
	"github.com/MKhiriev/readsync/models"
)

// Command names accepted as the first argument of the client binary.
const (
	CommandSync     = "sync"
	CommandRegister = "register"
	CommandRecord   = "record"
)

// ErrUnknownCommand is returned by ParseCommand for an unsupported
// subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// ErrRegistrationUnsupported is returned by RegisterAccount for providers
// without server-side accounts.
var ErrRegistrationUnsupported = errors.New("provider does not support account registration")

// Command is a parsed invocation of the client binary. ConfigArgs are the
// flags left for the configuration loader.
type Command struct {
	Name       string
	ConfigArgs []string
	Report     models.PositionReport
}

// ParseCommand splits args into a subcommand and its arguments. Without a
// subcommand the client syncs. The record subcommand reads its own flags
// and passes everything after "--" to the configuration loader:
//
//	readsync-client record -key book.epub -block 12 -percent 40 -- -c client.json
func ParseCommand(args []string, now func() time.Time) (Command, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return Command{Name: CommandSync, ConfigArgs: args}, nil
	}

	name, rest := args[0], args[1:]
	switch name {
	case CommandSync, CommandRegister:
		return Command{Name: name, ConfigArgs: rest}, nil
	case CommandRecord:
		report, configArgs, err := parseRecordFlags(rest, now)
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", CommandRecord, err)
		}
		return Command{Name: name, ConfigArgs: configArgs, Report: report}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func parseRecordFlags(args []string, now func() time.Time) (models.PositionReport, []string, error) {
	var (
		report  models.PositionReport
		chapter int
		percent float64
		label   string
	)
	fs := flag.NewFlagSet(CommandRecord, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&report.PositionKey, "key", "", "Position key of the document")
	fs.StringVar(&report.ItemID, "item", "", "Archive item id")
	fs.IntVar(&report.Position.BlockIndex, "block", 0, "Block index")
	fs.IntVar(&report.Position.CharOffset, "offset", 0, "Character offset inside the block")
	fs.IntVar(&chapter, "chapter", -1, "Chapter index")
	fs.Float64Var(&percent, "percent", -1, "Reading progress in percent")
	fs.StringVar(&label, "label", "", "Progress label")
	fs.BoolFunc("opened", "Mark the item as opened now", func(string) error {
		report.OpenedAt = now().UnixMilli()
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return models.PositionReport{}, nil, err
	}

	if report.PositionKey == "" && report.ItemID == "" {
		return models.PositionReport{}, nil, errors.New("-key or -item is required")
	}
	if report.Position.BlockIndex < 0 || report.Position.CharOffset < 0 {
		return models.PositionReport{}, nil, errors.New("-block and -offset must not be negative")
	}
	if percent > 100 {
		return models.PositionReport{}, nil, errors.New("-percent must not exceed 100")
	}

	report.Position.Timestamp = now().UnixMilli()
	if chapter >= 0 {
		report.Position.ChapterIndex = &chapter
	}
	if percent >= 0 {
		report.Progress = &models.ReadingProgress{Percent: percent, Label: label}
	}

	return report, fs.Args(), nil
}

// RegisterAccount creates the configured account on the sync backend.
func RegisterAccount(ctx context.Context, syncProvider provider.SyncProvider, log *logger.Logger) error {
	registrar, ok := syncProvider.(provider.AccountRegistrar)
	if !ok {
		return ErrRegistrationUnsupported
	}
	if err := registrar.Register(ctx); err != nil {
		return fmt.Errorf("register account: %w", err)
	}
	log.Info().Msg("account registered, run the client to start syncing")
	return nil
}
