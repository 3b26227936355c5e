package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/mock"
	"github.com/MKhiriev/readsync/models"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func nowFunc() time.Time { return fixedNow }

func TestParseCommand_Sync(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no args", args: nil, want: nil},
		{name: "flags only", args: []string{"-once", "-c", "cfg.json"}, want: []string{"-once", "-c", "cfg.json"}},
		{name: "explicit", args: []string{"sync", "-once"}, want: []string{"-once"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.args, nowFunc)
			require.NoError(t, err)
			assert.Equal(t, CommandSync, cmd.Name)
			assert.Equal(t, tt.want, cmd.ConfigArgs)
		})
	}
}

func TestParseCommand_Register(t *testing.T) {
	cmd, err := ParseCommand([]string{"register", "-account", "alice"}, nowFunc)

	require.NoError(t, err)
	assert.Equal(t, CommandRegister, cmd.Name)
	assert.Equal(t, []string{"-account", "alice"}, cmd.ConfigArgs)
}

func TestParseCommand_Unknown(t *testing.T) {
	_, err := ParseCommand([]string{"upgrade"}, nowFunc)

	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestParseCommand_Record(t *testing.T) {
	cmd, err := ParseCommand([]string{
		"record",
		"-key", "book.epub",
		"-item", "a1",
		"-block", "12",
		"-offset", "40",
		"-chapter", "2",
		"-percent", "37.5",
		"-label", "ch. 3",
		"-opened",
		"--", "-c", "client.json",
	}, nowFunc)
	require.NoError(t, err)

	chapter := 2
	assert.Equal(t, CommandRecord, cmd.Name)
	assert.Equal(t, []string{"-c", "client.json"}, cmd.ConfigArgs)
	assert.Equal(t, models.PositionReport{
		ItemID:      "a1",
		PositionKey: "book.epub",
		Position: models.ReadingPosition{
			BlockIndex:   12,
			CharOffset:   40,
			Timestamp:    fixedNow.UnixMilli(),
			ChapterIndex: &chapter,
		},
		Progress: &models.ReadingProgress{Percent: 37.5, Label: "ch. 3"},
		OpenedAt: fixedNow.UnixMilli(),
	}, cmd.Report)
}

func TestParseCommand_RecordMinimal(t *testing.T) {
	cmd, err := ParseCommand([]string{"record", "-key", "book.epub", "-block", "3"}, nowFunc)
	require.NoError(t, err)

	assert.Empty(t, cmd.ConfigArgs)
	assert.Equal(t, "book.epub", cmd.Report.PositionKey)
	assert.Equal(t, 3, cmd.Report.Position.BlockIndex)
	assert.Nil(t, cmd.Report.Position.ChapterIndex)
	assert.Nil(t, cmd.Report.Progress)
	assert.Zero(t, cmd.Report.OpenedAt)
}

func TestParseCommand_RecordInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no target", args: []string{"-block", "3"}},
		{name: "negative block", args: []string{"-key", "k", "-block", "-1"}},
		{name: "negative offset", args: []string{"-key", "k", "-offset", "-5"}},
		{name: "percent above 100", args: []string{"-key", "k", "-percent", "120"}},
		{name: "bad number", args: []string{"-key", "k", "-block", "ten"}},
		{name: "config flag before separator", args: []string{"-key", "k", "-once"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(append([]string{"record"}, tt.args...), nowFunc)
			assert.ErrorContains(t, err, "record")
		})
	}
}

type registeringProvider struct {
	*mock.MockSyncProvider
	*mock.MockAccountRegistrar
}

func TestRegisterAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mock.NewMockAccountRegistrar(ctrl)
	p := registeringProvider{mock.NewMockSyncProvider(ctrl), registrar}

	registrar.EXPECT().Register(gomock.Any()).Return(nil)

	assert.NoError(t, RegisterAccount(context.Background(), p, logger.Nop()))
}

func TestRegisterAccount_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mock.NewMockAccountRegistrar(ctrl)
	p := registeringProvider{mock.NewMockSyncProvider(ctrl), registrar}

	registrar.EXPECT().Register(gomock.Any()).Return(assert.AnError)

	err := RegisterAccount(context.Background(), p, logger.Nop())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRegisterAccount_FolderProviderHasNoAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)

	err := RegisterAccount(context.Background(), mock.NewMockSyncProvider(ctrl), logger.Nop())

	assert.ErrorIs(t, err, ErrRegistrationUnsupported)
}
