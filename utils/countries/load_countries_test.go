package main

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo09/paises-backend/src/db"
)

func TestCloseHandle_LogsCloseError(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	handle := db.NewHandle(db.BackendMongo, nil, func(context.Context) error {
		return errors.New("connection reset")
	})
	closeHandle(context.Background(), handle)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.ErrorLevel, entry.Level)
	assert.Equal(t, "Error closing database connection", entry.Message)
	assert.EqualError(t, entry.Data[log.ErrorKey].(error), "connection reset")
}

func TestCloseHandle_SilentOnSuccess(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	closeHandle(context.Background(), db.NewHandle(db.BackendPostgres, nil, func(context.Context) error {
		return nil
	}))

	assert.Empty(t, hook.AllEntries())
}
