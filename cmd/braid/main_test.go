package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestEngineFlagDefaults(t *testing.T) {
	flags := engineFlags()

	find := func(name string) *cli.StringFlag {
		for _, f := range flags {
			if sf, ok := f.(*cli.StringFlag); ok && sf.Name == name {
				return sf
			}
		}
		return nil
	}

	hostFlag := find("ai-host")
	require.NotNil(t, hostFlag)
	assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)

	routingFlag := find("routing")
	require.NotNil(t, routingFlag)
	assert.Equal(t, "keyword", routingFlag.Value)

	dbFlag := find("db")
	require.NotNil(t, dbFlag)
	assert.Contains(t, dbFlag.EnvVars, "BRAID_DB")
}

func TestSetupLogger(t *testing.T) {
	newContext := func(level string) *cli.Context {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.String("log-level", level, "")
		return cli.NewContext(cli.NewApp(), set, nil)
	}

	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
			assert.NoError(t, setupLogger(newContext(level)), level)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		err := setupLogger(newContext("verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestIngestCommandArgValidation(t *testing.T) {
	app := &cli.App{
		Name: "braid",
		Commands: []*cli.Command{
			{Name: "ingest", Action: ingestCommand, Flags: append(engineFlags(), ingestFlags()...)},
		},
	}

	err := app.Run([]string{"braid", "ingest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document path")
}
