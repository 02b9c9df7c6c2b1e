package main

import (
	"math"
	"testing"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/tuannh982/listset/harness"
	"github.com/tuannh982/listset/utils/collections"
	"github.com/tuannh982/listset/utils/random"
)

func parse(t *testing.T, args ...string) (*CLI, error) {
	var cli CLI
	parser, err := newParser(&cli, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.Nil(t, err)
	_, err = parser.Parse(args)
	return &cli, err
}

func TestRun(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := harness.DefaultConfig()
	cfg.Seed = 1
	require.Equal(t, 0, run(cfg, true, log.NewEntry(logger)))
	last := hook.LastEntry()
	require.Equal(t, "set agrees with oracle", last.Message)
	require.Equal(t, int64(1), last.Data["seed"])

	// every add phase key reaches Set::add exactly once
	var dumped *log.Entry
	for _, e := range hook.AllEntries() {
		if e.Data["metric"] == "listset_events_total" && e.Data["op"] == collections.OpAdd {
			dumped = e
		}
	}
	require.NotNil(t, dumped)
	require.Equal(t, "100", dumped.Message)
}

func TestRunWithoutMetrics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := harness.DefaultConfig()
	cfg.Seed = 1
	require.Equal(t, 0, run(cfg, false, log.NewEntry(logger)))
	for _, e := range hook.AllEntries() {
		require.Nil(t, e.Data["metric"])
	}
}

func TestRunInvalidConfig(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := harness.DefaultConfig()
	cfg.Items = 0
	require.Equal(t, 1, run(cfg, false, log.NewEntry(logger)))
	require.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
}

func TestParseDefaults(t *testing.T) {
	cli, err := parse(t)
	require.Nil(t, err)
	cfg := cli.Config()
	def := harness.DefaultConfig()
	require.Equal(t, def.Items, cfg.Items)
	require.Equal(t, def.AddRange, cfg.AddRange)
	require.Equal(t, def.RemoveRange, cfg.RemoveRange)
	require.Equal(t, def.ContainsRange, cfg.ContainsRange)
}

func TestParseFlags(t *testing.T) {
	cli, err := parse(t,
		"-n", "10",
		"--seed", "4",
		"--add-range", "1:10",
		"--remove-range", "5:10",
		"--contains-range", "-9223372036854775808:9223372036854775807",
		"--metrics",
	)
	require.Nil(t, err)
	require.Equal(t, harness.Config{
		Items:         10,
		Seed:          4,
		AddRange:      random.Range[int]{Low: 1, High: 10},
		RemoveRange:   random.Range[int]{Low: 5, High: 10},
		ContainsRange: random.Range[int]{Low: math.MinInt64, High: math.MaxInt64},
	}, cli.Config())
	require.Equal(t, true, cli.Metrics)
}

func TestParseRejectsBadRange(t *testing.T) {
	for _, arg := range []string{"10:5", "5", "0:9223372036854775808"} {
		_, err := parse(t, "--remove-range", arg)
		require.NotNil(t, err, "input %q", arg)
		require.Contains(t, err.Error(), random.ErrInvalidRange.Error(), "input %q", arg)
	}
}
