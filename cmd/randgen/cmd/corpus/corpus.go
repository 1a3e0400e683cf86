// Package corpus implements the corpus and replay sub-commands.
//
// A corpus entry is a pair of files: <i>.cbor holds the canonical CBOR
// encoding of a drawn value, and <i>.bin holds the engine words consumed
// to draw it. Replaying the .bin file with the same type expression
// re-draws the identical value, which replay checks against the .cbor file
// when one is present.
package corpus

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/common"
	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/sample"
	"github.com/oasisprotocol/randgen/common/cbor"
	"github.com/oasisprotocol/randgen/common/errors"
	"github.com/oasisprotocol/randgen/common/logging"
	"github.com/oasisprotocol/randgen/randgen"
	"github.com/oasisprotocol/randgen/randgen/engine"
)

// ModuleName is the module name used for error registration and logging.
const ModuleName = "cmd/randgen/corpus"

// ErrMismatch is the error returned when a replayed value does not encode
// to its corpus entry.
var ErrMismatch = errors.New(ModuleName, 1, "corpus: replayed value does not match the corpus entry")

const (
	// CfgDir is the flag used to specify the corpus directory.
	CfgDir = "corpus.dir"

	blobExt      = ".cbor"
	tracebackExt = ".bin"
)

var (
	corpusFlags = flag.NewFlagSet("", flag.ContinueOnError)

	corpusCmd = &cobra.Command{
		Use:   "corpus",
		Short: "write a corpus of drawn values and their engine tracebacks",
		Args:  cobra.NoArgs,
		RunE:  doCorpus,
	}

	replayCmd = &cobra.Command{
		Use:   "replay FILE",
		Short: "re-draw a value from an engine traceback",
		Args:  cobra.ExactArgs(1),
		RunE:  doReplay,
	}

	logger = logging.GetLogger(ModuleName)
)

// Entry is one generated corpus entry.
type Entry struct {
	Blob      []byte
	Traceback []byte
}

// Generate draws count values from value, each with its own traceback of
// the words it consumed from eng.
func Generate(value randgen.Value, eng engine.Source, count int) []Entry {
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		tracker := engine.NewTracking(eng)
		v := value.SampleValue(tracker)
		entries = append(entries, Entry{
			Blob:      cbor.Marshal(v.Interface()),
			Traceback: tracker.Traceback(),
		})
	}
	return entries
}

// Write writes the entries to dir, creating it if needed.
func Write(dir string, entries []Entry) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create corpus directory: %w", err)
	}
	for i, entry := range entries {
		base := filepath.Join(dir, strconv.Itoa(i))
		if err := os.WriteFile(base+blobExt, entry.Blob, 0o600); err != nil {
			return fmt.Errorf("failed to write corpus entry: %w", err)
		}
		if err := os.WriteFile(base+tracebackExt, entry.Traceback, 0o600); err != nil {
			return fmt.Errorf("failed to write corpus traceback: %w", err)
		}
	}
	return nil
}

func doCorpus(cmd *cobra.Command, args []string) error {
	dir := viper.GetString(CfgDir)
	if dir == "" {
		return fmt.Errorf("missing --%s", CfgDir)
	}
	count := viper.GetInt(sample.CfgCount)
	if count < 0 {
		return fmt.Errorf("invalid --%s: %d", sample.CfgCount, count)
	}

	value, err := sample.ResolveType()
	if err != nil {
		return err
	}
	cfg, err := common.EngineConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	eng, err := common.NewEngine(cfg)
	if err != nil {
		return err
	}

	if err = Write(dir, Generate(value, eng, count)); err != nil {
		return err
	}
	logger.Info("wrote corpus",
		"dir", dir,
		"count", count,
		"type", value.Type(),
		"engine", cfg,
	)
	return nil
}

// Replay re-draws one value from a traceback. It also returns the number
// of bytes drawn past the end of the traceback, which is zero iff the
// traceback was drawn for the same type.
func Replay(value randgen.Value, traceback []byte) (reflect.Value, int) {
	src := engine.FromBytes(traceback)
	v := value.SampleValue(src)
	return v, src.Exhausted
}

// Check compares the canonical encoding of v with the corpus entry stored
// next to the traceback at path. It reports false if there is no entry.
func Check(path string, v reflect.Value) (bool, error) {
	blob, err := os.ReadFile(strings.TrimSuffix(path, filepath.Ext(path)) + blobExt)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err != nil:
		return false, err
	}
	if !bytes.Equal(blob, cbor.Marshal(v.Interface())) {
		return false, errors.WithContext(ErrMismatch, path)
	}
	return true, nil
}

func doReplay(cmd *cobra.Command, args []string) error {
	value, err := sample.ResolveType()
	if err != nil {
		return err
	}
	traceback, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	w, err := sample.NewWriter(cmd.OutOrStdout(), viper.GetString(sample.CfgFormat))
	if err != nil {
		return err
	}

	v, exhausted := Replay(value, traceback)
	if exhausted > 0 {
		logger.Warn("traceback exhausted, value does not match the corpus entry",
			"file", args[0],
			"exhausted", exhausted,
		)
	}
	if err = w.Write(v); err != nil {
		return err
	}

	checked, err := Check(args[0], v)
	if err != nil {
		return err
	}
	logger.Info("replayed corpus entry",
		"file", args[0],
		"checked", checked,
	)
	return nil
}

// Register registers the corpus and replay sub-commands.
func Register(parentCmd *cobra.Command) {
	corpusCmd.Flags().AddFlagSet(sample.TypeFlags)
	corpusCmd.Flags().AddFlagSet(sample.CountFlags)
	corpusCmd.Flags().AddFlagSet(corpusFlags)
	corpusCmd.Flags().AddFlagSet(common.EngineFlags)
	parentCmd.AddCommand(corpusCmd)

	replayCmd.Flags().AddFlagSet(sample.TypeFlags)
	replayCmd.Flags().AddFlagSet(sample.FormatFlags)
	parentCmd.AddCommand(replayCmd)
}

func init() {
	corpusFlags.String(CfgDir, "", "corpus output directory")
	_ = viper.BindPFlags(corpusFlags)
}
