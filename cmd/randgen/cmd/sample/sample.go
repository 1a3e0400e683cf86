// Package sample implements the sample sub-command.
package sample

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/common"
	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/typeexpr"
	"github.com/oasisprotocol/randgen/common/cbor"
	"github.com/oasisprotocol/randgen/common/logging"
	"github.com/oasisprotocol/randgen/randgen"
	"github.com/oasisprotocol/randgen/randgen/engine"
)

const (
	// CfgType is the flag used to specify the type expression to draw.
	CfgType = "type"
	// CfgCount is the flag used to specify the number of values to draw.
	CfgCount = "sample.count"
	// CfgFormat is the flag used to specify the output format.
	CfgFormat = "sample.format"

	// FormatText prints values with fmt, one per line.
	FormatText = "text"
	// FormatJSON prints values as JSON documents, one per line.
	FormatJSON = "json"
	// FormatCBOR writes values as a stream of canonical CBOR items.
	FormatCBOR = "cbor"
)

var (
	// TypeFlags has the type expression flag.
	TypeFlags = flag.NewFlagSet("", flag.ContinueOnError)
	// CountFlags has the value count flag.
	CountFlags = flag.NewFlagSet("", flag.ContinueOnError)
	// FormatFlags has the output format flag.
	FormatFlags = flag.NewFlagSet("", flag.ContinueOnError)

	sampleCmd = &cobra.Command{
		Use:   "sample",
		Short: "draw values of a type from its default distribution",
		Example: `  randgen sample --type '[]int8' --sample.count 3
  randgen sample --type 'tuple(bool, string)' --engine.seed 42 --sample.format json`,
		Args: cobra.NoArgs,
		RunE: doSample,
	}

	logger = logging.GetLogger("cmd/randgen/sample")
)

// ResolveType parses and resolves the type expression flag.
func ResolveType() (randgen.Value, error) {
	expr := viper.GetString(CfgType)
	if expr == "" {
		return nil, fmt.Errorf("missing --%s", CfgType)
	}
	typ, err := typeexpr.Parse(expr)
	if err != nil {
		return nil, err
	}
	return randgen.Resolve(typ)
}

// Writer writes drawn values in one of the output formats.
type Writer struct {
	format string
	w      io.Writer
	json   *json.Encoder
	cbor   interface{ Encode(interface{}) error }
}

// NewWriter creates a new value writer.
func NewWriter(w io.Writer, format string) (*Writer, error) {
	vw := &Writer{
		format: strings.ToLower(format),
		w:      w,
	}
	switch vw.format {
	case FormatText:
	case FormatJSON:
		vw.json = json.NewEncoder(w)
	case FormatCBOR:
		vw.cbor = cbor.NewEncoder(w)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return vw, nil
}

// Write writes one value.
func (vw *Writer) Write(v reflect.Value) error {
	switch vw.format {
	case FormatJSON:
		return vw.json.Encode(v.Interface())
	case FormatCBOR:
		return vw.cbor.Encode(v.Interface())
	default:
		if v.Kind() == reflect.String {
			_, err := fmt.Fprintf(vw.w, "%q\n", v.String())
			return err
		}
		_, err := fmt.Fprintf(vw.w, "%v\n", v.Interface())
		return err
	}
}

func validate(stderr io.Writer) (engine.Config, error) {
	var result error
	if count := viper.GetInt(CfgCount); count < 0 {
		result = multierror.Append(result, fmt.Errorf("invalid --%s: %d", CfgCount, count))
	}
	switch strings.ToLower(viper.GetString(CfgFormat)) {
	case FormatText, FormatJSON, FormatCBOR:
	default:
		result = multierror.Append(result, fmt.Errorf("invalid --%s: %s", CfgFormat, viper.GetString(CfgFormat)))
	}
	cfg, err := common.EngineConfig(stderr)
	if err != nil {
		result = multierror.Append(result, err)
	}
	return cfg, result
}

func doSample(cmd *cobra.Command, args []string) error {
	cfg, err := validate(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	value, err := ResolveType()
	if err != nil {
		return err
	}
	eng, err := common.NewEngine(cfg)
	if err != nil {
		return err
	}
	w, err := NewWriter(cmd.OutOrStdout(), viper.GetString(CfgFormat))
	if err != nil {
		return err
	}

	count := viper.GetInt(CfgCount)
	logger.Debug("sampling",
		"type", value.Type(),
		"distribution", value.String(),
		"count", count,
	)
	for i := 0; i < count; i++ {
		if err = w.Write(value.SampleValue(eng)); err != nil {
			return fmt.Errorf("failed to write value %d: %w", i, err)
		}
	}
	return nil
}

// Register registers the sample sub-command.
func Register(parentCmd *cobra.Command) {
	sampleCmd.Flags().AddFlagSet(TypeFlags)
	sampleCmd.Flags().AddFlagSet(CountFlags)
	sampleCmd.Flags().AddFlagSet(FormatFlags)
	sampleCmd.Flags().AddFlagSet(common.EngineFlags)
	parentCmd.AddCommand(sampleCmd)
}

func init() {
	TypeFlags.String(CfgType, "", "type expression, e.g. '[]tuple(int8, string)'")
	_ = viper.BindPFlags(TypeFlags)

	CountFlags.Int(CfgCount, 1, "number of values to draw")
	_ = viper.BindPFlags(CountFlags)

	FormatFlags.String(CfgFormat, FormatText, "output format (text, json, cbor)")
	_ = viper.BindPFlags(FormatFlags)
}
