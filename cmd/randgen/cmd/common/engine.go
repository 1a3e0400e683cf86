package common

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/hashicorp/go-multierror"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/randgen/randgen/engine"
)

const (
	// CfgEngineKind is the flag used to select the engine algorithm.
	CfgEngineKind = "engine.kind"
	// CfgEngineSeed is the flag used to seed the engine.
	CfgEngineSeed = "engine.seed"
	// CfgEngineLabel is the flag used to key the label engine.
	CfgEngineLabel = "engine.label"
)

// EngineFlags has the engine configuration flags.
var EngineFlags = flag.NewFlagSet("", flag.ContinueOnError)

// EngineConfig returns the configured engine. When no seed is configured a
// random one is chosen and reported to w regardless of the log level, so
// that the run can be reproduced.
func EngineConfig(w io.Writer) (engine.Config, error) {
	var result error

	kind, err := engine.ParseKind(viper.GetString(CfgEngineKind))
	if err != nil {
		result = multierror.Append(result, err)
	}

	cfg := engine.Config{
		Kind:  kind,
		Seed:  viper.GetUint64(CfgEngineSeed),
		Label: viper.GetString(CfgEngineLabel),
	}
	randomSeed := !viper.IsSet(CfgEngineSeed)
	if randomSeed {
		cfg.Seed = rand.Uint64()
	}
	if kind == engine.KindLabel && cfg.Label == "" {
		result = multierror.Append(result, engine.ErrMissingLabel)
	}
	if result != nil {
		return engine.Config{}, result
	}

	if randomSeed {
		fmt.Fprintf(w, "randgen: using random engine seed %d (rerun with --%s %d)\n", cfg.Seed, CfgEngineSeed, cfg.Seed)
	}
	rootLog.Info("using engine",
		"engine", cfg,
		"random_seed", randomSeed,
	)
	return cfg, nil
}

// NewEngine creates an engine from the configuration, counting its draws.
func NewEngine(cfg engine.Config) (engine.Source, error) {
	src, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	return engine.Counted(src, string(cfg.Kind)), nil
}

func init() {
	EngineFlags.String(CfgEngineKind, string(engine.KindPCG), "engine kind (pcg, chacha8, locked, label)")
	EngineFlags.Uint64(CfgEngineSeed, 0, "engine seed (random if unset)")
	EngineFlags.String(CfgEngineLabel, "", "label keying the label engine")

	_ = viper.BindPFlags(EngineFlags)
}
