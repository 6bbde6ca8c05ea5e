package threshold

import (
	"log/slog"

	"github.com/kyungseok-lee/go-gc-heuristic/pkg/types"
)

// Bands is the resolved pair of bands used by a GC heuristic.
// RuntimeMs is already expressed in milliseconds.
type Bands struct {
	GCRatio   Band
	RuntimeMs Band
}

// DefaultBands returns the compiled default bands
func DefaultBands() Bands {
	return Bands{
		GCRatio:   Band(types.DefaultGCRatioLimits),
		RuntimeMs: Band(types.DefaultRuntimeLimitsMin).Scale(types.MinuteInMs),
	}
}

// Load resolves both bands from params, keeping the defaults for any key
// that is absent or malformed. Malformed values are logged, never returned.
func Load(heuristicName string, params map[string]string, logger *slog.Logger) Bands {
	if logger == nil {
		logger = slog.Default()
	}

	ratio := resolve(heuristicName, types.ParamGCRatioSeverity, params, Band(types.DefaultGCRatioLimits), logger)
	runtimeMin := resolve(heuristicName, types.ParamRuntimeSeverity, params, Band(types.DefaultRuntimeLimitsMin), logger)

	return Bands{
		GCRatio:   ratio,
		RuntimeMs: runtimeMin.Scale(types.MinuteInMs),
	}
}

func resolve(heuristicName, key string, params map[string]string, fallback Band, logger *slog.Logger) Band {
	band := fallback
	if raw, ok := params[key]; ok {
		parsed, err := ParseBand(raw)
		if err != nil {
			logger.Warn("ignoring malformed threshold setting",
				"heuristic", heuristicName,
				"param", key,
				"value", raw,
				"error", err)
		} else {
			band = parsed
		}
	}

	logger.Info("using threshold settings",
		"heuristic", heuristicName,
		"param", key,
		"thresholds", band.String())
	return band
}
