package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports placement and scenario events at debug level. It is
// installed by the root command when --verbose is set.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnFloatPlaced(side string, x, y float64, probes, bands int) {
	h.logger.Debug("float", "side", side, "x", x, "y", y, "probes", probes, "bands", bands)
}

func (h *logHooks) OnClearance(clear string, edge float64) {
	h.logger.Debug("clearance", "clear", clear, "edge", edge)
}

func (h *logHooks) OnRunStart(_ context.Context, name string, floats int) {
	h.logger.Debug("run start", "scenario", name, "floats", floats)
}

func (h *logHooks) OnRunComplete(_ context.Context, name string, placed int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run failed", "scenario", name, "err", err)
		return
	}
	h.logger.Debug("run complete", "scenario", name, "placed", placed, "duration", d)
}

func (h *logHooks) OnVerifyComplete(_ context.Context, name string, mismatches int, d time.Duration, err error) {
	h.logger.Debug("verify complete", "scenario", name, "mismatches", mismatches, "duration", d, "err", err)
}
