package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/floatzone/pkg/bands"
	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/floats"
	"github.com/matzehuels/floatzone/pkg/floats/naive"
	"github.com/matzehuels/floatzone/pkg/observability"
)

// Runner runs scenarios.
//
// The Runner is stateless except for the logger; every run builds its own
// float context, so multiple goroutines can use the same Runner.
type Runner struct {
	Logger *log.Logger

	// KeepSteps records the band map after every float in Result.Steps.
	KeepSteps bool
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result is the outcome of running one scenario.
type Result struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	InlineSize float64        `json:"inline_size"`
	Placements []Placed       `json:"placements"`
	Clearances []Cleared      `json:"clearances,omitempty"`
	Bands      []bands.Band   `json:"bands"`
	Steps      [][]bands.Band `json:"-"`
	Mismatches []string       `json:"mismatches,omitempty"`
	Stats      Stats          `json:"stats"`
}

// Placed is one placed float.
type Placed struct {
	Label string `json:"label"`
	floats.Placement
}

// Cleared is the answer to one clearance query.
type Cleared struct {
	Clear floats.Clear `json:"clear"`
	Edge  float64      `json:"edge"`
}

// Stats contains run statistics.
type Stats struct {
	Floats   int           `json:"floats"`
	Bands    int           `json:"bands"`
	Probes   int           `json:"probes"`
	Visited  int           `json:"bands_visited"`
	Work     int           `json:"tree_work"`
	Duration time.Duration `json:"duration_ns"`
}

// OK reports whether every expectation held and every check passed.
func (r *Result) OK() bool { return len(r.Mismatches) == 0 }

// Err returns an errors.ErrCodeMismatch error listing the mismatches, or nil.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return errors.New(errors.ErrCodeMismatch, "%s: %d mismatches, first: %s", r.Name, len(r.Mismatches), r.Mismatches[0])
}

func (r *Result) mismatch(format string, args ...any) {
	r.Mismatches = append(r.Mismatches, fmt.Sprintf(format, args...))
}

// Run places every float of s and answers its clearance queries. Floats and
// clearances that miss their expectations are listed in Result.Mismatches;
// they do not make Run fail. Run returns an error if s is invalid or ctx is
// cancelled.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger()
	observability.Scenario().OnRunStart(ctx, s.Name, len(s.Floats))

	start := time.Now()
	res, err := r.run(ctx, s)
	if err == nil {
		res.Stats.Duration = time.Since(start)
	}
	placed := 0
	if res != nil {
		placed = len(res.Placements)
	}
	observability.Scenario().OnRunComplete(ctx, s.Name, placed, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	logger.Info("placed floats",
		"scenario", s.Name,
		"floats", res.Stats.Floats,
		"bands", res.Stats.Bands,
		"probes", res.Stats.Probes,
		"duration", res.Stats.Duration)
	for _, m := range res.Mismatches {
		logger.Warn("expectation failed", "scenario", s.Name, "detail", m)
	}
	return res, nil
}

func (r *Runner) run(ctx context.Context, s *Scenario) (*Result, error) {
	logger := r.logger()
	fc := floats.New(s.InlineSize)
	res := &Result{
		ID:         uuid.NewString(),
		Name:       s.Name,
		InlineSize: s.InlineSize,
		Placements: make([]Placed, 0, len(s.Floats)),
	}

	prevTop := 0.0
	for i, f := range s.Floats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		req := f.Request()
		if s.RespectOrder {
			req.Ceiling = max(req.Ceiling, prevTop)
		}
		p := fc.Place(req)
		prevTop = p.Origin.Y
		res.Placements = append(res.Placements, Placed{Label: f.Name(i), Placement: p})
		res.Stats.Probes += p.Probes
		res.Stats.Visited += p.Bands

		logger.Debug("placed float",
			"float", f.Name(i),
			"side", f.Side,
			"origin", p.Origin,
			"probes", p.Probes)

		if f.Expect != nil {
			want := floats.Origin{X: f.Expect[0], Y: f.Expect[1]}
			if p.Origin != want {
				res.mismatch("float %s placed at %v, want %v", f.Name(i), p.Origin, want)
			}
		}
		if r.KeepSteps {
			res.Steps = append(res.Steps, fc.Bands())
		}
	}

	for _, q := range s.Clearances {
		edge := fc.Clearance(q.Clear)
		res.Clearances = append(res.Clearances, Cleared{Clear: q.Clear, Edge: edge})
		if q.Expect != nil && edge != *q.Expect {
			res.mismatch("clearance %v is %g, want %g", q.Clear, edge, *q.Expect)
		}
	}

	res.Bands = fc.Bands()
	res.Stats.Floats = fc.Len()
	res.Stats.Bands = len(res.Bands)
	res.Stats.Work = fc.Work()
	if err := fc.Check(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "scenario %q", s.Name)
	}
	return res, nil
}

// Verify runs s and compares every placement and clearance with the
// brute-force placer. Differences are reported as mismatches alongside
// any failed expectations.
func (r *Runner) Verify(ctx context.Context, s *Scenario) (*Result, error) {
	start := time.Now()
	res, err := r.Run(ctx, s)
	if err != nil {
		observability.Scenario().OnVerifyComplete(ctx, s.Name, 0, time.Since(start), err)
		return nil, err
	}

	if ref, ok := compare(s, res); ok {
		for i, q := range s.Clearances {
			if want := ref.Clearance(q.Clear); res.Clearances[i].Edge != want {
				res.mismatch("clearance %v is %g, reference placer says %g", q.Clear, res.Clearances[i].Edge, want)
			}
		}
	}

	observability.Scenario().OnVerifyComplete(ctx, s.Name, len(res.Mismatches), time.Since(start), nil)
	r.logger().Debug("verified scenario", "scenario", s.Name, "mismatches", len(res.Mismatches))
	return res, nil
}

// compare replays s on the reference placer and records the first float
// placed differently. Later floats depend on earlier ones, so comparison stops
// there and compare reports false.
func compare(s *Scenario, res *Result) (*naive.Placer, bool) {
	ref := naive.New(s.InlineSize)
	prevTop := 0.0
	for i, f := range s.Floats {
		req := f.Request()
		if s.RespectOrder {
			req.Ceiling = max(req.Ceiling, prevTop)
		}
		want := ref.Place(req)
		prevTop = want.Origin.Y
		if got := res.Placements[i]; got.Origin != want.Origin {
			res.mismatch("float %s placed at %v, reference placer chose %v", got.Label, got.Origin, want.Origin)
			return ref, false
		}
	}
	return ref, true
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}
