package scenario

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/floats"
	"github.com/matzehuels/floatzone/pkg/observability"
)

func quietRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no scenarios in testdata")
	}
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			res, err := quietRunner().Verify(context.Background(), s)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if !res.OK() {
				t.Errorf("mismatches:\n%v", res.Mismatches)
			}
			if len(res.Placements) != len(s.Floats) {
				t.Errorf("%d placements, want %d", len(res.Placements), len(s.Floats))
			}
		})
	}
}

func TestRunRespectOrder(t *testing.T) {
	s := &Scenario{
		InlineSize: 100,
		Floats: []Float{
			{Side: floats.Left, Width: 60, Height: 20},
			{Side: floats.Left, Width: 60, Height: 20},
			{Label: "late", Side: floats.Right, Width: 30, Height: 10, Expect: &[2]float64{70, 20}},
		},
		RespectOrder: true,
	}
	res, err := quietRunner().Run(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK() {
		t.Fatalf("mismatches: %v", res.Mismatches)
	}

	// Without the ordering rule the last float fits beside the first one.
	s.RespectOrder = false
	res, err = quietRunner().Run(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Placements[2].Origin; got != (floats.Origin{X: 70, Y: 0}) {
		t.Errorf("origin = %v, want (70, 0)", got)
	}
	if err := res.Err(); !errors.Is(err, errors.ErrCodeMismatch) {
		t.Errorf("Err() = %v, want code %v", err, errors.ErrCodeMismatch)
	}
}

func TestRunReportsMismatches(t *testing.T) {
	wrong := 7.0
	s := &Scenario{
		Name:       "wrong",
		InlineSize: 100,
		Floats: []Float{
			{Label: "a", Side: floats.Left, Width: 10, Height: 10, Expect: &[2]float64{0, 0}},
			{Label: "b", Side: floats.Right, Width: 10, Height: 10, Expect: &[2]float64{0, 0}},
		},
		Clearances: []Query{{Clear: floats.ClearLeft, Expect: &wrong}},
	}
	res, err := quietRunner().Run(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"float b placed at (90, 0), want (0, 0)",
		"clearance left is 10, want 7",
	}
	if diff := cmp.Diff(want, res.Mismatches); diff != "" {
		t.Errorf("mismatches (-want +got):\n%s", diff)
	}
}

func TestRunRejectsInvalidScenario(t *testing.T) {
	s := &Scenario{InlineSize: 10, Floats: []Float{{Side: floats.Left, Width: 20, Height: 1}}}
	_, err := quietRunner().Run(context.Background(), s)
	if !errors.Is(err, errors.ErrCodeInvalidScenario) {
		t.Errorf("Run() error = %v, want code %v", err, errors.ErrCodeInvalidScenario)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := quietRunner().Run(ctx, Random(1, 10, 100)); err != context.Canceled {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}

func TestRunKeepSteps(t *testing.T) {
	r := quietRunner()
	r.KeepSteps = true
	s := Random(3, 25, 200)
	res, err := r.Run(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Steps) != len(s.Floats) {
		t.Fatalf("%d steps, want %d", len(res.Steps), len(s.Floats))
	}
	if diff := cmp.Diff(res.Bands, res.Steps[len(res.Steps)-1]); diff != "" {
		t.Errorf("last step differs from final bands:\n%s", diff)
	}
}

func TestVerifyRandom(t *testing.T) {
	r := quietRunner()
	for seed := range uint64(30) {
		s := Random(seed, 200, 100+int(seed)*20)
		s.RespectOrder = seed%2 == 0
		res, err := r.Verify(context.Background(), s)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !res.OK() {
			t.Errorf("seed %d: %v", seed, res.Mismatches)
		}
	}
}

type recordingHooks struct {
	observability.NoopScenarioHooks
	started, completed, verified []string
}

func (h *recordingHooks) OnRunStart(_ context.Context, name string, _ int) {
	h.started = append(h.started, name)
}

func (h *recordingHooks) OnRunComplete(_ context.Context, name string, _ int, _ time.Duration, _ error) {
	h.completed = append(h.completed, name)
}

func (h *recordingHooks) OnVerifyComplete(_ context.Context, name string, _ int, _ time.Duration, _ error) {
	h.verified = append(h.verified, name)
}

func TestScenarioHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetScenarioHooks(hooks)
	defer observability.Reset()

	r := quietRunner()
	if _, err := r.Run(context.Background(), Random(1, 5, 100)); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Verify(context.Background(), Random(2, 5, 100)); err != nil {
		t.Fatal(err)
	}

	want := &recordingHooks{
		started:   []string{"random-1", "random-2"},
		completed: []string{"random-1", "random-2"},
		verified:  []string{"random-2"},
	}
	if diff := cmp.Diff(want, hooks, cmp.AllowUnexported(recordingHooks{})); diff != "" {
		t.Errorf("hook calls (-want +got):\n%s", diff)
	}
}

func TestWriteResult(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "two-columns.toml"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := quietRunner().Run(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "result.json")
	if err := WriteResultFile(res, path); err != nil {
		t.Fatalf("WriteResultFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"bottom": null`)) {
		t.Errorf("unbounded band not written as null:\n%s", data)
	}

	got, err := ReadResult(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadResult: %v", err)
	}
	if diff := cmp.Diff(res, got); diff != "" {
		t.Errorf("result changed (-want +got):\n%s", diff)
	}
}
