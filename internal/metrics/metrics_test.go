package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestRecordTransition(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordTransition("pushed")
	c.RecordTransition("pushed")
	c.RecordTransition("cleared")

	if got := counterValue(t, reg, "sinaw_navigation_transitions_total", "kind", "pushed"); got != 2 {
		t.Errorf("pushed = %v, want 2", got)
	}
	if got := counterValue(t, reg, "sinaw_navigation_transitions_total", "kind", "cleared"); got != 1 {
		t.Errorf("cleared = %v, want 1", got)
	}
}

func TestRecordMentor(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordMentor(OutcomeOK)
	c.RecordMentor(OutcomeRejectedBusy)
	c.RecordMentorLatency(250 * time.Millisecond)

	if got := counterValue(t, reg, "sinaw_mentor_requests_total", "outcome", OutcomeRejectedBusy); got != 1 {
		t.Errorf("rejected_busy = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "sinaw_mentor_latency_seconds" {
			found = true
			if n := mf.GetMetric()[0].GetHistogram().GetSampleCount(); n != 1 {
				t.Errorf("latency samples = %d, want 1", n)
			}
		}
	}
	if !found {
		t.Error("sinaw_mentor_latency_seconds not found")
	}
}

func TestHandler_Exposition(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	NewCollector(reg).RecordTransition("popped")

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `sinaw_navigation_transitions_total{kind="popped"} 1`) {
		t.Fatalf("exposition missing counter:\n%s", body)
	}
}
