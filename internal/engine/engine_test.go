package engine

import (
	"context"
	"os"
	"testing"

	"go.uber.org/goleak"

	"argus/internal/argue"
)

func TestMain(m *testing.M) {
	os.Exit(goleak.VerifyTestMain(m))
}

func testSystem(t *testing.T) *argue.System {
	t.Helper()
	sys, err := argue.NewSystem(
		[]argue.LiteralSpec{
			{ID: "trigger", Observable: true},
			{ID: "fraud", Topic: true},
		},
		[]argue.RuleSpec{{ID: 1, Antecedents: []string{"trigger"}, Consequent: "fraud"}},
		[]string{"fraud"},
	)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys
}

func TestNewEngineRejectsUnknownDefault(t *testing.T) {
	sys := testSystem(t)
	_, err := NewEngine(sys, Config{Default: "bogus"})
	if err == nil {
		t.Fatal("expected error for unknown default labeler kind")
	}
}

func TestUpdateLabelsTrigger(t *testing.T) {
	sys := testSystem(t)
	e, err := NewEngine(sys, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ls, err := e.Update(context.Background(), []string{"trigger"}, "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	fraud := sys.Language["fraud"]
	if !ls.Literal(fraud).D() {
		t.Errorf("expected fraud Defended, got %v", ls.Literal(fraud))
	}
}

func TestUpdateIgnoresUnknownIdentifier(t *testing.T) {
	sys := testSystem(t)
	e, err := NewEngine(sys, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ls, err := e.Update(context.Background(), []string{"nonexistent"}, "")
	if err != nil {
		t.Fatalf("expected unknown identifier to be ignored, got %v", err)
	}
	if fraud := sys.Language["fraud"]; !ls.Literal(fraud).U() {
		t.Errorf("with nothing observed fraud should still be possibly Unsatisfiable, got %v", ls.Literal(fraud))
	}
}

func TestLabelBatchReturnsResultsInOrder(t *testing.T) {
	sys := testSystem(t)
	e, err := NewEngine(sys, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	reqs := []BatchRequest{
		{Index: 0, Observations: []string{"trigger"}},
		{Index: 1, Observations: nil},
	}
	results, err := LabelBatch(context.Background(), e, reqs, 2)
	if err != nil {
		t.Fatalf("LabelBatch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	fraud := sys.Language["fraud"]
	if !results[0].Labels.Literal(fraud).D() {
		t.Errorf("request 0 should show fraud Defended, got %v", results[0].Labels.Literal(fraud))
	}
	if !results[1].Labels.Literal(fraud).U() {
		t.Errorf("request 1 (no observations) should still show fraud possibly Unsatisfiable, got %v", results[1].Labels.Literal(fraud))
	}
}
