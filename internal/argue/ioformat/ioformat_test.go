package ioformat

import (
	"bytes"
	"testing"

	"argus/internal/argue"
	"argus/internal/argue/label"
)

func sampleSystem(t *testing.T) *argue.System {
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

func TestWriteReadSystemRoundTrip(t *testing.T) {
	sys := sampleSystem(t)
	var buf bytes.Buffer
	if err := WriteSystem(&buf, sys); err != nil {
		t.Fatalf("WriteSystem: %v", err)
	}

	got, err := ReadSystem(&buf)
	if err != nil {
		t.Fatalf("ReadSystem: %v", err)
	}
	if len(got.Language) != len(sys.Language) {
		t.Fatalf("language size mismatch: got %d want %d", len(got.Language), len(sys.Language))
	}
	if len(got.Rules) != len(sys.Rules) {
		t.Fatalf("rule count mismatch: got %d want %d", len(got.Rules), len(sys.Rules))
	}
	if _, err := got.GetQueryable("trigger"); err != nil {
		t.Fatalf("expected trigger to round-trip as observable: %v", err)
	}
}

func TestDatasetSampleRoundTrip(t *testing.T) {
	sys := sampleSystem(t)
	trigger, err := sys.GetQueryable("trigger")
	if err != nil {
		t.Fatalf("GetQueryable: %v", err)
	}
	theory, err := argue.NewTheory(sys, []*argue.Literal{trigger})
	if err != nil {
		t.Fatalf("NewTheory: %v", err)
	}

	ls := label.NewLabels()
	ls.SetLiteral(sys.Language["fraud"], label.New(false, true, false, false))
	sample := BuildDatasetSample(theory, ls)

	var buf bytes.Buffer
	if err := WriteDatasetSamples(&buf, []DatasetSample{sample}); err != nil {
		t.Fatalf("WriteDatasetSamples: %v", err)
	}

	got, err := ReadDatasetSamples(&buf)
	if err != nil {
		t.Fatalf("ReadDatasetSamples: %v", err)
	}
	if len(got) != 1 || got[0].TopicLabels["fraud"] != sample.TopicLabels["fraud"] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
