package ioformat

import (
	"encoding/json"
	"io"

	"argus/internal/argue"
	"argus/internal/argue/label"
)

// DatasetSample is one flattened labelling observation: the knowledge
// base that produced it and the resulting label for each queryable
// topic, keyed by literal identifier so it survives JSON round-tripping
// without needing the original System in hand to decode.
type DatasetSample struct {
	KnowledgeBase []string          `json:"knowledge_base"`
	TopicLabels   map[string]string `json:"topic_labels"`
}

// BuildDatasetSample flattens a theory and its topic labels into a
// DatasetSample record, the shape WriteDatasetSamples writes one line of
// per sample.
func BuildDatasetSample(theory *argue.Theory, ls *label.Labels) DatasetSample {
	sample := DatasetSample{TopicLabels: make(map[string]string, len(theory.System.Topics))}
	for _, lit := range theory.KnowledgeBase {
		sample.KnowledgeBase = append(sample.KnowledgeBase, lit.ID)
	}
	for _, topic := range theory.System.Topics {
		sample.TopicLabels[topic.ID] = ls.Literal(topic).String()
	}
	return sample
}

// WriteDatasetSamples writes samples as newline-delimited JSON, one
// object per line, so large datasets can be streamed without holding the
// whole file in memory.
func WriteDatasetSamples(w io.Writer, samples []DatasetSample) error {
	enc := json.NewEncoder(w)
	for _, s := range samples {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}

// ReadDatasetSamples parses newline-delimited JSON written by
// WriteDatasetSamples.
func ReadDatasetSamples(r io.Reader) ([]DatasetSample, error) {
	dec := json.NewDecoder(r)
	var out []DatasetSample
	for dec.More() {
		var s DatasetSample
		if err := dec.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
