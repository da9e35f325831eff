// Package ioformat implements the on-disk representations of an
// argumentation system: the JSON system description (spec §6) and the
// flat dataset-sample records the theory enumerator can emit for offline
// analysis.
package ioformat

import (
	"encoding/json"
	"fmt"
	"io"

	"argus/internal/argue"
)

// literalJSON mirrors LiteralSpec's exported surface for serialization.
type literalJSON struct {
	ID                   string   `json:"id"`
	Observable           bool     `json:"observable"`
	Topic                bool     `json:"topic"`
	DescriptionIfPresent string   `json:"description_if_present,omitempty"`
	DescriptionIfAbsent  string   `json:"description_if_absent,omitempty"`
	Question             string   `json:"question,omitempty"`
	Priority             int      `json:"priority,omitempty"`
	Contraries           []string `json:"contraries,omitempty"`
}

type ruleJSON struct {
	ID          int      `json:"id"`
	Antecedents []string `json:"antecedents"`
	Consequent  string   `json:"consequent"`
	Description string   `json:"description,omitempty"`
}

// systemJSON is the root document shape written by WriteSystem and read
// by ReadSystem.
type systemJSON struct {
	Literals []literalJSON `json:"literals"`
	Rules    []ruleJSON    `json:"rules"`
	Topics   []string      `json:"topics,omitempty"`
}

// WriteSystem serializes sys to w as indented JSON. Only positive
// literals are written; NewSystem derives each negated polarity back out
// on read, so the file stays half the size of the in-memory language map.
func WriteSystem(w io.Writer, sys *argue.System) error {
	doc := systemJSON{}
	for _, lit := range sys.Language {
		if lit.Negated {
			continue
		}
		lj := literalJSON{
			ID:                   lit.ID,
			Observable:           lit.Observable,
			DescriptionIfPresent: lit.DescriptionIfPresent,
			DescriptionIfAbsent:  lit.DescriptionIfAbsent,
			Question:             lit.Question,
			Priority:             lit.Priority,
		}
		for _, c := range lit.Contraries {
			if c.Equal(lit.Negation) {
				continue
			}
			lj.Contraries = append(lj.Contraries, c.ID)
		}
		doc.Literals = append(doc.Literals, lj)
	}
	for _, t := range sys.Topics {
		if !t.Negated {
			doc.Topics = append(doc.Topics, t.ID)
		}
	}
	for _, r := range sys.Rules {
		rj := ruleJSON{ID: r.ID, Consequent: r.Consequent.ID, Description: r.Description}
		for _, a := range r.Antecedents {
			rj.Antecedents = append(rj.Antecedents, a.ID)
		}
		doc.Rules = append(doc.Rules, rj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadSystem parses an argumentation system previously written by
// WriteSystem (or authored by hand in the same shape) and builds it via
// argue.NewSystem, so every structural invariant is re-validated on load.
func ReadSystem(r io.Reader) (*argue.System, error) {
	var doc systemJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode system json: %w", err)
	}

	topicSet := make(map[string]bool, len(doc.Topics))
	for _, t := range doc.Topics {
		topicSet[t] = true
	}

	specs := make([]argue.LiteralSpec, 0, len(doc.Literals))
	for _, lj := range doc.Literals {
		specs = append(specs, argue.LiteralSpec{
			ID:                   lj.ID,
			Observable:           lj.Observable,
			Topic:                topicSet[lj.ID] || lj.Topic,
			DescriptionIfPresent: lj.DescriptionIfPresent,
			DescriptionIfAbsent:  lj.DescriptionIfAbsent,
			Question:             lj.Question,
			Priority:             lj.Priority,
			Contraries:           lj.Contraries,
		})
	}

	rules := make([]argue.RuleSpec, 0, len(doc.Rules))
	for _, rj := range doc.Rules {
		rules = append(rules, argue.RuleSpec{
			ID:          rj.ID,
			Antecedents: rj.Antecedents,
			Consequent:  rj.Consequent,
			Description: rj.Description,
		})
	}

	return argue.NewSystem(specs, rules, doc.Topics)
}
