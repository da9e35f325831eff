package argue

import (
	"fmt"
	"sort"
)

// LiteralSpec describes one positive literal to be added to a System.
// NewSystem derives the negated polarity ("~"+ID) automatically and wires
// the default negation-contrary relationship; Contraries names any extra
// contrary literals beyond that default (spec §6's "Contraries" sheet).
type LiteralSpec struct {
	ID                   string
	Observable           bool
	Topic                bool
	DescriptionIfPresent string
	DescriptionIfAbsent  string
	Question             string
	Priority             int
	Contraries           []string
}

// RuleSpec describes one rule to be added to a System. Antecedents and
// Consequent name literals by identifier (either polarity).
type RuleSpec struct {
	ID          int
	Antecedents []string
	Consequent  string
	Description string
}

// System is an immutable argumentation system: a language of literals
// (every atom in both polarities), a list of rules, and a list of topic
// literals. NewSystem is the only constructor and enforces every
// structural invariant named in spec §3; nothing may mutate a System
// after it is returned.
type System struct {
	Language map[string]*Literal
	Rules    []*Rule
	Topics   []*Literal
}

// NewSystem builds and validates an argumentation system from its
// literal and rule specifications. It returns ErrMalformedSystem wrapped
// with context on any invariant violation: a duplicate identifier, a
// missing negation, or a rule referencing an identifier outside the
// language.
func NewSystem(literals []LiteralSpec, rules []RuleSpec, topicIDs []string) (*System, error) {
	sys := &System{Language: make(map[string]*Literal, len(literals)*2)}

	index := 0
	for _, spec := range literals {
		if spec.ID == "" || spec.ID[0] == '~' {
			return nil, fmt.Errorf("%w: literal id %q must be a positive identifier", ErrMalformedSystem, spec.ID)
		}
		if _, dup := sys.Language[spec.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate literal id %q", ErrMalformedSystem, spec.ID)
		}

		pos := &Literal{
			ID:                   spec.ID,
			Index:                index,
			Observable:           spec.Observable,
			Question:             spec.Question,
			Priority:             spec.Priority,
			DescriptionIfPresent: spec.DescriptionIfPresent,
			DescriptionIfAbsent:  spec.DescriptionIfAbsent,
		}
		index++
		neg := &Literal{
			ID:                   "~" + spec.ID,
			Index:                index,
			Negated:              true,
			Observable:           spec.Observable,
			Question:             spec.Question,
			Priority:             spec.Priority,
			DescriptionIfPresent: spec.DescriptionIfAbsent,
			DescriptionIfAbsent:  spec.DescriptionIfPresent,
		}
		index++

		pos.Negation = neg
		neg.Negation = pos
		pos.Contraries = append(pos.Contraries, neg)
		neg.Contraries = append(neg.Contraries, pos)

		sys.Language[pos.ID] = pos
		sys.Language[neg.ID] = neg

		if spec.Topic {
			sys.Topics = append(sys.Topics, pos)
		}
	}

	// Second pass: wire extra contraries now that every literal exists.
	for _, spec := range literals {
		lit := sys.Language[spec.ID]
		for _, contraryID := range spec.Contraries {
			contrary, ok := sys.Language[contraryID]
			if !ok {
				return nil, fmt.Errorf("%w: literal %q names unknown contrary %q", ErrMalformedSystem, spec.ID, contraryID)
			}
			if !lit.IsContraryOf(contrary) {
				lit.Contraries = append(lit.Contraries, contrary)
				contrary.Contraries = append(contrary.Contraries, lit)
			}
		}
	}

	for i, rspec := range rules {
		consequent, ok := sys.Language[rspec.Consequent]
		if !ok {
			return nil, fmt.Errorf("%w: rule %d consequent %q not in language", ErrMalformedSystem, rspec.ID, rspec.Consequent)
		}

		var antecedents []*Literal
		seen := make(map[*Literal]bool)
		for _, aID := range rspec.Antecedents {
			a, ok := sys.Language[aID]
			if !ok {
				return nil, fmt.Errorf("%w: rule %d antecedent %q not in language", ErrMalformedSystem, rspec.ID, aID)
			}
			if !seen[a] {
				seen[a] = true
				antecedents = append(antecedents, a)
			}
		}

		rule := &Rule{
			ID:          rspec.ID,
			Index:       i,
			Antecedents: antecedents,
			Consequent:  consequent,
			Description: rspec.Description,
		}
		sys.Rules = append(sys.Rules, rule)

		consequent.Children = append(consequent.Children, rule)
		for _, a := range antecedents {
			a.Parents = append(a.Parents, rule)
		}
	}

	isTopic := make(map[*Literal]bool, len(sys.Topics))
	for _, t := range sys.Topics {
		isTopic[t] = true
	}
	for _, id := range topicIDs {
		lit, ok := sys.Language[id]
		if !ok {
			return nil, fmt.Errorf("%w: topic %q not in language", ErrMalformedSystem, id)
		}
		if isTopic[lit] {
			continue
		}
		isTopic[lit] = true
		sys.Topics = append(sys.Topics, lit)
	}

	if err := sys.validate(); err != nil {
		return nil, err
	}
	return sys, nil
}

// validate re-checks the invariants NewSystem is supposed to have upheld
// by construction; it is cheap relative to labelling and catches any future
// mutation-path bug early rather than producing a silently wrong label.
func (s *System) validate() error {
	for id, lit := range s.Language {
		if lit.ID != id {
			return fmt.Errorf("%w: language key %q does not match literal id %q", ErrMalformedSystem, id, lit.ID)
		}
		if lit.Negation == nil {
			return fmt.Errorf("%w: literal %q has no negation", ErrMalformedSystem, lit.ID)
		}
		if lit.Negation.Negation != lit {
			return fmt.Errorf("%w: literal %q negation is not involutive", ErrMalformedSystem, lit.ID)
		}
		if !lit.IsContraryOf(lit.Negation) || !lit.Negation.IsContraryOf(lit) {
			return fmt.Errorf("%w: literal %q and its negation are not mutual contraries", ErrMalformedSystem, lit.ID)
		}
	}
	return nil
}

// GetQueryable looks up a queryable literal by identifier.
func (s *System) GetQueryable(id string) (*Literal, error) {
	lit, ok := s.Language[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
	}
	if !lit.Observable {
		return nil, fmt.Errorf("%w: %q is not observable", ErrUnknownIdentifier, id)
	}
	return lit, nil
}

// GetQueryables looks up a list of queryables by identifier, in order.
func (s *System) GetQueryables(ids []string) ([]*Literal, error) {
	out := make([]*Literal, 0, len(ids))
	for _, id := range ids {
		q, err := s.GetQueryable(id)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// Queryables returns every observable literal in the language.
func (s *System) Queryables() []*Literal {
	var out []*Literal
	for _, lit := range s.Language {
		if lit.Observable {
			out = append(out, lit)
		}
	}
	sortLiterals(out)
	return out
}

// PositiveQueryables returns every non-negated observable literal.
func (s *System) PositiveQueryables() []*Literal {
	var out []*Literal
	for _, lit := range s.Queryables() {
		if !lit.Negated {
			out = append(out, lit)
		}
	}
	return out
}

// QueryablesConsistent reports whether no two members of qs are
// contraries of each other (spec §4.A).
func QueryablesConsistent(qs []*Literal) bool {
	for i := 0; i < len(qs); i++ {
		for j := i + 1; j < len(qs); j++ {
			if qs[i].IsContraryOf(qs[j]) {
				return false
			}
		}
	}
	return true
}

func sortLiterals(ls []*Literal) {
	sort.Slice(ls, func(i, j int) bool { return ls[i].Less(ls[j]) })
}
