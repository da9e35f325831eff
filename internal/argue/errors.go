package argue

import "errors"

// Sentinel errors for the argumentation domain model, matching the error
// kinds named in the stability-labelling specification.
var (
	// ErrMalformedSystem is returned when an argumentation system fails one
	// of its structural invariants: a duplicate identifier, a missing
	// negation, or an antecedent, consequent, contrary or topic outside the
	// language. Rule preferences are not modelled, so none are checked.
	ErrMalformedSystem = errors.New("malformed argumentation system")

	// ErrInconsistentKnowledgeBase is returned only by constructors that
	// refuse to build a theory from a knowledge base containing contrary
	// observations. The engine's public Update path never returns this; it
	// silently filters instead.
	ErrInconsistentKnowledgeBase = errors.New("inconsistent knowledge base")

	// ErrUnknownIdentifier is returned when a caller asks for a queryable
	// that is not present in the system's language.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrGeneratorExhausted is reserved for the random/layered dataset
	// generator named in the specification's error-kind list. No generator
	// ships in this module (it is an out-of-scope external collaborator),
	// so this sentinel is never raised; it exists for API completeness.
	ErrGeneratorExhausted = errors.New("generator exhausted its retry budget")
)
