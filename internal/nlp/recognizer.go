// Package nlp provides the named-entity recognition and tokenization
// capability used by the analyzer. A Recognizer is built once at process
// start and shared read-only between concurrent analyses.
package nlp

import "context"

// Entity labels understood by the analyzer. Recognizers may emit others,
// which are ignored downstream.
const (
	LabelOrg     = "ORG"
	LabelGPE     = "GPE"
	LabelLoc     = "LOC"
	LabelProduct = "PRODUCT"
	LabelEvent   = "EVENT"
	LabelNORP    = "NORP"
	LabelPerson  = "PERSON"
)

// Coarse part-of-speech tags.
const (
	POSNoun  = "NOUN"
	POSPropn = "PROPN"
	POSAdj   = "ADJ"
	POSVerb  = "VERB"
	POSAdv   = "ADV"
	POSNum   = "NUM"
	POSPunct = "PUNCT"
	POSSpace = "SPACE"
	POSOther = "X"
)

// Entity is a labelled span of the input text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Token is a single lemmatized, POS-tagged token.
type Token struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	IsStop  bool   `json:"is_stop"`
	IsPunct bool   `json:"is_punct"`
	IsSpace bool   `json:"is_space"`
}

// Recognizer yields entity spans and tagged tokens for raw text.
// Implementations must be safe for concurrent use.
type Recognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
	Tokens(ctx context.Context, text string) ([]Token, error)
}

// Describer is implemented by recognizers that can report what backs them.
type Describer interface {
	Describe() map[string]any
}
