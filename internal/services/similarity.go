package services

import (
	"errors"
	"math"
	"regexp"
)

var (
	// ErrNoResumes means the corpus held only the job description, so there
	// is nothing to score.
	ErrNoResumes = errors.New("corpus contains no resumes")

	// ErrDegenerateVocabulary means every document reduced to nothing after
	// stop-word removal. This is distinct from "all scores are zero" and has
	// to stay visible to callers.
	ErrDegenerateVocabulary = errors.New("empty vocabulary after stop-word removal")
)

// tokenPattern matches runs of word characters at least two long, over text
// that has already been normalized to lower-case ASCII.
var tokenPattern = regexp.MustCompile(`[a-z0-9_]{2,}`)

// SimilarityEngine scores each resume in a corpus against the job
// description at index 0. Vocabulary and weights are rebuilt per call;
// nothing is cached across requests.
type SimilarityEngine interface {
	Score(corpus []string) ([]float64, error)
}

type tfidfEngine struct{}

func NewSimilarityEngine() SimilarityEngine {
	return &tfidfEngine{}
}

// Score fits a TF-IDF weighting over the whole corpus (job description
// included, so rare terms shared between the JD and a resume are weighted up
// against generic boilerplate), then returns the cosine similarity of each
// resume vector against the JD vector, in corpus order. Results are in
// [0,1], one per resume.
func (e *tfidfEngine) Score(corpus []string) ([]float64, error) {
	if len(corpus) < 2 {
		return nil, ErrNoResumes
	}

	tokenized := make([][]string, len(corpus))
	for i, doc := range corpus {
		tokenized[i] = tokenize(doc)
	}

	v := fit(tokenized)
	if len(v.vocab) == 0 {
		return nil, ErrDegenerateVocabulary
	}

	jd := v.transform(tokenized[0])

	similarities := make([]float64, len(corpus)-1)
	for i := 1; i < len(corpus); i++ {
		similarities[i-1] = dot(jd, v.transform(tokenized[i]))
	}

	return similarities, nil
}

// tokenize splits normalized text into terms, dropping stop words.
func tokenize(text string) []string {
	var terms []string
	for _, tok := range tokenPattern.FindAllString(text, -1) {
		if stopWords[tok] {
			continue
		}
		terms = append(terms, tok)
	}
	return terms
}

// vectorizer holds the vocabulary and document frequencies fitted over one
// corpus. Fitting and transforming are split so the weighting is testable
// apart from scoring.
type vectorizer struct {
	vocab map[string]int
	df    []int
	docs  int
}

func fit(tokenized [][]string) *vectorizer {
	v := &vectorizer{
		vocab: make(map[string]int),
		docs:  len(tokenized),
	}

	for _, terms := range tokenized {
		seen := make(map[int]bool)
		for _, term := range terms {
			idx, ok := v.vocab[term]
			if !ok {
				idx = len(v.vocab)
				v.vocab[term] = idx
				v.df = append(v.df, 0)
			}
			if !seen[idx] {
				seen[idx] = true
				v.df[idx]++
			}
		}
	}

	return v
}

// transform produces the L2-normalized TF-IDF vector of one document:
// raw term frequency times smoothed inverse document frequency,
// ln((1+N)/(1+df)) + 1. An empty document yields a zero vector.
func (v *vectorizer) transform(terms []string) map[int]float64 {
	weights := make(map[int]float64)
	for _, term := range terms {
		if idx, ok := v.vocab[term]; ok {
			weights[idx]++
		}
	}

	var norm float64
	for idx, tf := range weights {
		idf := math.Log(float64(1+v.docs)/float64(1+v.df[idx])) + 1
		w := tf * idf
		weights[idx] = w
		norm += w * w
	}

	if norm == 0 {
		return weights
	}

	norm = math.Sqrt(norm)
	for idx := range weights {
		weights[idx] /= norm
	}

	return weights
}

// dot computes cosine similarity of two L2-normalized sparse vectors.
func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}

	var sum float64
	for idx, w := range a {
		sum += w * b[idx]
	}
	return sum
}
