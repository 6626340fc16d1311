package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreIdenticalTextRanksHighest(t *testing.T) {
	engine := NewSimilarityEngine()

	jd := "senior backend engineer golang distributed systems kubernetes"
	corpus := []string{
		jd,
		jd, // identical to the JD
		"frontend react developer css animations",
	}

	sims, err := engine.Score(corpus)
	require.NoError(t, err)
	require.Len(t, sims, 2)

	assert.InDelta(t, 1.0, sims[0], 1e-9, "identical text should score maximum")
	assert.Greater(t, sims[0], sims[1])
	for _, sim := range sims {
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0+1e-9)
	}
}

func TestScoreOrdersByLexicalOverlap(t *testing.T) {
	engine := NewSimilarityEngine()

	corpus := []string{
		"golang developer distributed systems grpc postgres",
		"golang developer distributed systems grpc",
		"golang developer",
		"painter watercolor landscapes",
	}

	sims, err := engine.Score(corpus)
	require.NoError(t, err)
	require.Len(t, sims, 3)

	assert.Greater(t, sims[0], sims[1], "more overlap should score higher")
	assert.Greater(t, sims[1], sims[2], "some overlap should beat none")
	assert.InDelta(t, 0.0, sims[2], 1e-9, "disjoint vocabulary should score zero")
}

func TestScoreNoResumes(t *testing.T) {
	engine := NewSimilarityEngine()

	_, err := engine.Score([]string{"golang developer"})
	assert.ErrorIs(t, err, ErrNoResumes)

	_, err = engine.Score(nil)
	assert.ErrorIs(t, err, ErrNoResumes)
}

func TestScoreDegenerateVocabulary(t *testing.T) {
	engine := NewSimilarityEngine()

	// Every document reduces to nothing: stop words and single-char tokens.
	corpus := []string{
		"the and of skills experience",
		"a an the candidate job",
		"",
	}

	_, err := engine.Score(corpus)
	assert.ErrorIs(t, err, ErrDegenerateVocabulary)
}

func TestScoreEmptyResumeScoresZero(t *testing.T) {
	engine := NewSimilarityEngine()

	corpus := []string{
		"golang developer distributed systems",
		"",
		"golang developer",
	}

	sims, err := engine.Score(corpus)
	require.NoError(t, err)
	require.Len(t, sims, 2)

	assert.Zero(t, sims[0], "empty resume must score zero, not error")
	assert.Greater(t, sims[1], 0.0)
}

func TestTokenizeDropsStopWordsAndShortTokens(t *testing.T) {
	terms := tokenize("the senior go engineer with skills and experience in golang x")

	assert.Equal(t, []string{"senior", "engineer", "golang"}, terms)
}

func TestFitCountsDocumentFrequencies(t *testing.T) {
	tokenized := [][]string{
		{"golang", "grpc", "golang"},
		{"golang", "react"},
	}

	v := fit(tokenized)

	require.Len(t, v.vocab, 3)
	assert.Equal(t, 2, v.df[v.vocab["golang"]], "repeats within a doc count once")
	assert.Equal(t, 1, v.df[v.vocab["grpc"]])
	assert.Equal(t, 1, v.df[v.vocab["react"]])
}

func TestTransformNormalizesVectors(t *testing.T) {
	tokenized := [][]string{
		{"golang", "grpc"},
		{"golang", "react"},
	}

	v := fit(tokenized)
	vec := v.transform(tokenized[0])

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	assert.InDelta(t, 1.0, norm, 1e-9, "document vectors must be L2-normalized")

	assert.Empty(t, v.transform(nil), "empty document yields a zero vector")
}
