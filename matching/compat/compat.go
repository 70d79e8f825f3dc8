// Package compat computes the lexical compatibility between a candidate CV
// and a job description.
package compat

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/decisionhr/talentrank/matching/text"
	"github.com/decisionhr/talentrank/recruitment/job"
)

// Profile is the precomputed lexical profile of one job: the unique words
// of its normalized description plus the rune count of the normalized text.
// The percentage denominator is the full normalized text length, spaces
// included, not the sum of the word-set lengths.
type Profile struct {
	Words      map[string]struct{}
	TotalChars int
}

// Score is the result of comparing one CV against a job profile.
type Score struct {
	CommonWords int     `json:"common_words"`
	Percentage  float64 `json:"percentage"`
}

// BuildProfile normalizes the job's concatenated textual fields
// (observations, title, activities, required skills, in that order) and
// derives its lexical profile. Jobs without any text yield an empty profile.
func BuildProfile(j *job.Job) Profile {
	normalized := text.Normalize(strings.Join(j.DescriptionParts(), " "))

	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		words[w] = struct{}{}
	}

	return Profile{
		Words:      words,
		TotalChars: utf8.RuneCountInString(normalized),
	}
}

// IsEmpty reports whether the profile carries no usable job text.
func (p Profile) IsEmpty() bool {
	return len(p.Words) == 0
}

// Score compares a candidate CV against the profile. An empty or
// non-textual CV scores (0, 0.0); a zero-length job text yields 0.0 percent.
func (p Profile) Score(cv string) Score {
	tokens := text.Tokens(cv)
	if len(tokens) == 0 {
		return Score{}
	}

	cvWords := make(map[string]struct{}, len(tokens))
	for _, w := range tokens {
		cvWords[w] = struct{}{}
	}

	common := 0
	commonChars := 0
	for w := range cvWords {
		if _, ok := p.Words[w]; ok {
			common++
			commonChars += utf8.RuneCountInString(w)
		}
	}

	pct := 0.0
	if p.TotalChars > 0 {
		pct = round2(float64(commonChars) / float64(p.TotalChars) * 100)
	}

	return Score{CommonWords: common, Percentage: pct}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
