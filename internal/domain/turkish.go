package domain

import "strings"

// Turkish-specific post-processing for Whisper output. Runs on collected
// segments before formatting. Fixes common Whisper errors for Turkish:
// missing question marks, garbled words, wrong special characters, and
// mangled proper nouns.

// Question particles in all vowel-harmony variants, extended forms first so
// the longest match wins.
var questionParticles = []string{
	"mısınız", "misiniz", "musunuz", "müsünüz",
	"mıyız", "miyiz", "muyuz", "müyüz",
	"mısın", "misin", "musun", "müsün",
	"mıdır", "midir", "mudur", "müdür",
	"mı", "mi", "mu", "mü",
}

// Known Whisper garble patterns for Turkish. Only high-confidence
// replacements, case-sensitive since Whisper output is typically lowercase.
var substitutions = [][2]string{
	{"göğlen", "görülen"},
	{"göğünmeyen", "görünmeyen"},
	{"göğlü", "görülü"},
	{"bilepini", "deneyimini"},
}

// Patterns where Whisper consistently picks the wrong Turkish special
// character.
var charFixes = [][2]string{
	{"hültür", "kültür"},
	{"kültüğü", "kültürü"},
}

// Proper nouns that Whisper garbles in Turkish audio.
var properNouns = [][2]string{
	{"Peter Dubek", "Peter Drucker"},
	{"Aydigur Şahina", "Edgar Schein"},
	{"Antağı de Sen", "Antoine de Saint"},
}

// PostProcess applies all Turkish post-processing passes to a segment's text.
func PostProcess(text string) string {
	text = applyPairs(text, substitutions)
	text = applyPairs(text, properNouns)
	text = applyPairs(text, charFixes)
	return fixQuestionMarks(text)
}

func applyPairs(text string, pairs [][2]string) string {
	for _, p := range pairs {
		text = strings.ReplaceAll(text, p[0], p[1])
	}
	return text
}

// fixQuestionMarks ensures a segment ending in a Turkish question particle
// ends with "?". The particle must be a standalone word at the end.
func fixQuestionMarks(text string) string {
	trimmed := strings.TrimRight(text, " \t")
	if strings.HasSuffix(trimmed, "?") {
		return text
	}

	stripped := strings.TrimRight(trimmed, ".!,;:")
	lower := strings.ToLower(stripped)

	for _, particle := range questionParticles {
		if !strings.HasSuffix(lower, particle) {
			continue
		}
		before := strings.TrimSuffix(lower, particle)
		if before == "" || strings.HasSuffix(before, " ") {
			return stripped + "?"
		}
	}

	return text
}
