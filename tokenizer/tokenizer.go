package tokenizer

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"
)

// Tokenizer converts free text into normalized tokens.
// It is safe for concurrent use once constructed.
type Tokenizer struct {
	segmenter *kagome.Tokenizer
	bigrams   bool
	logger    *slog.Logger
}

// Option configures a Tokenizer.
type Option func(*Tokenizer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tokenizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// WithCJKBigrams enables or disables emitting CJK character bigrams
// alongside segmented words. Default is enabled; disabling it reduces index
// size at the cost of recall on compound words.
func WithCJKBigrams(enabled bool) Option {
	return func(t *Tokenizer) error {
		t.bigrams = enabled
		return nil
	}
}

// New creates a new Tokenizer. Loading the morphological dictionary is
// relatively expensive, so a Tokenizer should be constructed once and shared.
func New(opts ...Option) (*Tokenizer, error) {
	segmenter, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, err
	}

	t := &Tokenizer{
		segmenter: segmenter,
		bigrams:   true,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Tokenize splits text into normalized tokens. It never fails; empty or
// degenerate input yields an empty slice. Stopwords are retained; use
// FilteredTokens for the stopword-free list the rest of the engine consumes.
func (t *Tokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var tokens []string
	if isCJKDominant(text) {
		tokens = t.segmentCJK(text)
	} else {
		tokens = splitLatin(text)
	}

	if t.bigrams {
		tokens = append(tokens, cjkBigrams(text)...)
	}

	filtered := tokens[:0]
	for _, token := range tokens {
		if keepToken(token) {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

// FilteredTokens returns Tokenize output with stopwords removed.
// This is the entry point used by the index builder, scorer, and
// autocomplete.
func (t *Tokenizer) FilteredTokens(text string) []string {
	tokens := t.Tokenize(text)
	filtered := tokens[:0]
	for _, token := range tokens {
		if !isStopword(token) {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

// segmentCJK runs the morphological analyzer over the whole text. The
// analyzer passes embedded Latin runs through as surface tokens, which are
// then normalized the same way as in the pure-Latin path.
func (t *Tokenizer) segmentCJK(text string) []string {
	morphemes := t.segmenter.Tokenize(text)
	tokens := make([]string, 0, len(morphemes))
	for _, m := range morphemes {
		surface := strings.ToLower(strings.TrimSpace(m.Surface))
		if surface == "" {
			continue
		}
		if isLatinRun(surface) {
			tokens = append(tokens, splitLatin(surface)...)
			continue
		}
		tokens = append(tokens, surface)
	}
	return tokens
}

// splitLatin splits on non-letter, non-digit boundaries and lower-cases.
func splitLatin(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, strings.ToLower(field))
	}
	return tokens
}

// cjkBigrams emits sliding two-character windows over each contiguous CJK
// run in the text.
func cjkBigrams(text string) []string {
	var bigrams []string
	var run []rune
	flush := func() {
		for i := 0; i+1 < len(run); i++ {
			bigrams = append(bigrams, string(run[i:i+2]))
		}
		run = run[:0]
	}
	for _, r := range text {
		if isCJK(r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()
	return bigrams
}

// keepToken drops tokens that carry no lexical content: empty strings and
// runs of punctuation, whitespace, or digits.
func keepToken(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
