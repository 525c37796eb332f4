package tokenizer

// English stop words to exclude from indexing and scoring
var englishStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "or": true, "we": true, "they": true, "will": true,
	"can": true, "if": true, "about": true, "into": true, "than": true,
}

// Japanese stop words: particles, copulas, and auxiliary verbs that carry no
// retrieval signal on their own
var japaneseStopwords = map[string]bool{
	"の": true, "に": true, "は": true, "を": true, "た": true, "が": true,
	"で": true, "て": true, "と": true, "し": true, "れ": true, "さ": true,
	"ある": true, "いる": true, "も": true, "する": true, "から": true,
	"な": true, "こと": true, "として": true, "い": true, "や": true,
	"など": true, "なっ": true, "ない": true, "この": true, "ため": true,
	"その": true, "あっ": true, "よう": true, "また": true, "もの": true,
	"です": true, "ます": true, "へ": true, "か": true, "だ": true,
	"これ": true, "によって": true, "により": true, "おり": true,
	"られ": true, "なり": true, "され": true, "まで": true, "ね": true,
}

func isStopword(token string) bool {
	return englishStopwords[token] || japaneseStopwords[token]
}
