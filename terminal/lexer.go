package terminal

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes (start at 1 to avoid clash with parsly.EOF).
const (
	whitespaceCode = iota + 1
	wordCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	wordToken       = parsly.NewToken(wordCode, "Word", &wordMatcher{})
)

// wordMatcher matches a run of non-whitespace bytes. There is no quoting or
// escaping: every byte that is not whitespace belongs to a word.
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if isWhitespace(cursor.Input[i]) {
			break
		}
		matched++
	}
	return matched
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// tokenize splits line on runs of whitespace.
func tokenize(line string) []string {
	cursor := parsly.NewCursor("", []byte(line), 0)
	var ret []string
	for cursor.HasMore() {
		matched := cursor.MatchAfterOptional(whitespaceToken, wordToken)
		if matched.Code != wordCode {
			break
		}
		ret = append(ret, matched.Text(cursor))
	}
	return ret
}
