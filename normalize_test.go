package quizdoc_test

import (
	"testing"

	"github.com/fwojciec/quizdoc"
	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace and newlines", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "This is a test.", quizdoc.CleanString("   This   is \n   a \n   test.  "))
	})

	t.Run("returns empty for blank input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, quizdoc.CleanString(" \n\t "))
	})
}

func TestCleanList(t *testing.T) {
	t.Parallel()

	t.Run("trims, drops empty items and joins lines", func(t *testing.T) {
		t.Parallel()

		got := quizdoc.CleanList([]string{"   item1   ", "  ", "item2   ", "item3\nitem4"})

		assert.Equal(t, []string{"item1", "item2", "item3 item4"}, got)
	})

	t.Run("removes duplicates keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		got := quizdoc.CleanList([]string{"apple", "banana", "cherry", " banana", "cherry "})

		assert.Equal(t, []string{"apple", "banana", "cherry"}, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := [][]string{
			nil,
			{""},
			{"a", "a", " a "},
			{"Paris", "Madrid", "Paris\n", "  Rome  ", ""},
		}
		for _, in := range inputs {
			once := quizdoc.CleanList(in)
			assert.Equal(t, once, quizdoc.CleanList(once))
			assert.NotContains(t, once, "")
		}
	})

	t.Run("does not modify the input", func(t *testing.T) {
		t.Parallel()

		in := []string{" a ", "a"}
		_ = quizdoc.CleanList(in)

		assert.Equal(t, []string{" a ", "a"}, in)
	})

	t.Run("returns empty non-nil slice for nil input", func(t *testing.T) {
		t.Parallel()

		got := quizdoc.CleanList(nil)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCleanMap(t *testing.T) {
	t.Parallel()

	got := quizdoc.CleanMap(map[string]string{"   key   ": "   value  ", "   key2   ": "   value2   ", "key3": " "})

	assert.Equal(t, map[string]string{"key": "value", "key2": "value2"}, got)
}

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	t.Run("splits after sentence punctuation", func(t *testing.T) {
		t.Parallel()

		got := quizdoc.SplitSentences("This is a sentence. This is a question? This is an exclamation!")

		assert.Equal(t, "This is a sentence.\nThis is a question?\nThis is an exclamation!\n", got)
	})

	t.Run("keeps punctuation inside parentheses", func(t *testing.T) {
		t.Parallel()

		got := quizdoc.SplitSentences("One (see p. 4). Two")

		assert.Equal(t, "One (see p. 4).\nTwo", got)
	})

	t.Run("leaves text without punctuation unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "no periods here", quizdoc.SplitSentences("no periods here"))
		assert.Empty(t, quizdoc.SplitSentences(""))
	})
}
