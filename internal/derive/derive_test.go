package derive_test

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/langproc/langproc/internal/derive"
	"github.com/langproc/langproc/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rules(pairs ...string) []*grammar.Rule {
	out := make([]*grammar.Rule, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, grammar.MustRule(pairs[i], pairs[i+1]))
	}

	return out
}

func anbnGrammar() *grammar.Grammar {
	return grammar.New(5, []rune("ab"), rules("S", "aSb", "S", "ab"))
}

var testGrammars = map[string]*grammar.Grammar{
	"anbn": anbnGrammar(),
	"balanced parentheses": grammar.New(8, []rune("()"), rules(
		"S", "(S)",
		"S", "SS",
		"S", "()",
	)),
	"equal a and b": grammar.New(6, []rune("ab"), rules(
		"S", "aB", "S", "bA",
		"A", "a", "A", "aS", "A", "bAA",
		"B", "b", "B", "bS", "B", "aBB",
	)),
	"epsilon": grammar.New(4, []rune("xy"), rules(
		"S", "xSyS",
		"S", "",
	)),
	"context sensitive": grammar.New(6, []rune("abc"), rules(
		"S", "aSBC", "S", "aBC",
		"CB", "BC",
		"aB", "ab", "bB", "bb", "bC", "bc", "cC", "cc",
	)),
}

func TestSequentialScenario(t *testing.T) {
	t.Parallel()

	words, err := derive.Collect(context.Background(), anbnGrammar(), derive.DefaultStart, derive.StrategySequential)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "aabb"}, words)
}

func TestConcurrentScenario(t *testing.T) {
	t.Parallel()

	words, err := derive.Collect(context.Background(), anbnGrammar(), derive.DefaultStart, derive.StrategyConcurrent)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ab", "aabb"}, words)
}

func TestStrategiesAgree(t *testing.T) {
	t.Parallel()

	for name, g := range testGrammars {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sequential, err := derive.Collect(context.Background(), g, derive.DefaultStart, derive.StrategySequential)
			require.NoError(t, err)

			for _, parallelism := range []int{1, 2, 8} {
				concurrent, err := derive.Collect(context.Background(), g, derive.DefaultStart, derive.StrategyConcurrent, derive.WithParallelism(parallelism))
				require.NoError(t, err)
				assert.ElementsMatch(t, sequential, concurrent, "parallelism %d", parallelism)
			}
		})
	}
}

func TestWordsRespectBound(t *testing.T) {
	t.Parallel()

	for name, g := range testGrammars {
		for _, strategy := range derive.AllStrategies {
			t.Run(name+"/"+string(strategy), func(t *testing.T) {
				t.Parallel()

				words, err := derive.Collect(context.Background(), g, derive.DefaultStart, strategy)
				require.NoError(t, err)
				require.NotEmpty(t, words)

				for _, word := range words {
					assert.LessOrEqual(t, grammar.Length(word), g.MaxLength(), word)
					assert.True(t, g.IsTerminalString(word), word)
				}
			})
		}
	}
}

// Rules rewrite every occurrence at once, so these are not the context-free languages
// of the same productions: S -> SS turns "SS" into "SSSS", never "(S)S", and
// S -> xSyS turns "xSyS" into "xxSySyxSyS", which is past the margin.
func TestKnownLanguages(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		grammar  string
		expected []string
	}{
		{"balanced parentheses", []string{"()", "(())", "()()", "((()))", "(()())", "(())(())", "()()()()", "(((())))", "((()()))"}},
		{"epsilon", []string{"", "xy"}},
	}

	for _, tc := range testCases {
		t.Run(tc.grammar, func(t *testing.T) {
			t.Parallel()

			for _, strategy := range derive.AllStrategies {
				words, err := derive.Collect(context.Background(), testGrammars[tc.grammar], derive.DefaultStart, strategy)
				require.NoError(t, err)
				assert.ElementsMatch(t, tc.expected, words, strategy)
			}
		})
	}
}

func TestContextSensitiveLanguage(t *testing.T) {
	t.Parallel()

	words, err := derive.Collect(context.Background(), testGrammars["context sensitive"], derive.DefaultStart, derive.StrategySequential)
	require.NoError(t, err)
	assert.Contains(t, words, "abc")
	assert.Contains(t, words, "aabbcc")
}

func TestEpsilonRemovesAllOccurrences(t *testing.T) {
	t.Parallel()

	g := grammar.New(5, []rune("ab"), rules(
		"S", "aAbA",
		"A", "",
	))

	for _, strategy := range derive.AllStrategies {
		words, err := derive.Collect(context.Background(), g, derive.DefaultStart, strategy)
		require.NoError(t, err)
		assert.Equal(t, []string{"ab"}, words, strategy)
	}
}

func TestDuplicateWordsAreEmittedPerDerivation(t *testing.T) {
	t.Parallel()

	g := grammar.New(3, []rune("a"), rules(
		"S", "A",
		"S", "B",
		"A", "a",
		"B", "a",
	))

	for _, strategy := range derive.AllStrategies {
		words, err := derive.Collect(context.Background(), g, derive.DefaultStart, strategy)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "a"}, words, strategy)
	}
}

func TestIntermediateStringsAreExpandedOnce(t *testing.T) {
	t.Parallel()

	// A and B both rewrite to C in the same stage; C must be expanded only once.
	g := grammar.New(3, []rune("c"), rules(
		"S", "A",
		"S", "B",
		"A", "C",
		"B", "C",
		"C", "c",
	))

	for _, strategy := range derive.AllStrategies {
		explorer, err := derive.New(strategy)
		require.NoError(t, err)

		var words []string

		var mu sync.Mutex

		err = explorer.Run(context.Background(), g, derive.DefaultStart, func(word string) {
			mu.Lock()
			defer mu.Unlock()

			words = append(words, word)
		})
		require.NoError(t, err)

		stats := explorer.Stats()
		assert.Equal(t, []string{"c"}, words, strategy)
		assert.Equal(t, int64(4), stats.Expanded, strategy)
		assert.Equal(t, int64(1), stats.Duplicates, strategy)
		assert.Equal(t, int64(0), stats.InFlight, strategy)
		assert.Equal(t, int64(0), explorer.InFlight(), strategy)
	}
}

func TestNoOpIsNeverScheduled(t *testing.T) {
	t.Parallel()

	// X never occurs, so the second rule is a no-op on every string.
	g := grammar.New(2, []rune("a"), rules(
		"S", "a",
		"X", "S",
	))

	for _, strategy := range derive.AllStrategies {
		explorer, err := derive.New(strategy)
		require.NoError(t, err)

		words, err := collect(explorer, g, derive.DefaultStart)
		require.NoError(t, err)

		assert.Equal(t, []string{"a"}, words, strategy)
		assert.Equal(t, int64(1), explorer.Stats().Expanded, strategy)
		assert.Equal(t, int64(0), explorer.Stats().Duplicates, strategy)
	}
}

func TestMarginDiscardsLongStrings(t *testing.T) {
	t.Parallel()

	// "bXXXXXXXX" is 9 characters: past 5+3, but within 5+4.
	g := grammar.New(5, []rune("b"), rules(
		"S", "bXXXXXXXX",
		"X", "",
	))

	for _, strategy := range derive.AllStrategies {
		words, err := derive.Collect(context.Background(), g, derive.DefaultStart, strategy)
		require.NoError(t, err)
		assert.Empty(t, words, strategy)

		words, err = derive.Collect(context.Background(), g, derive.DefaultStart, strategy, derive.WithMargin(4))
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, words, strategy)
	}
}

func TestSequentialEmissionOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	g := testGrammars["equal a and b"]

	first, err := derive.Collect(context.Background(), g, derive.DefaultStart, derive.StrategySequential)
	require.NoError(t, err)

	for range 5 {
		again, err := derive.Collect(context.Background(), g, derive.DefaultStart, derive.StrategySequential)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSequentialEmitsInputBeforeRuleOrder(t *testing.T) {
	t.Parallel()

	// Stage one holds "A" then "B"; both rules for "A" fire before any rule for "B".
	g := grammar.New(1, []rune("abcd"), rules(
		"S", "A",
		"S", "B",
		"A", "a",
		"B", "b",
		"A", "c",
		"B", "d",
	))

	words, err := derive.Collect(context.Background(), g, derive.DefaultStart, derive.StrategySequential)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, words)
}

func TestCustomStartString(t *testing.T) {
	t.Parallel()

	words, err := derive.Collect(context.Background(), anbnGrammar(), "aSb", derive.StrategySequential)
	require.NoError(t, err)
	assert.Equal(t, []string{"aabb"}, words)
}

func TestRunValidatesArguments(t *testing.T) {
	t.Parallel()

	for _, strategy := range derive.AllStrategies {
		err := derive.Run(context.Background(), nil, derive.DefaultStart, func(string) {}, strategy)
		require.ErrorIs(t, err, derive.ErrNilGrammar)

		err = derive.Run(context.Background(), anbnGrammar(), derive.DefaultStart, nil, strategy)
		require.ErrorIs(t, err, derive.ErrNilCallback)
	}

	err := derive.Run(context.Background(), anbnGrammar(), derive.DefaultStart, func(string) {}, derive.Strategy("random"))
	require.Error(t, err)
}

func TestCallbackPanicIsReturned(t *testing.T) {
	t.Parallel()

	for _, strategy := range derive.AllStrategies {
		err := derive.Run(context.Background(), anbnGrammar(), derive.DefaultStart, func(word string) {
			panic("cannot handle " + word)
		}, strategy)
		require.Error(t, err, strategy)
		assert.Contains(t, err.Error(), "cannot handle", strategy)
	}
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	strategy, err := derive.ParseStrategy("Sequential")
	require.NoError(t, err)
	assert.Equal(t, derive.StrategySequential, strategy)

	_, err = derive.ParseStrategy("depth-first")
	require.Error(t, err)
}

func TestSeenSetAddReportsFirstInsert(t *testing.T) {
	t.Parallel()

	set := derive.NewSeenSet()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		firsts int
	)

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if set.Add("aSb") {
				mu.Lock()
				firsts++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, firsts)
	assert.True(t, set.Contains("aSb"))
	assert.False(t, set.Contains("S"))
	assert.Equal(t, 1, set.Len())
}

func collect(explorer derive.Explorer, g *grammar.Grammar, start string) ([]string, error) {
	var (
		words []string
		mu    sync.Mutex
	)

	err := explorer.Run(context.Background(), g, start, func(word string) {
		mu.Lock()
		defer mu.Unlock()

		words = append(words, word)
	})

	slices.Sort(words)

	return words, err
}
