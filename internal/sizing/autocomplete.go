package sizing

import "fmt"

// autocompleteChars estimates the total characters stored across every gram
// generated for one value of an autocomplete field.
//
// edgeGram stores one prefix per length min..max, so the character count is
// the sum of the integers min..max.
//
// nGram stores every contiguous substring with length in [min, max] of an
// assumed average token of avg_chars characters (never less than max_grams).
// A token of length L has L-g+1 substrings of length g, so the total is
// sum over g of g*(L-g+1), evaluated in closed form with the sum-of-squares
// identity n(n+1)(2n+1)/6 instead of enumerating grams.
func autocompleteChars(f Field) (int, error) {
	minGrams, maxGrams := f.gramRange()
	if minGrams > maxGrams {
		return 0, fmt.Errorf("%w: min_grams=%d max_grams=%d", ErrInvalidGramRange, minGrams, maxGrams)
	}

	switch f.AutocompleteType {
	case EdgeGram:
		return (maxGrams - minGrams + 1) * (maxGrams + minGrams) / 2, nil

	case NGram:
		avgChars := f.AvgChars
		if avgChars == 0 {
			avgChars = defaultAvgChars
		}
		if avgChars < maxGrams {
			avgChars = maxGrams
		}

		term1 := (avgChars + 1) * (maxGrams - minGrams + 1) * (maxGrams + minGrams) / 2
		term2 := sumOfSquares(maxGrams)
		term3 := sumOfSquares(minGrams)
		return term1 - term2 + term3 - minGrams*minGrams, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAutocompleteType, f.AutocompleteType)
	}
}

// sumOfSquares returns 1² + 2² + ... + n².
func sumOfSquares(n int) int {
	return n * (n + 1) * (2*n + 1) / 6
}
