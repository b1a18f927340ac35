package schema

import (
	"fmt"
	"sort"
	"strings"
)

// RequireKeys checks that data holds exactly the given keys: every key must
// be present and no other key may appear. The check is strict in both
// directions because downstream rendering assumes a fixed bucket layout.
func RequireKeys[V any](data map[string]V, keys ...string) error {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	var errs []error

	for _, k := range keys {
		if _, ok := data[k]; !ok {
			errs = append(errs, &ValidationError{Key: k, Reason: "required"})
		}
	}
	for k := range data {
		if !want[k] {
			errs = append(errs, &ValidationError{
				Key:    k,
				Reason: fmt.Sprintf("not one of %s", quoteList(keys)),
			})
		}
	}

	// Map iteration order is random; sort so the message is stable.
	sort.Slice(errs, func(i, j int) bool {
		return errs[i].Error() < errs[j].Error()
	})
	return Aggregate(errs)
}

// NonEmpty validates that a text token has content after trimming.
func NonEmpty(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Key: key, Reason: "must not be empty"}
	}
	return nil
}

// Positive validates that a count is at least one.
func Positive(key string, n int) error {
	if n < 1 {
		return &ValidationError{Key: key, Reason: "must be positive", Value: n}
	}
	return nil
}

// NonNegative validates that a number is zero or greater.
func NonNegative(key string, n int) error {
	if n < 0 {
		return &ValidationError{Key: key, Reason: "must not be negative", Value: n}
	}
	return nil
}

func quoteList(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(quoted, ", ")
}
