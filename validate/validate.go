// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Title and item list bounds enforced at the input boundary. The core
// packages assume these have already been checked.
const (
	TitleMinLen = 3
	TitleMaxLen = 100
	MinItems    = 2
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTitleTooShort = fmt.Errorf("title must be at least %d characters", TitleMinLen)
	ErrTitleTooLong  = fmt.Errorf("title must be at most %d characters", TitleMaxLen)
	ErrTooFewItems   = fmt.Errorf("at least %d items are required to compare", MinItems)
	ErrEmptyItem     = errors.New("items must be non-empty")
	ErrDuplicateItem = errors.New("items must be unique")
)

// SplitItems parses newline-delimited item text: each line is trimmed and
// blank lines are dropped. This is how item lists arrive from files or stdin.
func SplitItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// Title checks the session title bounds.
func Title(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if n := utf8.RuneCountInString(title); n < TitleMinLen {
		return ErrTitleTooShort
	} else if n > TitleMaxLen {
		return ErrTitleTooLong
	}
	return nil
}

// Items checks that the item list has at least two unique non-empty entries.
func Items(items []string) error {
	if len(items) < MinItems {
		return ErrTooFewItems
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return ErrEmptyItem
		}
		if seen[item] {
			return fmt.Errorf("%w: %q appears more than once", ErrDuplicateItem, item)
		}
		seen[item] = true
	}
	return nil
}

// SessionInput checks a full create/edit form: title bounds plus item rules.
func SessionInput(title string, items []string) error {
	if err := Title(title); err != nil {
		return err
	}
	return Items(items)
}
