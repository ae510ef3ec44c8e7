package validation

import (
	"regexp"
	"strings"
)

func Trim() StringRule {
	return func(value string) (string, string) {
		return strings.TrimSpace(value), ""
	}
}

func Lower() StringRule {
	return func(value string) (string, string) {
		return strings.ToLower(value), ""
	}
}

func NonEmpty(message string) StringRule {
	return func(value string) (string, string) {
		if value == "" {
			return value, message
		}
		return value, ""
	}
}

func MinLen(n int, message string) StringRule {
	return func(value string) (string, string) {
		if len(value) < n {
			return value, message
		}
		return value, ""
	}
}

func MaxLen(n int, message string) StringRule {
	return func(value string) (string, string) {
		if len(value) > n {
			return value, message
		}
		return value, ""
	}
}

func Matches(re *regexp.Regexp, message string) StringRule {
	return func(value string) (string, string) {
		if !re.MatchString(value) {
			return value, message
		}
		return value, ""
	}
}

func OneOf(allowed []string, message string) StringRule {
	return func(value string) (string, string) {
		for _, candidate := range allowed {
			if value == candidate {
				return value, ""
			}
		}
		return value, message
	}
}
