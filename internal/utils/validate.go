package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// GitHub login rules: alphanumeric with single interior hyphens.
var orgNamePattern = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`)

func ValidateOrgName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("organization name is empty")
	}
	if !orgNamePattern.MatchString(name) {
		return fmt.Errorf("invalid organization name: %s", name)
	}
	return nil
}
