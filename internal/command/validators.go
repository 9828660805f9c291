// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"

	"github.com/staranto/tabhistgo/codec"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "csv", "json", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func MethodValidator(value any) error {
	for _, m := range codec.Methods() {
		if m == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", codec.Methods())
}

func InputValidator(value any) error {
	var validInputFlagValues = []string{"csv", "json"}
	for _, v := range validInputFlagValues {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", validInputFlagValues)
}

// ExpireValidator allows any nonnegative number of seconds plus the -1
// never-expires sentinel.
func ExpireValidator(value any) error {
	if value.(int64) < -1 {
		return errors.New("must be -1 (never) or a nonnegative number of seconds")
	}
	return nil
}
