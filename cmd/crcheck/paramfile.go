// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"
)

// expandInputs applies the @paramfile convention: when any argument
// starts with '@', the named file's non-blank lines become the input
// list and all other arguments are ignored.
func expandInputs(args []string) ([]string, error) {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") {
			continue
		}
		name := arg[1:]
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read parameter file %s: %w", name, err)
		}
		var inputs []string
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				inputs = append(inputs, line)
			}
		}
		return inputs, nil
	}
	return args, nil
}
