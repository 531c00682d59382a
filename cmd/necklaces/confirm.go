// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// confirm writes prompt to out and reads one line from in. Only "y" or
// "yes" (any case) accept; EOF or anything else declines. Pass a
// *bufio.Reader to keep unread input across several prompts.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return false, errors.Wrap(err, "write prompt")
	}

	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, "read answer")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
