// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getFlagString fetches a required/optional string flag, fatal on parse error.
func getFlagString(cmd *cobra.Command, name string) string {
	s, err := cmd.Flags().GetString(name)
	checkError(err)
	return s
}

// getFlagBool fetches a bool flag, fatal on parse error.
func getFlagBool(cmd *cobra.Command, name string) bool {
	b, err := cmd.Flags().GetBool(name)
	checkError(err)
	return b
}

// getFlagInt fetches an int flag, fatal on parse error.
func getFlagInt(cmd *cobra.Command, name string) int {
	i, err := cmd.Flags().GetInt(name)
	checkError(err)
	return i
}

// getFlagPositiveInt fetches an int flag and requires it be > 0.
func getFlagPositiveInt(cmd *cobra.Command, name string) int {
	i := getFlagInt(cmd, name)
	if i <= 0 {
		checkError(fmt.Errorf("value of flag --%s should be a positive integer", name))
	}
	return i
}
