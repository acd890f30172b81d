/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"dirpx.dev/dxcatalog/dxcore/model"
	"dirpx.dev/dxcatalog/dxcore/model/catalog"
	"dirpx.dev/dxcatalog/internal/logger"
)

type codeInfo struct {
	Code     catalog.Code `json:"code" yaml:"code"`
	Depth    int          `json:"depth" yaml:"depth"`
	Segments []int        `json:"segments" yaml:"segments,flow"`
	Parent   catalog.Code `json:"parent" yaml:"parent"`
}

func newCodeInfo(c catalog.Code) codeInfo {
	segments := c.Segments()
	if segments == nil {
		segments = []int{}
	}
	return codeInfo{Code: c, Depth: c.Depth(), Segments: segments, Parent: c.Parent()}
}

type codeResult struct {
	Code catalog.Code `json:"code" yaml:"code"`
}

type compareResult struct {
	A     catalog.Code `json:"a" yaml:"a"`
	B     catalog.Code `json:"b" yaml:"b"`
	Order int          `json:"order" yaml:"order"`
}

type siblingsResult struct {
	A          catalog.Code `json:"a" yaml:"a"`
	B          catalog.Code `json:"b" yaml:"b"`
	SameFolder bool         `json:"sameFolder" yaml:"sameFolder"`
}

// display renders the root code as "root" so text output never prints an
// empty line for it.
func display(c catalog.Code) string {
	if c.IsRoot() {
		return "root"
	}
	return c.String()
}

func (a *app) writeCode(cmd *cobra.Command, c catalog.Code) error {
	logger.FromContext(cmd.Context()).V(1).Info("derived", "code", c)
	return a.format.write(cmd.OutOrStdout(), codeResult{Code: c}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, display(c))
		return err
	})
}

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse CODE...",
		Short: "Normalize codes and show their structure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := catalog.ParseAll(args...)
			if err != nil {
				return err
			}

			infos := make([]codeInfo, len(codes))
			for i, c := range codes {
				infos[i] = newCodeInfo(c)
			}

			return a.format.write(cmd.OutOrStdout(), infos, func(w io.Writer) error {
				for _, info := range infos {
					if _, err := fmt.Fprintf(w, "%s\tdepth=%d\tparent=%s\n",
						display(info.Code), info.Depth, display(info.Parent)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Print -1, 0 or 1 as A sorts before, equal to or after B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := catalog.ParseAll(args...)
			if err != nil {
				return err
			}

			res := compareResult{A: codes[0], B: codes[1], Order: catalog.Compare(codes[0], codes[1])}
			return a.format.write(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Order)
				return err
			})
		},
	}
}

func newSortCommand(a *app) *cobra.Command {
	var reverse, skipRoot bool

	cmd := &cobra.Command{
		Use:   "sort CODE...",
		Short: "Print codes in catalog order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := catalog.ParseAll(args...)
			if err != nil {
				return err
			}

			if skipRoot {
				codes = model.FilterZero(codes)
			}
			catalog.Sort(codes)
			if reverse {
				slices.Reverse(codes)
			}
			logger.FromContext(cmd.Context()).V(1).Info("sorted", "count", len(codes))

			return a.format.write(cmd.OutOrStdout(), codes, func(w io.Writer) error {
				for _, c := range codes {
					if _, err := fmt.Fprintln(w, display(c)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "print the deepest and last codes first")
	cmd.Flags().BoolVar(&skipRoot, "skip-root", false, "drop root codes from the output")
	return cmd
}

func newParentCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parent CODE",
		Short: "Print the code one level up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Parse(args[0])
			if err != nil {
				return err
			}
			return a.writeCode(cmd, c.Parent())
		},
	}
}

func newRelativeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "relative ELDER YOUNGER",
		Short: "Print YOUNGER expressed relative to its ancestor ELDER",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := catalog.ParseAll(args...)
			if err != nil {
				return err
			}
			rel, err := catalog.Relative(codes[0], codes[1])
			if err != nil {
				return err
			}
			return a.writeCode(cmd, rel)
		},
	}
}

func newAppendCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "append CODE CHILD",
		Short: "Print CHILD nested under CODE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := catalog.ParseAll(args...)
			if err != nil {
				return err
			}
			joined, err := codes[0].Append(codes[1])
			if err != nil {
				return err
			}
			return a.writeCode(cmd, joined)
		},
	}
}

func newOffsetCommand(a *app) *cobra.Command {
	var by int

	cmd := &cobra.Command{
		Use:   "offset CODE --by N",
		Short: "Print the sibling N positions away",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Parse(args[0])
			if err != nil {
				return err
			}
			sibling, err := c.Offset(by)
			if err != nil {
				return err
			}
			return a.writeCode(cmd, sibling)
		},
	}

	cmd.Flags().IntVar(&by, "by", 1, "distance to the sibling; negative moves backwards")
	return cmd
}

func newNextCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next CODE",
		Short: "Print the next sibling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Parse(args[0])
			if err != nil {
				return err
			}
			next, err := c.Increment()
			if err != nil {
				return err
			}
			return a.writeCode(cmd, next)
		},
	}
}

func newSiblingsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "siblings A B",
		Short: "Report whether A and B share a parent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := catalog.ParseAll(args...)
			if err != nil {
				return err
			}

			res := siblingsResult{A: codes[0], B: codes[1], SameFolder: catalog.SameFolder(codes[0], codes[1])}
			return a.format.write(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.SameFolder)
				return err
			})
		},
	}
}

func newChildCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "child PARENT [EXISTING...]",
		Short: "Print the first free child code under PARENT",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := catalog.ParseAll(args...)
			if err != nil {
				return err
			}
			child, err := catalog.NextChild(codes[0], codes[1:])
			if err != nil {
				return err
			}
			return a.writeCode(cmd, child)
		},
	}
}
