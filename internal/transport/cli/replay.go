package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const jumpPrefix = "@"

var ErrInvalidStep = errors.New("invalid step")

type step struct {
	jump  bool
	value int
}

func Replay(game usecase.GameUseCase) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "replay [steps...]",
		Short: "Apply clicks and jumps and print the resulting page",
		Long: heredoc.Doc(`replay plays a game without the terminal page.

			Each step is either a cell index from 0 to 8, which clicks that
			cell, or @k, which jumps to move k of the history (@0 is the
			game start). Clicks on occupied cells or after a win are ignored,
			like on the game page.`),
		Example: "  tictactoe replay 4 0 8 @1 2",

		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}

			view := game.State()
			for _, s := range steps {
				if !s.jump {
					view = game.Click(s.value)
					continue
				}

				if view, err = game.JumpTo(s.value); err != nil {
					return err
				}
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			return writePage(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the page as JSON")

	return cmd
}

func parseSteps(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))

	for _, arg := range args {
		raw, jump := strings.CutPrefix(arg, jumpPrefix)

		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStep, arg)
		}

		steps = append(steps, step{jump: jump, value: value})
	}

	return steps, nil
}

func writeJSON(w io.Writer, view *usecase.View) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("failed to encode page: %w", err)
	}

	return nil
}

func writePage(w io.Writer, view *usecase.View) error {
	var page strings.Builder

	for row := range 3 {
		if row > 0 {
			page.WriteString("---+---+---\n")
		}

		cells := make([]string, 3)
		for col := range 3 {
			mark := view.Board[row*3+col]
			if mark == "" {
				mark = " "
			}
			cells[col] = " " + mark + " "
		}
		page.WriteString(strings.Join(cells, "|") + "\n")
	}

	page.WriteString(view.Status + "\n\n")

	for _, move := range view.Moves {
		cursor := "  "
		if move.Current {
			cursor = "> "
		}
		fmt.Fprintf(&page, "%s%d. %s\n", cursor, move.Move+1, move.Description)
	}

	if _, err := io.WriteString(w, page.String()); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	return nil
}
