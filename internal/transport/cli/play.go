package cli

import (
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

func Play(logger *slog.Logger, conf *config.Config, game usecase.GameUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: heredoc.Doc(`play opens the game page: the board, the status line and
			the list of moves.

			Click a cell or press 1-9 to place the next mark. Select an entry
			of the move list to go back to that move; Tab moves the keyboard
			focus between the board and the list, where the arrow keys and
			Enter pick a move. Press n for a new game and q or Esc to quit.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.New(logger, conf.UI, game).Run(cmd.Context())
		},
	}
}
