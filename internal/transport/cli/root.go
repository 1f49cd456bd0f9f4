package cli

import (
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

// Root - builds the tictactoe command tree. level is lowered to debug by --trace.
func Root(logger *slog.Logger, level *slog.LevelVar, conf *config.Config, game usecase.GameUseCase) *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe with move history",
		Long: heredoc.Doc(`tictactoe is a two player tic-tac-toe game played in the terminal.

			Every move is kept in a history list, and any earlier move can be
			made current again. Playing a new move from an earlier position
			drops the moves that came after it.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Flag("trace").Changed {
				level.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().BoolP("trace", "t", false, "Log debug information")

	root.AddCommand(Play(logger, conf, game))
	root.AddCommand(Replay(game))

	return root
}
