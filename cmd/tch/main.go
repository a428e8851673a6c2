package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	cl "touchline/internal/cli"
	"touchline/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.LoadCLIFromEnv()
	apiBase := cfg.APIBaseURL
	if prefs, err := cl.LoadPrefs(); err == nil && prefs.APIBaseURL != "" {
		apiBase = prefs.APIBaseURL
	}

	root := &cobra.Command{
		Use:          "tch",
		Short:        "Touchline football management client",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&apiBase, "api", apiBase, "API base URL")

	root.AddCommand(
		newCareerCmd(&apiBase),
		newTableCmd(&apiBase),
		newSquadCmd(&apiBase),
		newPlayCmd(&apiBase),
		newWatchCmd(&apiBase),
		newCancelCmd(&apiBase),
		newLastCmd(&apiBase),
		newBoardCmd(&apiBase),
		newTacticsCmd(&apiBase),
		newTransfersCmd(&apiBase),
		newAcademyCmd(&apiBase),
		newSaveCmd(&apiBase),
		newConfigCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(apiBase *string) *cl.Client {
	return cl.NewClient(strings.TrimRight(strings.TrimSpace(*apiBase), "/"))
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

func newCareerCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "career",
		Short: "Show your club and career status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			view, err := newClient(apiBase).Career(ctx)
			if err != nil {
				return err
			}
			renderCareer(view)
			return nil
		},
	}
}

func newTableCmd(apiBase *string) *cobra.Command {
	var tier int
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the league table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			client := newClient(apiBase)
			view, err := client.Career(ctx)
			if err != nil {
				return err
			}
			if tier == 0 {
				tier = view.Club.Tier
			}
			rows, err := client.Standings(ctx, tier)
			if err != nil {
				return err
			}
			renderTable(tier, rows, view.Club.Name)
			return nil
		},
	}
	cmd.Flags().IntVar(&tier, "tier", 0, "league tier (defaults to your club's)")
	return cmd
}

func newSquadCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "squad",
		Short: "Show the squad and starting lineup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			view, err := newClient(apiBase).Career(ctx)
			if err != nil {
				return err
			}
			renderSquad(view)
			return nil
		},
	}
}

func newPlayCmd(apiBase *string) *cobra.Command {
	var speed int
	var noWatch bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Kick off the next fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			if speed == 0 {
				if prefs, err := cl.LoadPrefs(); err == nil && prefs.MatchSpeed > 0 {
					speed = prefs.MatchSpeed
				} else {
					speed = 1
				}
			}
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			client := newClient(apiBase)
			out, err := client.StartMatch(ctx, speed)
			if err != nil {
				return err
			}
			if out.SeasonComplete {
				printSuccess("Season complete! Contracts aged, expired deals released, board bonus credited.")
				return nil
			}
			printInfo(fmt.Sprintf("Matchday underway against %s.", out.Opponent))
			if noWatch {
				return nil
			}
			return watchLive(cmd.Context(), client)
		},
	}
	cmd.Flags().IntVar(&speed, "speed", 0, "playback speed (1, 2 or 4 minutes per second)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "start the match without the live view")
	return cmd
}

func newWatchCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the match in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchLive(cmd.Context(), newClient(apiBase))
		},
	}
}

func newCancelCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Abandon the match in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			if err := newClient(apiBase).CancelMatch(ctx); err != nil {
				return err
			}
			printWarn("Match abandoned. Nothing was recorded.")
			return nil
		},
	}
}

func newLastCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show the last final score",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			result, err := newClient(apiBase).LastMatch(ctx)
			if err != nil {
				return err
			}
			renderResult(result)
			return nil
		},
	}
}

func newBoardCmd(apiBase *string) *cobra.Command {
	board := &cobra.Command{
		Use:   "board",
		Short: "Deal with the board and the job market",
	}
	board.AddCommand(
		&cobra.Command{
			Use:   "pledge",
			Short: "Promise the board results to keep your job",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				view, err := newClient(apiBase).Pledge(ctx)
				if err != nil {
					return err
				}
				printWarn(fmt.Sprintf("Pledge made. Security reset to %d; lose now and it costs double.", view.Club.JobSecurity))
				return nil
			},
		},
		&cobra.Command{
			Use:   "resign",
			Short: "Walk away from the club",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				view, err := newClient(apiBase).Resign(ctx)
				if err != nil {
					return err
				}
				printInfo("You resigned. The following clubs want to talk:")
				renderOffers(view.Offers)
				return nil
			},
		},
		&cobra.Command{
			Use:   "offers",
			Short: "List job offers on the table",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				view, err := newClient(apiBase).Career(ctx)
				if err != nil {
					return err
				}
				renderOffers(view.Offers)
				return nil
			},
		},
		&cobra.Command{
			Use:   "accept <offer-id>",
			Short: "Accept a job offer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				view, err := newClient(apiBase).AcceptOffer(ctx, args[0])
				if err != nil {
					return err
				}
				printSuccess(fmt.Sprintf("Welcome to %s. The squad travels with you.", view.Club.Name))
				return nil
			},
		},
	)
	return board
}

func newTacticsCmd(apiBase *string) *cobra.Command {
	var formation, mentality, focus string
	var starter, renew string
	cmd := &cobra.Command{
		Use:   "tactics",
		Short: "Adjust formation, mentality, focus and lineup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			client := newClient(apiBase)

			if starter != "" {
				view, err := client.ToggleStarter(ctx, starter)
				if err != nil {
					return err
				}
				printSuccess(fmt.Sprintf("Lineup updated: %d starters selected.", len(view.Club.Tactics.StartingXI)))
				return nil
			}
			if renew != "" {
				view, err := client.RenewContract(ctx, renew)
				if err != nil {
					return err
				}
				printSuccess(fmt.Sprintf("Contract renewed. Funds: %s.", money(view.Club.Funds)))
				return nil
			}
			if formation == "" && mentality == "" && focus == "" {
				var err error
				mentality, err = promptChoice("Mentality", []string{"defensive", "balanced", "attacking", "gung-ho"}, "balanced")
				if err != nil {
					return err
				}
				mentality = canonicalMentality(mentality)
			} else {
				mentality = canonicalMentality(mentality)
			}
			view, err := client.UpdateTactics(ctx, formation, mentality, canonicalFocus(focus))
			if err != nil {
				return err
			}
			t := view.Club.Tactics
			printSuccess(fmt.Sprintf("Tactics set: %s, %s, focus %s.", t.Formation, t.Mentality, t.Focus))
			return nil
		},
	}
	cmd.Flags().StringVar(&formation, "formation", "", "formation, e.g. 4-3-3")
	cmd.Flags().StringVar(&mentality, "mentality", "", "defensive, balanced, attacking or gung-ho")
	cmd.Flags().StringVar(&focus, "focus", "", "mixed, wings or central")
	cmd.Flags().StringVar(&starter, "starter", "", "toggle a player in or out of the lineup by id")
	cmd.Flags().StringVar(&renew, "renew", "", "renew a player's contract by id")
	return cmd
}

func newTransfersCmd(apiBase *string) *cobra.Command {
	var refresh bool
	var buy string
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "Browse and sign transfer targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			client := newClient(apiBase)

			if buy != "" {
				view, err := client.BuyPlayer(ctx, buy)
				if err != nil {
					return err
				}
				printSuccess(fmt.Sprintf("Signing completed. Funds: %s.", money(view.Club.Funds)))
				return nil
			}
			if refresh {
				targets, err := client.RefreshTransfers(ctx)
				if err != nil {
					return err
				}
				renderTransfers(targets)
				return nil
			}
			view, err := client.Career(ctx)
			if err != nil {
				return err
			}
			if len(view.Transfers) == 0 {
				printInfo("No targets scouted. Run `tch transfers --refresh`.")
				return nil
			}
			renderTransfers(view.Transfers)
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "scout a fresh shortlist")
	cmd.Flags().StringVar(&buy, "buy", "", "sign a shortlisted player by id")
	return cmd
}

func newAcademyCmd(apiBase *string) *cobra.Command {
	academy := &cobra.Command{
		Use:   "academy",
		Short: "Run the youth academy",
	}
	academy.AddCommand(
		&cobra.Command{
			Use:   "recruit",
			Short: "Bring in one youth prospect",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				view, err := newClient(apiBase).RecruitProspect(ctx)
				if err != nil {
					return err
				}
				latest := view.Club.Players[len(view.Club.Players)-1]
				printSuccess(fmt.Sprintf("%s joins the academy ranks (rating %d, potential %d).",
					latest.Name, latest.Rating, latest.Potential))
				return nil
			},
		},
		&cobra.Command{
			Use:   "upgrade",
			Short: "Upgrade the academy facility",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := withTimeout(cmd)
				defer cancel()
				view, err := newClient(apiBase).UpgradeAcademy(ctx)
				if err != nil {
					return err
				}
				printSuccess(fmt.Sprintf("Academy now level %d. Funds: %s.", view.Club.AcademyLevel, money(view.Club.Funds)))
				return nil
			},
		},
	)
	return academy
}

func newSaveCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the career now",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			if err := newClient(apiBase).Save(ctx); err != nil {
				return err
			}
			printSuccess("Career saved.")
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	var apiURL string
	var speed int
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Save local client preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := cl.LoadPrefs()
			if err != nil {
				return err
			}
			if apiURL != "" {
				prefs.APIBaseURL = strings.TrimRight(apiURL, "/")
			}
			if speed > 0 {
				prefs.MatchSpeed = speed
			}
			if err := cl.SavePrefs(prefs); err != nil {
				return err
			}
			printSuccess("Preferences saved.")
			return nil
		},
	}
	cmd.Flags().StringVar(&apiURL, "api-url", "", "default API base URL")
	cmd.Flags().IntVar(&speed, "speed", 0, "default playback speed")
	return cmd
}

func canonicalMentality(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "defensive":
		return "Defensive"
	case "attacking":
		return "Attacking"
	case "gung-ho", "gungho":
		return "Gung-Ho"
	case "balanced":
		return "Balanced"
	default:
		return v
	}
}

func canonicalFocus(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "mixed":
		return "Mixed"
	case "wings":
		return "Wings"
	case "central":
		return "Central"
	default:
		return v
	}
}
