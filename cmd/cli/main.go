package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oakfieldcare/wardroster/internal/config"
	"github.com/oakfieldcare/wardroster/pkg/core/roster"
	"github.com/oakfieldcare/wardroster/pkg/core/services"
	"github.com/oakfieldcare/wardroster/pkg/postgres"
	"github.com/oakfieldcare/wardroster/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg    *config.Config
	policy roster.Policy
	store  *postgres.DB
	logger *zap.Logger
	ctx    context.Context
}

var (
	env     string
	verbose bool
	app     *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wardroster",
		Short: "Ward roster CLI - rank and assign staff to shifts",
		Long:  `A CLI tool for managing ward shifts: generating them from templates, ranking candidates, and recording assignments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.logger != nil {
					app.logger.Sync()
				}
				if app.store != nil {
					app.store.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(listShiftsCmd())
	rootCmd.AddCommand(listStaffCmd())
	rootCmd.AddCommand(rankCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(assignCmd())
	rootCmd.AddCommand(generateShiftsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and database
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.New(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting wardroster", zap.String("environment", env))

	app.cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.policy = app.cfg.BuildPolicy()
	app.logger.Debug("Configuration loaded", zap.String("organisation_id", app.cfg.OrganisationID))

	if app.cfg.DatabaseURL == "" {
		return fmt.Errorf("WARDROSTER_DATABASE_URL is not set")
	}

	app.store, err = postgres.NewDB(app.ctx, app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.logger.Debug("Database connection established")

	return nil
}

// Command definitions

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.store.RunMigrations(app.ctx); err != nil {
				return err
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}

func listShiftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-shifts",
		Short: "List shifts for the configured organisation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := app.store.ListShifts(app.ctx, app.cfg.OrganisationID)
			if err != nil {
				return fmt.Errorf("failed to list shifts: %w", err)
			}

			fmt.Printf("\nFound %d shifts:\n\n", len(shifts))
			for _, s := range shifts {
				fmt.Printf("- %s  %s %s-%s  %s / %s  [%d/%d filled, %s]\n",
					s.ID, s.ShiftDate, s.StartTime, s.EndTime,
					s.Ward, s.RoleRequired, s.FilledCount, s.RequiredCount, s.Status)
			}
			return nil
		},
	}
}

func listStaffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-staff",
		Short: "List staff for the configured organisation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := app.store.ListStaff(app.ctx, app.cfg.OrganisationID)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			fmt.Printf("\nFound %d staff members:\n\n", len(staff))
			for _, s := range staff {
				activeNote := ""
				if !s.Active {
					activeNote = " [inactive]"
				}
				fmt.Printf("- %s %s (%s) - %s, %s, ward %s%s\n",
					s.FirstName, s.LastName, s.ID, s.Role, s.EmploymentTier, s.HomeWard, activeNote)
			}
			return nil
		},
	}
}

func rankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <shift_id>",
		Short: "Rank the best candidates for a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 {
				limit = app.cfg.RankLimit
			}

			result, err := services.RankCandidatesForShift(app.ctx, app.store, app.logger, app.policy, args[0], limit)
			if err != nil {
				return err
			}

			s := result.Shift
			fmt.Printf("\nShift %s: %s %s-%s, %s / %s (%s)\n\n",
				s.ID, s.ShiftDate, s.StartTime, s.EndTime, s.Ward, s.RoleRequired, result.ShiftType)

			if len(result.Ranking.AllRanked) == 0 {
				fmt.Println("No candidates found for this shift.")
				return nil
			}

			fmt.Printf("Top eligible candidates:\n")
			for i, rc := range result.Ranking.EligibleTop {
				fmt.Printf("  %d. %s (score %.0f)\n", i+1, rc.StaffID, rc.Score)
				for _, reason := range rc.Reasons {
					fmt.Printf("       %s\n", reason)
				}
			}

			fmt.Printf("\nFull ranking:\n")
			for _, rc := range result.Ranking.AllRanked {
				marker := "eligible"
				if !rc.Eligible {
					marker = "blocked"
				}
				fmt.Printf("  - %s (score %.0f, %s)\n", rc.StaffID, rc.Score, marker)
				for _, v := range rc.Violations {
					fmt.Printf("       ! %s\n", v.Reason)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "Maximum eligible candidates to surface (default from config)")

	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <shift_id> <staff_id>",
		Short: "Check one staff member's eligibility for a shift",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, _ := cmd.Flags().GetBool("override")

			report, err := services.CheckEligibility(app.ctx, app.store, app.logger, app.policy, args[0], args[1], override)
			if err != nil {
				return err
			}

			printReport(report)
			return nil
		},
	}

	cmd.Flags().Bool("override", false, "Apply manager override for the training gate")

	return cmd
}

func assignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <shift_id> <staff_id>",
		Short: "Assign a staff member to a shift",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, _ := cmd.Flags().GetBool("override")
			force, _ := cmd.Flags().GetBool("force")
			assignedBy, _ := cmd.Flags().GetString("by")

			result, err := services.AssignStaff(app.ctx, app.store, app.logger, app.policy,
				args[0], args[1], assignedBy, override, force)
			if errors.Is(err, services.ErrNotEligible) {
				fmt.Printf("\nAssignment refused:\n")
				printReport(result.Report)
				fmt.Println("Re-run with --force to assign anyway.")
				return err
			}
			if err != nil {
				return err
			}

			fmt.Printf("\nAssigned %s to shift %s (assignment %s)\n",
				args[1], args[0], result.Assignment.ID)
			if result.ShiftFilled {
				fmt.Println("The shift is now fully staffed.")
			}
			return nil
		},
	}

	cmd.Flags().Bool("override", false, "Apply manager override for the training gate")
	cmd.Flags().Bool("force", false, "Record the assignment despite blocking violations")
	cmd.Flags().String("by", "", "Identifier of the manager making the assignment")

	return cmd
}

func generateShiftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-shifts",
		Short: "Expand recurring shift templates into open shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.GenerateShifts(app.ctx, app.store, app.logger, app.cfg, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("\nCreated %d shifts (%d dates already covered).\n", len(result.Created), result.Skipped)
			for _, s := range result.Created {
				fmt.Printf("  - %s %s-%s  %s / %s\n", s.ShiftDate, s.StartTime, s.EndTime, s.Ward, s.RoleRequired)
			}
			return nil
		},
	}
}

func printReport(report *services.EligibilityReport) {
	if report == nil {
		return
	}

	status := "ELIGIBLE"
	if !report.Eligible {
		status = "NOT ELIGIBLE"
	}
	fmt.Printf("\n%s %s for shift %s (score %.0f)\n\n",
		report.Staff.ID, status, report.Shift.ID, report.Score.Score)

	for _, v := range report.Verdicts {
		mark := "ok"
		if !v.OK {
			mark = "FAIL"
		}
		line := fmt.Sprintf("  [%-4s] %s", mark, v.Rule)
		if v.Reason != "" {
			line += ": " + v.Reason
		}
		fmt.Println(line)
	}

	fmt.Printf("\nScore breakdown:\n")
	for _, reason := range report.Score.Reasons {
		fmt.Printf("  %s\n", reason)
	}
}
