package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/mtrubnikov/claude-export-tool/internal/archive"
	"github.com/mtrubnikov/claude-export-tool/internal/config"
	"github.com/mtrubnikov/claude-export-tool/internal/export"
	"github.com/mtrubnikov/claude-export-tool/internal/identity"
	"github.com/mtrubnikov/claude-export-tool/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func filterCmd() *cobra.Command {
	var userID, usersFile, output, outputDir string
	var noHeader bool

	cmd := &cobra.Command{
		Use:   "filter [archive.json]",
		Short: "Export a single user's conversations to a new JSON file",
		Long: `Loads the archive, extracts its users, and writes the selected user's
conversations to a new JSON file. Without --user, an interactive picker
opens when stdout is a terminal. Message lists are trimmed to the
selected user's messages when the conversation itself has another owner.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			archivePath := cfg.ArchivePath
			if len(args) == 1 {
				archivePath = args[0]
			}

			doc, err := archive.Load(archivePath)
			if err != nil {
				return err
			}

			dir := loadIdentity(usersFile, cfg.UsersPath, archivePath)

			users := doc.Users()
			if len(users) == 0 {
				return archive.ErrNoUsers
			}

			selected := userID
			if selected == "" {
				if !term.IsTerminal(int(os.Stdout.Fd())) {
					return fmt.Errorf("--user is required when stdout is not a terminal")
				}
				entries := make([]tui.Entry, 0, len(users))
				for _, u := range users {
					rec := dir[u]
					entries = append(entries, tui.Entry{
						ID:      u,
						Display: dir.DisplayName(u),
						Name:    rec.Name,
						Email:   rec.Email,
						Count:   doc.Count(u),
					})
				}
				chosen, ok, err := tui.SelectUser(entries)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(os.Stderr, "Cancelled.")
					return nil
				}
				selected = chosen
			}

			filtered := doc.Filter(selected)
			if len(filtered) == 0 {
				return fmt.Errorf("%w: %s", archive.ErrNoMatches, selected)
			}

			outPath := output
			if outPath == "" {
				base := outputDir
				if base == "" {
					base = cfg.OutputDir
				}
				outPath = filepath.Join(base, export.DefaultFilename(selected, dir, time.Now()))
			}
			outPath = export.EnsureJSONExt(outPath)

			opts := export.Options{
				UserID:        selected,
				UserDisplay:   dir.DisplayName(selected),
				IncludeHeader: !noHeader,
			}
			if err := export.WriteFile(outPath, filtered, opts); err != nil {
				return err
			}

			fmt.Printf("Exported %d conversation(s) for %s\n", len(filtered), dir.DisplayName(selected))
			fmt.Printf("Output: %s\n", outPath)
			if noHeader {
				fmt.Println("(header metadata excluded)")
			}
			if err := clipboard.WriteAll(outPath); err == nil {
				fmt.Println("Output path copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User identifier to export (skips the picker)")
	cmd.Flags().StringVar(&usersFile, "users-file", "", "Path to a users.json identity file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the generated output filename")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Write the bare conversation list without export metadata")

	return cmd
}

// loadIdentity resolves the identity directory: explicit flag first, then
// the configured path, then users.json discovered beside the archive.
// Failures degrade to an empty directory with a warning.
func loadIdentity(flagPath, cfgPath, archivePath string) identity.Directory {
	path := flagPath
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		path = identity.Discover(archivePath)
	}
	if path == "" {
		return identity.Directory{}
	}

	dir, err := identity.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: identity file: %v (showing raw IDs)\n", err)
	}
	return dir
}
