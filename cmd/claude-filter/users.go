package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mtrubnikov/claude-export-tool/internal/archive"
	"github.com/mtrubnikov/claude-export-tool/internal/config"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func usersCmd() *cobra.Command {
	var usersFile string

	cmd := &cobra.Command{
		Use:   "users [archive.json]",
		Short: "List the users referenced in an export archive",
		Long: `Lists every distinct user found in the archive, with display names from
the identity file when one is available and per-user conversation counts.
Renders a table on a terminal; TSV (id, count, display) when piped.`,
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

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				for _, u := range users {
					fmt.Printf("%s\t%d\t%s\n", u, doc.Count(u), dir.DisplayName(u))
				}
				return nil
			}

			fmt.Printf("Found %d user(s):\n", len(users))
			table := tablewriter.NewTable(os.Stdout)
			table.Header([]string{"#", "User", "Conversations", "ID"})
			for i, u := range users {
				table.Append([]string{
					strconv.Itoa(i + 1),
					dir.DisplayName(u),
					strconv.Itoa(doc.Count(u)),
					u,
				})
			}
			return table.Render()
		},
	}

	cmd.Flags().StringVar(&usersFile, "users-file", "", "Path to a users.json identity file")

	return cmd
}
