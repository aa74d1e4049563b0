package main

import (
	"fmt"
	"os"

	"github.com/mtrubnikov/claude-export-tool/internal/archive"
	"github.com/mtrubnikov/claude-export-tool/internal/config"
	"github.com/mtrubnikov/claude-export-tool/internal/identity"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [archive.json]",
		Short: "Self-check: verify the archive parses and show its stats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			archivePath := cfg.ArchivePath
			if len(args) == 1 {
				archivePath = args[0]
			}

			fmt.Println("=== Archive ===")
			fmt.Printf("  Path: %s\n", archivePath)
			info, err := os.Stat(archivePath)
			if err != nil {
				fmt.Println("  Status: NOT FOUND")
				return nil
			}
			sizeKB := float64(info.Size()) / 1024
			fmt.Printf("  Size: %.1f KB\n", sizeKB)

			doc, err := archive.Load(archivePath)
			if err != nil {
				fmt.Printf("  Parse: FAILED (%v)\n", err)
				return nil
			}
			fmt.Println("  Parse: OK")
			fmt.Printf("  Shape: %s\n", doc.Shape)
			if doc.Shape == archive.ShapeList {
				fmt.Printf("  Conversations: %d\n", len(doc.Conversations))
			} else {
				fmt.Printf("  Keys: %d\n", len(doc.ByUser))
			}

			fmt.Println("\n=== Users ===")
			users := doc.Users()
			if len(users) == 0 {
				fmt.Println("  None found")
				return nil
			}

			usersPath := identity.Discover(archivePath)
			dir := identity.Directory{}
			if usersPath != "" {
				dir, _ = identity.Load(usersPath)
			}

			for _, u := range users {
				fmt.Printf("  %-40s %d conversation(s)\n", dir.DisplayName(u), doc.Count(u))
			}

			fmt.Println("\n=== Identity ===")
			if usersPath == "" {
				fmt.Println("  users.json: not found next to archive")
			} else {
				fmt.Printf("  users.json: %s (%d record(s))\n", usersPath, len(dir))
			}

			return nil
		},
	}
}
