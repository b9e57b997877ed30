package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/marianozunino/share/internal/backend"
	"github.com/marianozunino/share/internal/config"
	"github.com/marianozunino/share/internal/logging"
	"github.com/marianozunino/share/internal/model"
	"github.com/marianozunino/share/internal/platform"
	"github.com/marianozunino/share/internal/tui"
	"github.com/marianozunino/share/internal/ui"
	"github.com/marianozunino/share/internal/utils"
)

var (
	configFile string
	desktop    ui.Platform = platform.NewDesktop()
	stdinIsTTY             = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// printNotifier writes notifications to w as styled lines
func printNotifier(w io.Writer) ui.NotifierFunc {
	return func(note ui.Notification) {
		style := successStyle
		if note.Variant == ui.VariantDestructive {
			style = failureStyle
		}
		fmt.Fprintf(w, "%s %s\n", style.Render(note.Title), mutedStyle.Render(note.Description))
	}
}

// uploadResult captures the completion event of a single upload
type uploadResult struct {
	ev *ui.UploadCompleted
}

func (r *uploadResult) UploadCompleted(_ context.Context, ev ui.UploadCompleted) {
	r.ev = &ev
}

// loadClientConfig decodes the backend settings from flags, environment and ~/.share/config.yaml
func loadClientConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("%w (set it with: share config set <key> <value>)", err)
	}

	if debug, _ := cmd.Root().PersistentFlags().GetBool("debug"); debug {
		spew.Fdump(cmd.ErrOrStderr(), cfg)
	}

	return cfg, nil
}

func newBackend(cmd *cobra.Command) (*backend.Client, *config.Config, error) {
	cfg, err := loadClientConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return backend.NewClient(cfg), cfg, nil
}

func printFiles(w io.Writer, files []model.FileRecord, linker ui.Linker, now time.Time) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No files uploaded")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tSIZE\tEXPIRES IN\tLINK")
	for _, rec := range files {
		card := ui.NewCard(rec, linker.Link(rec.ID), now)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			card.Icon, rec.ID, rec.Name, card.Size, card.Remaining, card.Link)
	}
	tw.Flush()
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

var rootCmd = &cobra.Command{
	Use:   "share",
	Short: "File Share client - upload files and share links",
	Long: `File Share client is a command-line tool for a File Share backend.

Features:
  • Upload files and get a shareable link
  • List your files with their remaining lifetime
  • Copy or open file links
  • Interactive terminal UI

Quick start:
  share config set upload_url https://api.example.com/upload
  share config set list_url https://api.example.com/files
  share config set download_base_url https://api.example.com/download
  share upload file.txt                   # Upload a file
  share list                              # List files
  share tui                               # Interactive mode`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := viper.GetString("log_level")
		if debug, _ := cmd.Root().PersistentFlags().GetBool("debug"); debug {
			level = "debug"
		}
		return logging.Setup(level, cmd.ErrOrStderr())
	},
}

var uploadCmd = &cobra.Command{
	Use:     "upload [file]",
	Aliases: []string{"u", "up"},
	Short:   "Upload a file",
	Long: `Upload a file and print its share link.

Without an argument you are prompted for a path.

Example: share upload report.pdf --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newBackend(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd)
		defer cancel()

		panel := ui.NewUploadPanel(client, printNotifier(cmd.ErrOrStderr()), cfg.MaxSizeLabel())
		result := &uploadResult{}
		panel.Subscribe(result)

		if len(args) == 1 {
			file, err := ui.OpenLocalFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (%s)\n", mutedStyle.Render("Uploading…"), file.Name, utils.FormatFileSize(file.Size))
			if file.Size > cfg.MaxSizeToBytes() {
				// The limit is advertised only, the backend decides
				log.Warn().Str("file", file.Name).Int64("size", file.Size).Int64("limit", cfg.MaxSizeToBytes()).Msg("File exceeds the advertised size limit")
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", mutedStyle.Render("File is larger than the advertised "+cfg.MaxSizeLabel()+" limit"))
			}
			err = panel.Submit(ctx, file)
			if err != nil {
				return err
			}
		} else {
			if !stdinIsTTY() {
				return errors.New("file path required when not running in a terminal")
			}
			if err := panel.Pick(ctx, desktop); err != nil {
				return err
			}
		}

		if result.ev == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Nothing uploaded")
			return nil
		}

		if debug, _ := cmd.Root().PersistentFlags().GetBool("debug"); debug {
			spew.Fdump(cmd.ErrOrStderr(), result.ev.Result)
		}

		if id := result.ev.Result.ID; id != "" {
			link := client.Link(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Link: %s\n", link)
			if !result.ev.Result.ExpiresAt.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "Expires: %s\n", result.ev.Result.ExpiresAt.Local().Format("Jan 2, 2006 at 3:04 PM"))
			}

			if copyLink, _ := cmd.Flags().GetBool("copy"); copyLink {
				card := ui.NewCard(model.FileRecord{ID: id}, link, time.Now())
				return card.CopyLink(ctx, desktop, printNotifier(cmd.ErrOrStderr()))
			}
		}

		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List uploaded files",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newBackend(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd)
		defer cancel()

		files, err := client.List(ctx)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(model.FileList{Files: files})
		}

		printFiles(cmd.OutOrStdout(), files, client, time.Now())
		return nil
	},
}

var linkCmd = &cobra.Command{
	Use:   "link <file_id>",
	Short: "Print the share link of a file",
	Long: `Print the share link of a file.

Example: share link d02e8975 --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newBackend(cmd)
		if err != nil {
			return err
		}

		link := client.Link(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), link)

		if copyLink, _ := cmd.Flags().GetBool("copy"); copyLink {
			card := ui.NewCard(model.FileRecord{ID: args[0]}, link, time.Now())
			return card.CopyLink(cmd.Context(), desktop, printNotifier(cmd.ErrOrStderr()))
		}
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:     "open <file_id>",
	Aliases: []string{"o"},
	Short:   "Open a file's link in the browser",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newBackend(cmd)
		if err != nil {
			return err
		}

		card := ui.NewCard(model.FileRecord{ID: args[0]}, client.Link(args[0]), time.Now())
		return card.Download(cmd.Context(), desktop)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newBackend(cmd)
		if err != nil {
			return err
		}
		if !stdinIsTTY() {
			return errors.New("the terminal UI needs an interactive terminal")
		}

		// Log lines would corrupt the alternate screen
		log.Logger = log.Output(io.Discard)

		ctx, cancel := signalContext(cmd)
		defer cancel()

		program := tea.NewProgram(
			tui.New(ctx, client, desktop, cfg.MaxSizeLabel()),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)
		_, err = program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	},
}

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"c", "cfg"},
	Short:   "Manage client configuration",
	Long: `Manage client configuration settings like the backend endpoints.

Configuration is stored in ~/.share/config.yaml`,
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Aliases: []string{"s"},
	Short:   "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  • upload_url: Backend upload endpoint
  • list_url: Backend list endpoint
  • download_base_url: Prefix of file links
  • request_timeout: Backend timeout (e.g. 30s, 0 for none)
  • log_level: debug, info, warn, error

Example: share config set upload_url https://api.example.com/upload`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := args[1]

		viper.Set(key, value)
		if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
		if err := viper.WriteConfigAs(configFile); err != nil {
			return fmt.Errorf("error saving configuration: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:     "get <key>",
	Aliases: []string{"g"},
	Short:   "Get a configuration value",
	Long: `Get a configuration value.

Example: share config get upload_url`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := viper.GetString(key)

		if value == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not set\n", key)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
		}
		return nil
	},
}

func init() {
	homeDir, _ := os.UserHomeDir()
	configDir := filepath.Join(homeDir, ".share")
	configFile = filepath.Join(configDir, "config.yaml")

	config.SetDefaults(viper.GetViper())
	viper.SetDefault("log_level", "warn")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore errors if config file doesn't exist

	rootCmd.PersistentFlags().String("upload-url", "", "Backend upload endpoint")
	rootCmd.PersistentFlags().String("list-url", "", "Backend list endpoint")
	rootCmd.PersistentFlags().String("download-base-url", "", "Prefix of file links")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Backend request timeout (0 for none)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log debug output and dump configuration")

	viper.BindPFlag("upload_url", rootCmd.PersistentFlags().Lookup("upload-url"))
	viper.BindPFlag("list_url", rootCmd.PersistentFlags().Lookup("list-url"))
	viper.BindPFlag("download_base_url", rootCmd.PersistentFlags().Lookup("download-base-url"))
	viper.BindPFlag("request_timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	uploadCmd.Flags().Bool("copy", false, "Copy the link to the clipboard")
	linkCmd.Flags().Bool("copy", false, "Copy the link to the clipboard")
	listCmd.Flags().Bool("json", false, "Print the list as JSON")

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
